package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m int) TimeOfDay {
	return TimeOfDay(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

type eventSummary struct {
	At     string
	Kind   EventKind
	Course string
}

func summarize(events []Event) []eventSummary {
	out := make([]eventSummary, len(events))
	for i, e := range events {
		out[i] = eventSummary{At: e.At.String(), Kind: e.Kind, Course: e.Class.Course}
	}
	return out
}

func TestEvents_Timeline(t *testing.T) {
	classes := []Class{
		{Course: "A", Start: at(9, 0), End: at(10, 0)},
		{Course: "B", Start: at(10, 0), End: at(11, 0)},
	}

	events := Events(classes, 15*time.Minute)

	assert.Equal(t, []eventSummary{
		{"08:45", Upcoming, "A"},
		{"09:00", Starting, "A"},
		{"09:45", Upcoming, "B"},
		{"10:00", Ending, "A"},
		{"10:00", Starting, "B"},
		{"11:00", Ending, "B"},
	}, summarize(events))
}

func TestEvents_ZeroLeadKeepsPerClassOrder(t *testing.T) {
	classes := []Class{{Course: "A", Start: at(9, 0), End: at(9, 50)}}

	events := Events(classes, 0)

	require.Len(t, events, 3)
	assert.Equal(t, Upcoming, events[0].Kind)
	assert.Equal(t, Starting, events[1].Kind)
	assert.Equal(t, events[0].At, events[1].At)
	assert.Equal(t, Ending, events[2].Kind)
}

func TestEvents_UpcomingClampedAtMidnight(t *testing.T) {
	classes := []Class{{Course: "Night", Start: at(0, 5), End: at(1, 0)}}

	events := Events(classes, 15*time.Minute)

	require.Len(t, events, 3)
	assert.Equal(t, "00:00", events[0].At.String())
	assert.Equal(t, Upcoming, events[0].Kind)
}

func TestEvents_Empty(t *testing.T) {
	assert.Empty(t, Events(nil, 15*time.Minute))
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "Upcoming", Upcoming.String())
	assert.Equal(t, "Starting", Starting.String())
	assert.Equal(t, "Ending", Ending.String())
	assert.Equal(t, "Unknown", EventKind(42).String())
}

func TestEvent_String(t *testing.T) {
	event := Event{
		At:    at(8, 45),
		Kind:  Upcoming,
		Class: Class{Course: "A", Start: at(9, 0), End: at(10, 0)},
	}
	assert.Equal(t, "08:45 Upcoming `09:00-10:00` A (Link not available)", event.String())

	event.Kind = Ending
	assert.Equal(t, "08:45 Ending   `09:00-10:00` A (Link not available)", event.String())
}

package agenda

import (
	"fmt"
	"sort"
	"time"
)

// EventKind identifies what happens to a class at an event's time
type EventKind int

const (
	// Upcoming fires a fixed lead time before the class starts
	Upcoming EventKind = iota
	// Starting fires when the class starts
	Starting
	// Ending fires when the class ends
	Ending
)

// String returns the string representation of the EventKind
func (k EventKind) String() string {
	switch k {
	case Upcoming:
		return "Upcoming"
	case Starting:
		return "Starting"
	case Ending:
		return "Ending"
	default:
		return "Unknown"
	}
}

// Event is a point in a day's timeline
type Event struct {
	At    TimeOfDay
	Kind  EventKind
	Class Class
}

// String formats the event as "HH:MM Kind description"
func (e Event) String() string {
	return fmt.Sprintf("%s %-8s %s", e.At, e.Kind, e.Class.Describe())
}

// Events returns the Upcoming, Starting and Ending events of classes ordered by time.
// Events at the same time keep class order, and for a single class the
// Upcoming/Starting/Ending order. Upcoming events never go before midnight.
func Events(classes []Class, lead time.Duration) []Event {
	events := make([]Event, 0, len(classes)*3)
	for _, class := range classes {
		upcoming := class.Start - TimeOfDay(lead)
		if upcoming < 0 {
			upcoming = 0
		}
		events = append(events,
			Event{At: upcoming, Kind: Upcoming, Class: class},
			Event{At: class.Start, Kind: Starting, Class: class},
			Event{At: class.End, Kind: Ending, Class: class},
		)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].At < events[j].At
	})
	return events
}

// Package agenda reads a generated weekly schedule back and answers "what is on today".
package agenda

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/belphemur/weekly-schedule/internal/constants"
	"github.com/belphemur/weekly-schedule/internal/timetable"
)

// TimeOfDay is a wall-clock time expressed as the offset from midnight
type TimeOfDay time.Duration

// ParseTimeOfDay parses an "HH:MM" time
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return TimeOfDay(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

// String formats the time as "HH:MM"
func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

// Class is one scheduled class of a weekday
type Class struct {
	Weekday time.Weekday
	Course  string
	Start   TimeOfDay
	End     TimeOfDay
	// Link is empty when no meeting link has been filled in
	Link string
}

// HasLink reports whether a meeting link is available
func (c Class) HasLink() bool {
	return c.Link != ""
}

// Describe renders the class as a one-line, markdown-flavoured summary
func (c Class) Describe() string {
	times := fmt.Sprintf("`%s-%s`", c.Start, c.End)
	if c.HasLink() {
		return fmt.Sprintf("%s [%s](%s)", times, c.Course, c.Link)
	}
	return fmt.Sprintf("%s %s (Link not available)", times, c.Course)
}

// Week holds the classes of every day of the week
type Week struct {
	days [7][]Class
}

// ClassesOn returns the classes scheduled on a weekday, in schedule order
func (w *Week) ClassesOn(day time.Weekday) []Class {
	return w.days[day]
}

// ClassesOnDate returns the classes scheduled on the weekday of date
func (w *Week) ClassesOnDate(date time.Time) []Class {
	return w.ClassesOn(date.Weekday())
}

// Len returns the number of classes in the week
func (w *Week) Len() int {
	n := 0
	for _, classes := range w.days {
		n += len(classes)
	}
	return n
}

// LoadFile reads a weekly schedule document from path
func LoadFile(path string) (*Week, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule: %w", err)
	}
	defer f.Close()

	week, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return week, nil
}

// Load parses a weekly schedule document as produced by timetable.Serialize.
// Weekday keys may use any of the seven day names; times must be "HH:MM".
func Load(r io.Reader) (*Week, error) {
	var doc map[string][]timetable.ScheduleEntry
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid schedule json: %w", err)
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	week := &Week{}
	for _, key := range keys {
		weekday, err := constants.ParseWeekday(key)
		if err != nil {
			return nil, err
		}
		for _, entry := range doc[key] {
			class, err := newClass(weekday, entry)
			if err != nil {
				return nil, err
			}
			week.days[weekday] = append(week.days[weekday], class)
		}
	}

	return week, nil
}

func newClass(weekday time.Weekday, entry timetable.ScheduleEntry) (Class, error) {
	start, err := ParseTimeOfDay(entry.StartTime)
	if err != nil {
		return Class{}, fmt.Errorf("error parsing startTime %q of %s on %s: %w", entry.StartTime, entry.Course, weekday, err)
	}
	end, err := ParseTimeOfDay(entry.EndTime)
	if err != nil {
		return Class{}, fmt.Errorf("error parsing endTime %q of %s on %s: %w", entry.EndTime, entry.Course, weekday, err)
	}
	return Class{
		Weekday: weekday,
		Course:  entry.Course,
		Start:   start,
		End:     end,
		Link:    entry.Link,
	}, nil
}

package timetable

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUndefinedSlot is returned when a course is assigned to a slot missing from the template
	ErrUndefinedSlot = errors.New("undefined slot")
	// ErrUnknownWeekday is returned when a session falls on a day the schedule has no bucket for
	ErrUnknownWeekday = errors.New("unknown weekday")
)

// LookupError reports a course that references a slot absent from the slot template
type LookupError struct {
	Course string
	Slot   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("course %q references undefined slot %q", e.Course, e.Slot)
}

func (e *LookupError) Unwrap() error {
	return ErrUndefinedSlot
}

// UnknownWeekdayError reports a session whose day is not one of the schedule's weekdays
type UnknownWeekdayError struct {
	Slot string
	Day  string
}

func (e *UnknownWeekdayError) Error() string {
	return fmt.Sprintf("slot %q has a session on unknown weekday %q", e.Slot, e.Day)
}

func (e *UnknownWeekdayError) Unwrap() error {
	return ErrUnknownWeekday
}

// formatBuildErrors renders every collected build problem on its own line
func formatBuildErrors(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = "  * " + err.Error()
	}
	return fmt.Sprintf("%d problems building schedule:\n%s", len(errs), strings.Join(lines, "\n"))
}

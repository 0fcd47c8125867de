// Package constants provides shared constants for the weekly-schedule application
package constants

import (
	"fmt"
	"strings"
	"time"
)

// schoolDays is the canonical, ordered set of weekdays a schedule is built for
var schoolDays = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Weekdays returns a fresh copy of the canonical weekday order, Monday to Friday.
func Weekdays() []string {
	days := make([]string, len(schoolDays))
	copy(days, schoolDays[:])
	return days
}

// ParseWeekday converts a day name into a time.Weekday.
// Matching is case-insensitive and accepts both full names and three-letter abbreviations.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || (len(name) == 3 && name == full[:3]) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid day of week: %q", s)
}

// Package timetable expands course slot assignments into a per-weekday schedule.
package timetable

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Session is one weekly occurrence of a slot
type Session struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SlotTemplate maps a slot name to its sessions, in file order
type SlotTemplate = orderedmap.OrderedMap[string, []Session]

// CourseSlotAssignment maps a course to the slot it is taught in, in file order
type CourseSlotAssignment = orderedmap.OrderedMap[string, string]

// NewSlotTemplate returns an empty slot template
func NewSlotTemplate() *SlotTemplate {
	return orderedmap.New[string, []Session]()
}

// NewCourseSlotAssignment returns an empty course assignment
func NewCourseSlotAssignment() *CourseSlotAssignment {
	return orderedmap.New[string, string]()
}

// ScheduleEntry is a single class in the generated weekly schedule.
// Link is left empty at generation time and filled in by hand afterwards.
type ScheduleEntry struct {
	Course    string `json:"course"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Link      string `json:"link"`
}

// WeeklySchedule holds the entries of each weekday, keyed in a fixed day order
type WeeklySchedule struct {
	days    []string
	entries map[string][]ScheduleEntry
}

func newWeeklySchedule(days []string) *WeeklySchedule {
	s := &WeeklySchedule{
		days:    make([]string, len(days)),
		entries: make(map[string][]ScheduleEntry, len(days)),
	}
	copy(s.days, days)
	for _, day := range days {
		s.entries[day] = []ScheduleEntry{}
	}
	return s
}

// Days returns the weekdays of the schedule in output order
func (s *WeeklySchedule) Days() []string {
	days := make([]string, len(s.days))
	copy(days, s.days)
	return days
}

// Entries returns the entries scheduled on day, sorted by start time.
// The second result reports whether day is part of the schedule.
func (s *WeeklySchedule) Entries(day string) ([]ScheduleEntry, bool) {
	entries, ok := s.entries[day]
	return entries, ok
}

// Len returns the total number of entries across all days
func (s *WeeklySchedule) Len() int {
	n := 0
	for _, entries := range s.entries {
		n += len(entries)
	}
	return n
}

// Counts returns the number of entries per day
func (s *WeeklySchedule) Counts() map[string]int {
	counts := make(map[string]int, len(s.days))
	for day, entries := range s.entries {
		counts[day] = len(entries)
	}
	return counts
}

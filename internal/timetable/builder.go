package timetable

import (
	"sort"

	"github.com/belphemur/weekly-schedule/internal/logging"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// Builder expands course assignments into a weekly schedule
type Builder struct {
	weekdays []string
	logger   zerolog.Logger
}

// NewBuilder creates a Builder producing one bucket per weekday, in the given order
func NewBuilder(weekdays []string) *Builder {
	days := make([]string, len(weekdays))
	copy(days, weekdays)
	return &Builder{
		weekdays: days,
		logger:   logging.GetLogger("timetable-builder"),
	}
}

// Build fans every course out into the sessions of its assigned slot and sorts each
// day by start time. Courses are visited in assignment order and sessions in slot
// order; entries starting at the same time keep that order.
//
// Every course must reference a slot of the template and every session must fall on
// one of the builder's weekdays. All violations are reported together and no
// schedule is returned when there is any.
func (b *Builder) Build(template *SlotTemplate, assignments *CourseSlotAssignment) (*WeeklySchedule, error) {
	b.logger.Debug().
		Int("slots", template.Len()).
		Int("courses", assignments.Len()).
		Msg("Building weekly schedule")

	schedule := newWeeklySchedule(b.weekdays)

	var result *multierror.Error
	reported := make(map[string]bool)

	for pair := assignments.Oldest(); pair != nil; pair = pair.Next() {
		course, slot := pair.Key, pair.Value

		sessions, ok := template.Get(slot)
		if !ok {
			b.logger.Error().Str("course", course).Str("slot", slot).Msg("Course references undefined slot")
			result = multierror.Append(result, &LookupError{Course: course, Slot: slot})
			continue
		}

		for _, session := range sessions {
			bucket, ok := schedule.entries[session.Day]
			if !ok {
				if key := slot + "\x00" + session.Day; !reported[key] {
					reported[key] = true
					result = multierror.Append(result, &UnknownWeekdayError{Slot: slot, Day: session.Day})
				}
				continue
			}
			schedule.entries[session.Day] = append(bucket, ScheduleEntry{
				Course:    course,
				StartTime: session.StartTime,
				EndTime:   session.EndTime,
				Link:      "",
			})
		}
	}

	if result != nil {
		result.ErrorFormat = formatBuildErrors
		return nil, result.ErrorOrNil()
	}

	for _, day := range schedule.days {
		entries := schedule.entries[day]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].StartTime < entries[j].StartTime
		})
		b.logger.Debug().Str("day", day).Int("entries", len(entries)).Msg("Sorted day")
	}

	return schedule, nil
}

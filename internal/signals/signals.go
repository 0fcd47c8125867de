package signals

import (
	"context"

	"github.com/maniartech/signals"
)

// ScheduleBuiltData describes a schedule that was just built successfully
type ScheduleBuiltData struct {
	// Days lists the weekdays of the schedule in output order
	Days []string
	// Entries holds the number of classes per weekday
	Entries map[string]int
}

// Signal definitions using generics
var ScheduleBuilt = signals.New[ScheduleBuiltData]()

// EmitScheduleBuilt emits a signal once a schedule has been built
func EmitScheduleBuilt(ctx context.Context, days []string, entries map[string]int) {
	ScheduleBuilt.Emit(ctx, ScheduleBuiltData{
		Days:    days,
		Entries: entries,
	})
}

// OnScheduleBuilt registers a handler for schedule built events
func OnScheduleBuilt(handler func(ctx context.Context, data ScheduleBuiltData), key ...string) {
	if len(key) > 0 {
		ScheduleBuilt.AddListener(handler, key[0])
	} else {
		ScheduleBuilt.AddListener(handler)
	}
}

// RemoveScheduleBuilt unregisters the handler added under key
func RemoveScheduleBuilt(key string) {
	ScheduleBuilt.RemoveListener(key)
}

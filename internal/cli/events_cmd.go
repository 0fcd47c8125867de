package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/belphemur/weekly-schedule/internal/agenda"
	"github.com/belphemur/weekly-schedule/internal/logging"
	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "events [WEEKDAY]",
		Short: "Print the upcoming/starting/ending timeline of one day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.resolveDate(args, date)
			if err != nil {
				return err
			}

			week, err := agenda.LoadFile(app.cfg.Agenda.ScheduleFile)
			if err != nil {
				return err
			}

			events := agenda.Events(week.ClassesOnDate(day), app.cfg.Agenda.ReminderLead)
			logger := logging.GetLogger("events")
			logger.Debug().
				Str("weekday", day.Weekday().String()).
				Dur("lead", app.cfg.Agenda.ReminderLead).
				Int("events", len(events)).
				Msg("Timeline computed")

			var b strings.Builder
			for _, event := range events {
				fmt.Fprintln(&b, event)
			}
			return writeOutput(cmd.OutOrStdout(), b.String())
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Use the weekday of this date (YYYY-MM-DD)")
	cmd.Flags().String("schedule", "", "Path of the generated weekly schedule")
	cmd.Flags().Duration("lead", 15*time.Minute, "How long before a class its Upcoming event fires")

	return cmd
}

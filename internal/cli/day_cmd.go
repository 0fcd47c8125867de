package cli

import (
	"fmt"
	"strings"

	"github.com/belphemur/weekly-schedule/internal/agenda"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day [WEEKDAY]",
		Short: "List the classes of one day of a generated schedule",
		Long: "List the classes of one day of a generated schedule.\n" +
			"The day is the next WEEKDAY, the weekday of --date, or today.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.resolveDate(args, date)
			if err != nil {
				return err
			}

			week, err := agenda.LoadFile(app.cfg.Agenda.ScheduleFile)
			if err != nil {
				return err
			}

			var b strings.Builder
			classes := week.ClassesOnDate(day)
			fmt.Fprintln(&b, day.Weekday())
			if len(classes) == 0 {
				b.WriteString("No classes\n")
			}
			for _, class := range classes {
				fmt.Fprintln(&b, class.Describe())
			}
			return writeOutput(cmd.OutOrStdout(), b.String())
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Show the weekday of this date (YYYY-MM-DD)")
	cmd.Flags().String("schedule", "", "Path of the generated weekly schedule")

	return cmd
}

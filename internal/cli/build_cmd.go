package cli

import (
	"fmt"

	"github.com/belphemur/weekly-schedule/internal/constants"
	"github.com/belphemur/weekly-schedule/internal/logging"
	appSignals "github.com/belphemur/weekly-schedule/internal/signals"
	"github.com/belphemur/weekly-schedule/internal/timetable"
	"github.com/spf13/cobra"
)

func newBuildCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the weekly schedule and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, app)
		},
	}
}

// runBuild loads both inputs, builds the schedule and writes it to the command output.
// Nothing is written when any step fails.
func runBuild(cmd *cobra.Command, app *App) error {
	logger := logging.GetLogger("build")

	template, err := timetable.LoadSlotTemplate(app.cfg.Input.SlotsTemplate)
	if err != nil {
		logger.Error().Err(err).Str("path", app.cfg.Input.SlotsTemplate).Msg("Failed to load slot template")
		return err
	}

	assignments, err := timetable.LoadCourseSlots(app.cfg.Input.CourseSlots)
	if err != nil {
		logger.Error().Err(err).Str("path", app.cfg.Input.CourseSlots).Msg("Failed to load course slots")
		return err
	}
	logger.Debug().Int("slots", template.Len()).Int("courses", assignments.Len()).Msg("Inputs loaded")

	schedule, err := timetable.NewBuilder(constants.Weekdays()).Build(template, assignments)
	if err != nil {
		return fmt.Errorf("failed to build schedule: %w", err)
	}

	if err := timetable.Serialize(cmd.OutOrStdout(), schedule); err != nil {
		return err
	}

	appSignals.EmitScheduleBuilt(cmd.Context(), schedule.Days(), schedule.Counts())
	return nil
}

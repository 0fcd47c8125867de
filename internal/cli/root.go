package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/belphemur/weekly-schedule/internal/config"
	"github.com/belphemur/weekly-schedule/internal/constants"
	"github.com/belphemur/weekly-schedule/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds what the commands need beyond their flags.
type App struct {
	// ConfigPath names the TOML configuration file; empty means defaults and environment only
	ConfigPath string
	// Now returns the current time, used when a command is not given a day
	Now func() time.Time

	cfg *config.Config
}

// flagKeys maps command flags to the configuration keys they override
var flagKeys = map[string]string{
	"slots":     "input.slots_template",
	"courses":   "input.course_slots",
	"log-level": "service.log_level",
	"schedule":  "agenda.schedule_file",
	"lead":      "agenda.reminder_lead",
}

// NewRootCmd creates the top-level command. Run without a subcommand it builds the
// weekly schedule and prints it, like the build subcommand.
func NewRootCmd(app *App) *cobra.Command {
	if app.Now == nil {
		app.Now = time.Now
	}

	root := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Build a weekly class schedule from slot templates and course assignments",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.loadConfig(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, app)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&app.ConfigPath, "config", app.ConfigPath, "Path of the TOML configuration file")
	pf.String("slots", "", "Path of the slot template JSON file")
	pf.String("courses", "", "Path of the course slot assignment JSON file")
	pf.String("log-level", "", "Log level (trace, debug, info, warn, error, fatal, panic)")

	root.AddCommand(
		newBuildCmd(app),
		newDayCmd(app),
		newEventsCmd(app),
	)

	return root
}

// loadConfig resolves the configuration, letting explicitly set flags win
func (app *App) loadConfig(flags *pflag.FlagSet) error {
	overrides := make(map[string]any)
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := config.Load(app.ConfigPath, overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.SetLogLevel(cfg.Service.LogLevel)
	logger := logging.GetLogger("cli")
	logger.Debug().
		Str("config_path", app.ConfigPath).
		Str("slots_template", cfg.Input.SlotsTemplate).
		Str("course_slots", cfg.Input.CourseSlots).
		Msg("Configuration loaded")

	app.cfg = cfg
	return nil
}

// resolveDate picks the day to show. A weekday argument means its next occurrence,
// today included; otherwise the --date value, or today.
func (app *App) resolveDate(args []string, date string) (time.Time, error) {
	today := app.Now()
	if len(args) > 0 && date != "" {
		return today, fmt.Errorf("give either a weekday or --date, not both")
	}
	if len(args) > 0 {
		weekday, err := constants.ParseWeekday(args[0])
		if err != nil {
			return today, err
		}
		return today.AddDate(0, 0, (int(weekday)-int(today.Weekday())+7)%7), nil
	}
	if date != "" {
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			return today, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
		}
		return d, nil
	}
	return today, nil
}

// writeOutput writes a rendered command result in one call
func writeOutput(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/belphemur/weekly-schedule/internal/cli"
	"github.com/belphemur/weekly-schedule/internal/config"
	"github.com/belphemur/weekly-schedule/internal/logging"
	appSignals "github.com/belphemur/weekly-schedule/internal/signals"
	"github.com/mattn/go-isatty"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Standard output carries the schedule, logs go to stderr
	pretty := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	logging.Initialize(os.Stderr, pretty)

	logger := logging.GetLogger("main")

	logger.Debug().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", date).
		Msg("Starting weekly schedule builder")

	// Create context that's canceled on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Application run failed")
	}
}

func run(ctx context.Context) error {
	// Log a per-day summary once the schedule has been printed
	appSignals.OnScheduleBuilt(func(ctx context.Context, data appSignals.ScheduleBuiltData) {
		signalLogger := logging.GetLogger("signal-schedule-built")
		event := signalLogger.Info()
		total := 0
		for _, day := range data.Days {
			event = event.Int(strings.ToLower(day), data.Entries[day])
			total += data.Entries[day]
		}
		event.Int("total", total).Msg("Weekly schedule built")
	}, "main-schedule-built-logger")

	app := &cli.App{
		ConfigPath: config.PathFromEnv(),
		Now:        time.Now,
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/belphemur/weekly-schedule/internal/constants"
	"github.com/belphemur/weekly-schedule/internal/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix shared by all environment overrides
const EnvPrefix = "WEEKLY_"

// Config holds the application configuration
type Config struct {
	Input   InputConfig   `koanf:"input"`
	Agenda  AgendaConfig  `koanf:"agenda"`
	Service ServiceConfig `koanf:"service"`
}

// InputConfig holds the locations of the two source documents
type InputConfig struct {
	SlotsTemplate string `koanf:"slots_template"`
	CourseSlots   string `koanf:"course_slots"`
}

// AgendaConfig holds the settings used when reading a generated schedule back
type AgendaConfig struct {
	ScheduleFile string        `koanf:"schedule_file"`
	ReminderLead time.Duration `koanf:"reminder_lead"`
}

// ServiceConfig holds the process-level settings
type ServiceConfig struct {
	LogLevel string `koanf:"log_level"`
}

// envKeys maps supported environment variables to configuration keys
var envKeys = map[string]string{
	EnvPrefix + "SLOTS_TEMPLATE": "input.slots_template",
	EnvPrefix + "COURSE_SLOTS":   "input.course_slots",
	EnvPrefix + "SCHEDULE_FILE":  "agenda.schedule_file",
	EnvPrefix + "REMINDER_LEAD":  "agenda.reminder_lead",
	EnvPrefix + "LOG_LEVEL":      "service.log_level",
}

func defaults() map[string]any {
	return map[string]any{
		"input.slots_template": constants.DefaultSlotsTemplateFile,
		"input.course_slots":   constants.DefaultCourseSlotsFile,
		"agenda.schedule_file": constants.DefaultScheduleFile,
		"agenda.reminder_lead": "15m",
		"service.log_level":    "info",
	}
}

// Load builds the configuration from defaults, the optional TOML file at path,
// WEEKLY_* environment variables and finally overrides, each layer replacing the
// previous one. An empty path skips the file layer.
func Load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load default configuration: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// Unknown WEEKLY_* variables map to "" and are skipped
			return envKeys[key], value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to apply configuration overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// PathFromEnv returns the config file named by CONFIG_FILE, if any
func PathFromEnv() string {
	return os.Getenv("CONFIG_FILE")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Input.SlotsTemplate == "" {
		return fmt.Errorf("slots template path is required")
	}
	if cfg.Input.CourseSlots == "" {
		return fmt.Errorf("course slots path is required")
	}
	if cfg.Agenda.ScheduleFile == "" {
		return fmt.Errorf("schedule file path is required")
	}
	if cfg.Agenda.ReminderLead < 0 {
		return fmt.Errorf("reminder lead must not be negative: %s", cfg.Agenda.ReminderLead)
	}
	if !logging.IsValidLevel(cfg.Service.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.Service.LogLevel)
	}
	return nil
}

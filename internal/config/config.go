package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Paths   PathsConfig   `mapstructure:"paths"`
		Report  ReportConfig  `mapstructure:"report"`
		Chart   ChartConfig   `mapstructure:"chart"`
		Display DisplayConfig `mapstructure:"display"`
		CLI     CLIConfig     `mapstructure:"-"`
	}

	// PathsConfig holds the location of the export and the artifacts
	PathsConfig struct {
		// Export is where the activity export is downloaded to
		Export string `mapstructure:"export"`
		// WorkDir receives the imported export and every artifact
		WorkDir string `mapstructure:"workdir"`
	}

	// ReportConfig holds the thresholds used to derive artifacts
	ReportConfig struct {
		LongRunDistance float64 `mapstructure:"long_run_distance"`
		AerobicHR       int     `mapstructure:"aerobic_hr"`
	}

	// ChartConfig holds chart rendering settings
	ChartConfig struct {
		Viewer string `mapstructure:"viewer"`
		Width  int    `mapstructure:"width"`
		Height int    `mapstructure:"height"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// CLIConfig holds settings that only come from command-line flags
	CLIConfig struct {
		Since      time.Time
		SaveDir    string
		SkipImport bool
		NoDisplay  bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}

package config

import (
	"slices"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pacer/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Export     string
	WorkDir    string
	Since      string
	Period     string
	SaveDir    string
	Viewer     string
	SkipImport bool
	NoDisplay  bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Export:     ctx.String("export"),
			WorkDir:    ctx.String("workdir"),
			Since:      ctx.String("since"),
			Period:     ctx.String("period"),
			SaveDir:    ctx.String("save"),
			Viewer:     ctx.String("viewer"),
			SkipImport: ctx.Bool("skip-import"),
			NoDisplay:  ctx.Bool("no-display"),
		}

		return applyCLIOptions(c, opts, time.Now())
	}
}

// applyCLIOptions applies CLI options to the config. Relative dates are
// resolved against now.
func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	if opts.Export != "" {
		c.Paths.Export = opts.Export
	}

	if opts.WorkDir != "" {
		c.Paths.WorkDir = opts.WorkDir
	}

	if opts.Viewer != "" {
		c.Chart.Viewer = opts.Viewer
	}

	c.CLI.SaveDir = opts.SaveDir
	c.CLI.SkipImport = opts.SkipImport
	c.CLI.NoDisplay = opts.NoDisplay

	since, err := sinceTime(opts.Since, opts.Period, now)
	if err != nil {
		return err
	}

	c.CLI.Since = since

	return nil
}

// sinceTime resolves the start of the reporting window from either a
// free-form date ("2024-01-01", "3 months ago") or a named period.
func sinceTime(since, period string, now time.Time) (time.Time, error) {
	since = strings.TrimSpace(since)
	p := timeutil.Period(strings.TrimSpace(period))

	if since != "" && p != "" {
		return time.Time{}, errSinceAndPeriod
	}

	if p != "" {
		if !slices.Contains(timeutil.PeriodCollection, p) {
			return time.Time{}, errInvalidPeriod.Fmt(p)
		}

		return p.Start(now), nil
	}

	if since == "" {
		return time.Time{}, nil
	}

	cfg := &dps.Configuration{
		CurrentTime:     now,
		DefaultTimezone: time.UTC,
	}

	dt, err := dps.Parse(cfg, since)
	if err != nil {
		return time.Time{}, errInvalidSince.Fmt(since).Wrap(err)
	}

	return dt.Time, nil
}

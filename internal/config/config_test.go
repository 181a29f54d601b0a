package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pacer/internal/timeutil"
)

func validConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Export:  "/downloads/Activities.csv",
			WorkDir: ".",
		},
		Report: ReportConfig{
			LongRunDistance: 7,
			AerobicHR:       138,
		},
		Chart: ChartConfig{
			Width:  defaultChartWidth,
			Height: defaultChartHeight,
		},
	}
}

func TestWithViperConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacer", "config.yml")

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Equal(t, ".", cfg.Paths.WorkDir)
	assert.Equal(t, "Activities.csv", filepath.Base(cfg.Paths.Export))
	assert.InDelta(t, 7.0, cfg.Report.LongRunDistance, 0)
	assert.Equal(t, 138, cfg.Report.AerobicHR)
	assert.Equal(t, defaultChartWidth, cfg.Chart.Width)
	assert.Equal(t, defaultChartHeight, cfg.Chart.Height)
	assert.True(t, cfg.Display.DarkTheme)

	again, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, cfg, again)
}

func TestWithViperConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	yml := `paths:
  export: /tmp/export.csv
  workdir: /tmp/runs
report:
  long_run_distance: 10
  aerobic_hr: 145
chart:
  viewer: feh --scale-down
display:
  dark_theme: false
`

	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/export.csv", cfg.Paths.Export)
	assert.Equal(t, "/tmp/runs", cfg.Paths.WorkDir)
	assert.InDelta(t, 10.0, cfg.Report.LongRunDistance, 0)
	assert.Equal(t, 145, cfg.Report.AerobicHR)
	assert.Equal(t, "feh --scale-down", cfg.Chart.Viewer)
	assert.Equal(t, defaultChartWidth, cfg.Chart.Width)
	assert.False(t, cfg.Display.DarkTheme)
}

func TestWithViperConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	yml := "report:\n  long_run_distance: 0\n"

	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	_, err := New(WithViperConfig(path))
	require.Error(t, err)

	assert.ErrorIs(t, err, errConfigValidation)
	assert.ErrorIs(t, err, errInvalidDistance)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(c *Config)
		err    error
	}{
		{
			name:   "valid",
			modify: func(_ *Config) {},
		},
		{
			name:   "empty workdir",
			modify: func(c *Config) { c.Paths.WorkDir = " " },
			err:    errEmptyPath,
		},
		{
			name:   "empty export",
			modify: func(c *Config) { c.Paths.Export = "" },
			err:    errEmptyPath,
		},
		{
			name: "empty export with skip import",
			modify: func(c *Config) {
				c.Paths.Export = ""
				c.CLI.SkipImport = true
			},
		},
		{
			name:   "negative long run distance",
			modify: func(c *Config) { c.Report.LongRunDistance = -1 },
			err:    errInvalidDistance,
		},
		{
			name:   "aerobic heart rate above max",
			modify: func(c *Config) { c.Report.AerobicHR = 199 },
			err:    errInvalidAerobicHR,
		},
		{
			name:   "negative aerobic heart rate",
			modify: func(c *Config) { c.Report.AerobicHR = -5 },
			err:    errInvalidAerobicHR,
		},
		{
			name:   "chart too small",
			modify: func(c *Config) { c.Chart.Height = 100 },
			err:    errInvalidChartSize,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.modify(c)

			err := c.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestApplyCLIOptions(t *testing.T) {
	now := time.Date(2024, time.February, 10, 15, 30, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		opts      CLIOptions
		wantSince time.Time
		err       error
	}{
		{
			name: "no filter",
		},
		{
			name:      "period",
			opts:      CLIOptions{Period: "7days"},
			wantSince: time.Date(2024, time.February, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "all time period",
			opts: CLIOptions{Period: string(timeutil.PeriodAllTime)},
		},
		{
			name: "unknown period",
			opts: CLIOptions{Period: "fortnight"},
			err:  errInvalidPeriod,
		},
		{
			name: "since and period",
			opts: CLIOptions{Since: "2024-01-01", Period: "30days"},
			err:  errSinceAndPeriod,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()

			err := applyCLIOptions(c, tc.opts, now)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.True(
				t,
				tc.wantSince.Equal(c.CLI.Since),
				"expected %v, got %v",
				tc.wantSince,
				c.CLI.Since,
			)
		})
	}
}

func TestApplyCLIOptionsSince(t *testing.T) {
	now := time.Date(2024, time.February, 10, 15, 30, 0, 0, time.UTC)

	testCases := []struct {
		since string
		want  string
	}{
		{since: "2024-01-01", want: "2024-01-01"},
		{since: "3 days ago", want: "2024-02-07"},
	}

	for _, tc := range testCases {
		t.Run(tc.since, func(t *testing.T) {
			c := validConfig()

			err := applyCLIOptions(c, CLIOptions{Since: tc.since}, now)
			require.NoError(t, err)

			assert.Equal(t, tc.want, c.CLI.Since.Format(time.DateOnly))
		})
	}
}

func TestWithCLIConfig(t *testing.T) {
	f := flag.NewFlagSet("report", flag.PanicOnError)

	flags := map[string]string{
		"export":  "/tmp/Activities.csv",
		"workdir": "/tmp/runs",
		"viewer":  "feh",
		"save":    "/tmp/charts",
	}

	for k, v := range flags {
		_ = f.String(k, "", "")

		require.NoError(t, f.Set(k, v))
	}

	_ = f.Bool("skip-import", false, "")
	_ = f.Bool("no-display", false, "")

	require.NoError(t, f.Set("no-display", "true"))

	ctx := cli.NewContext(&cli.App{}, f, nil)

	c := validConfig()

	require.NoError(t, WithCLIConfig(ctx)(c))

	assert.Equal(t, "/tmp/Activities.csv", c.Paths.Export)
	assert.Equal(t, "/tmp/runs", c.Paths.WorkDir)
	assert.Equal(t, "feh", c.Chart.Viewer)
	assert.Equal(t, "/tmp/charts", c.CLI.SaveDir)
	assert.True(t, c.CLI.NoDisplay)
	assert.False(t, c.CLI.SkipImport)
	assert.True(t, c.CLI.Since.IsZero())
}

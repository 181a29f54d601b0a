package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/pacer/internal/osutil"
	"github.com/ayoisaiah/pacer/internal/pathutil"
	"github.com/ayoisaiah/pacer/internal/report"
	"github.com/ayoisaiah/pacer/internal/stats"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyExport          = "paths.export"
	keyWorkDir         = "paths.workdir"
	keyLongRunDistance = "report.long_run_distance"
	keyAerobicHR       = "report.aerobic_hr"
	keyViewer          = "chart.viewer"
	keyChartWidth      = "chart.width"
	keyChartHeight     = "chart.height"
	keyDarkTheme       = "display.dark_theme"
)

const (
	defaultChartWidth  = 1200
	defaultChartHeight = 600
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A file holding the defaults is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return v.Unmarshal(c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyExport, pathutil.DefaultExportPath())
	v.SetDefault(keyWorkDir, ".")
	v.SetDefault(keyLongRunDistance, report.LongRunDistance)
	v.SetDefault(keyAerobicHR, stats.AerobicHR)
	v.SetDefault(keyViewer, "")
	v.SetDefault(keyChartWidth, defaultChartWidth)
	v.SetDefault(keyChartHeight, defaultChartHeight)
	v.SetDefault(keyDarkTheme, true)
}

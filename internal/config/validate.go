package config

import (
	"strings"

	"github.com/ayoisaiah/pacer/internal/models"
)

const (
	minChartWidth  = 600
	minChartHeight = 300
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}

	if c.Report.LongRunDistance <= 0 {
		return errInvalidDistance.Fmt(c.Report.LongRunDistance)
	}

	if c.Report.AerobicHR < 0 || c.Report.AerobicHR >= models.MaxHR {
		return errInvalidAerobicHR.Fmt(0, models.MaxHR-1, c.Report.AerobicHR)
	}

	if c.Chart.Width < minChartWidth || c.Chart.Height < minChartHeight {
		return errInvalidChartSize.Fmt(
			minChartWidth,
			minChartHeight,
			c.Chart.Width,
			c.Chart.Height,
		)
	}

	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		return errEmptyPath.Fmt("workdir")
	}

	if strings.TrimSpace(c.Paths.Export) == "" && !c.CLI.SkipImport {
		return errEmptyPath.Fmt("export")
	}

	return nil
}

package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pacer/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pacer app instance.
func Get() *cli.App {
	pacerApp := &cli.App{
		Name: "pacer",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Pacer turns a Garmin Connect activity export into running reports. It
		buckets runs by heart rate zone and distance, tracks the weekly average
		pace of aerobic runs and charts pace over time for each zone.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "report",
				Usage:  "Import the latest export and write the run reports (default)",
				Flags:  reportFlags(),
				Action: reportAction,
			},
			{
				Name:   "chart",
				Usage:  "Chart pace over time for each heart rate zone report",
				Flags:  chartFlags(),
				Action: chartAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: append(
			[]cli.Flag{configFlag, noColorFlag},
			reportFlags()...,
		),
		Action: reportAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return pacerApp
}

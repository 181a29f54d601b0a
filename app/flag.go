package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pacer/internal/timeutil"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the configuration file (default: $XDG_CONFIG_HOME/pacer/config.yml)",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	exportFlag = &cli.StringFlag{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Path to the downloaded activity export (default: ~/Downloads/Activities.csv)",
	}

	workDirFlag = &cli.StringFlag{
		Name:    "workdir",
		Aliases: []string{"w"},
		Usage:   "Directory that receives the imported export and the generated reports",
	}

	skipImportFlag = &cli.BoolFlag{
		Name:  "skip-import",
		Usage: "Report on the export already in the working directory instead of moving a new one in",
	}

	sinceFlag = &cli.StringFlag{
		Name:    "since",
		Aliases: []string{"s"},
		Usage:   "Only include runs on or after this date (e.g. '2024-01-01' or '3 months ago')",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage: "Only include runs within a predefined period: " +
			periodUsage(),
	}

	saveFlag = &cli.StringFlag{
		Name:  "save",
		Usage: "Save each chart as zone-N-chart.png in this directory",
	}

	noDisplayFlag = &cli.BoolFlag{
		Name:  "no-display",
		Usage: "Do not open the charts in a viewer",
	}

	viewerFlag = &cli.StringFlag{
		Name:  "viewer",
		Usage: "Command used to open charts (default: xdg-open, open or rundll32 depending on the platform)",
	}
)

func periodUsage() string {
	var s string

	for i, p := range timeutil.PeriodCollection {
		if i > 0 {
			s += ", "
		}

		s += string(p)
	}

	return s
}

func reportFlags() []cli.Flag {
	return []cli.Flag{
		exportFlag,
		workDirFlag,
		skipImportFlag,
		sinceFlag,
		periodFlag,
	}
}

func chartFlags() []cli.Flag {
	return []cli.Flag{
		workDirFlag,
		saveFlag,
		noDisplayFlag,
		viewerFlag,
	}
}

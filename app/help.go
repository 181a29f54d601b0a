package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	author := fmt.Sprintf(
		"{{if len .Authors}}%s\n\t\t{{range .Authors}}{{ . }}{{end}}{{end}}\n\n",
		pterm.Yellow("AUTHOR"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	files := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("FILES"),
		filesHelp(),
	)

	website := fmt.Sprintf(
		"%s\n\t\thttps://github.com/ayoisaiah/pacer\n",
		pterm.Yellow("WEBSITE"),
	)

	return description + usage + author + version + commands + options + env + files + website
}

func envHelp() string {
	return `
PACER_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

PACER_ENV: use config_<env>.yml and pacer_<env>.log instead of the default file names.`
}

func filesHelp() string {
	return `
activities.csv: the imported export, kept in the working directory.

all-runs.csv, long-runs.csv, zone-0-runs.csv ... zone-5-runs.csv: running activities with the
Date, Distance, Time, Avg HR and Avg Pace columns.

avg-pace.csv: average pace per week of aerobic runs.`
}

package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pacer/internal/chart"
	"github.com/ayoisaiah/pacer/internal/config"
	"github.com/ayoisaiah/pacer/internal/ingest"
	"github.com/ayoisaiah/pacer/internal/logger"
	"github.com/ayoisaiah/pacer/internal/osutil"
	"github.com/ayoisaiah/pacer/internal/pathutil"
	"github.com/ayoisaiah/pacer/internal/report"
	"github.com/ayoisaiah/pacer/internal/stats"
	"github.com/ayoisaiah/pacer/internal/ui"
)

const (
	envNoColor      = "NO_COLOR"
	envPacerNoColor = "PACER_NO_COLOR"
)

// logCloser closes the log file opened in beforeAction.
var logCloser io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func configPath(ctx *cli.Context) string {
	return firstNonEmptyString(ctx.String("config"), pathutil.ConfigFilePath())
}

// loadConfig merges the config file with the command-line flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(configPath(ctx)),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded config", slog.String("config", spew.Sdump(cfg)))

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// reportAction handles the report command and the default action. It imports
// the export, writes every artifact and prints the statistics.
func reportAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	return runReport(cfg, config.Stdout)
}

func runReport(cfg *config.Config, w io.Writer) error {
	dir := cfg.Paths.WorkDir

	if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return err
	}

	exportPath := filepath.Join(dir, report.ExportFile)

	if !cfg.CLI.SkipImport {
		if err := ingest.Import(cfg.Paths.Export, exportPath); err != nil {
			return err
		}

		pterm.Success.Printfln("imported %s", cfg.Paths.Export)
	}

	runs, err := ingest.Load(exportPath)
	if err != nil {
		return err
	}

	runs = ingest.Since(runs, cfg.CLI.Since)

	ui.Banner(w, "Reports")

	writer := &report.Writer{
		Dir:             dir,
		LongRunDistance: cfg.Report.LongRunDistance,
	}

	// the zone artifacts feed the chart command even when no weekly pace
	// can be computed
	if err := writer.WriteRuns(runs); err != nil {
		return err
	}

	totals, err := stats.Compute(runs)
	if err != nil {
		return err
	}

	weeks, err := stats.WeeklyPace(runs, cfg.Report.AerobicHR)
	if err != nil {
		return err
	}

	if err := writer.WriteWeeklyPace(weeks); err != nil {
		return err
	}

	s := &stats.Stats{
		Totals: totals,
		Weekly: weeks,
	}

	s.Show(w)

	return nil
}

// chartAction handles the chart command which renders the zone reports
// produced by the report command.
func chartAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	return runChart(cfg, &chart.Viewer{Command: cfg.Chart.Viewer})
}

func runChart(cfg *config.Config, viewer chart.Displayer) error {
	r := &chart.Renderer{
		Dir:     cfg.Paths.WorkDir,
		SaveDir: cfg.CLI.SaveDir,
		Width:   cfg.Chart.Width,
		Height:  cfg.Chart.Height,
	}

	if !cfg.CLI.NoDisplay {
		r.Displayer = viewer
	}

	if r.Displayer == nil && r.SaveDir == "" {
		pterm.Warning.Println("charts are neither displayed nor saved; use --save to keep them")
	}

	return r.Run()
}

// editConfigAction handles the edit-config command which opens the pacer
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	path := configPath(ctx)

	// writes the defaults on first use so there is something to edit
	if _, err := config.New(config.WithViperConfig(path)); err != nil {
		return err
	}

	cmd := exec.Command(editor, path)

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/pacer/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if PACER_NO_COLOR is set
	if _, exists := os.LookupEnv(envPacerNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	l, closer := logger.New(logger.Options{
		Path:  pathutil.LogFilePath(),
		Level: slog.LevelDebug,
	})

	slog.SetDefault(l)

	logCloser = closer

	slog.InfoContext(
		ctx.Context,
		"starting pacer",
		slog.String("version", config.Version),
		slog.Any("args", ctx.Args().Slice()),
	)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting pacer")

	if logCloser != nil {
		return logCloser.Close()
	}

	return nil
}

package chart

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/huh"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pacer/internal/osutil"
)

var errEmptyViewer = errors.New("chart viewer command is empty")

// Displayer shows a rendered chart to the operator. It returns false when
// the operator does not want to see any more charts.
type Displayer interface {
	Display(path string, zone int) (bool, error)
}

// DefaultViewer returns the command used to open images on this platform.
func DefaultViewer() string {
	switch runtime.GOOS {
	case osutil.Windows:
		return "rundll32 url.dll,FileProtocolHandler"
	case osutil.Darwin:
		return "open"
	default:
		return "xdg-open"
	}
}

// Viewer opens charts with an external program and waits for the operator
// before moving on.
type Viewer struct {
	// Command is split like a shell command line; the chart path is
	// appended as the last argument
	Command string
}

// Display opens path in the viewer and blocks until the operator confirms.
func (v *Viewer) Display(path string, zone int) (bool, error) {
	command := v.Command
	if command == "" {
		command = DefaultViewer()
	}

	args, err := shellquote.Split(command)
	if err != nil {
		return false, fmt.Errorf("parsing viewer command: %w", err)
	}

	if len(args) == 0 {
		return false, errEmptyViewer
	}

	args = append(args, path)

	//nolint:gosec // the viewer command comes from the operator's config
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return false, fmt.Errorf("opening chart viewer: %w", err)
	}

	defer cmd.Process.Release()

	next := true

	err = huh.NewConfirm().
		Title(fmt.Sprintf("Showing zone %d. Continue to the next zone?", zone)).
		Affirmative("Next").
		Negative("Stop").
		Value(&next).
		Run()
	if err != nil {
		return false, err
	}

	return next, nil
}

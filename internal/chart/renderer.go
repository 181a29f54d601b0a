package chart

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pacer/internal/models"
	"github.com/ayoisaiah/pacer/internal/osutil"
	"github.com/ayoisaiah/pacer/internal/report"
)

// MinPoints is the number of runs a zone needs before it is charted.
const MinPoints = 2

// ChartFile returns the name of the saved chart for zone i.
func ChartFile(i int) string {
	return fmt.Sprintf("zone-%d-chart.png", i)
}

// Renderer charts every zone artifact found in Dir.
type Renderer struct {
	// Displayer shows each chart; nil disables display
	Displayer Displayer
	Dir       string
	// SaveDir persists charts when set
	SaveDir string
	Width   int
	Height  int
}

// Run renders the zones in order. Zones with fewer than MinPoints runs are
// skipped. It stops early if the operator declines to continue.
func (r *Renderer) Run() error {
	var tmpDir string

	if r.Displayer != nil {
		var err error

		tmpDir, err = os.MkdirTemp("", "pacer-charts-")
		if err != nil {
			return err
		}

		defer os.RemoveAll(tmpDir)
	}

	if r.SaveDir != "" {
		if err := os.MkdirAll(r.SaveDir, osutil.DirPermission); err != nil {
			return err
		}
	}

	for i := range models.Zones {
		points, err := LoadZone(filepath.Join(r.Dir, report.ZoneFile(i)))
		if err != nil {
			return err
		}

		if len(points) < MinPoints {
			slog.Debug("skipping zone", slog.Int("zone", i), slog.Int("runs", len(points)))
			continue
		}

		img, err := Render(i, points, r.Width, r.Height)
		if err != nil {
			return err
		}

		if r.SaveDir != "" {
			path := filepath.Join(r.SaveDir, ChartFile(i))

			if err := writePNG(path, img); err != nil {
				return err
			}

			pterm.Success.Printfln("saved zone %d chart to %s", i, path)
		}

		if r.Displayer == nil {
			continue
		}

		path := filepath.Join(tmpDir, ChartFile(i))
		if err := writePNG(path, img); err != nil {
			return err
		}

		next, err := r.Displayer.Display(path, i)
		if err != nil {
			return err
		}

		if !next {
			break
		}
	}

	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return f.Close()
}

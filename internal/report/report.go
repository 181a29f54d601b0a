// Package report writes the CSV artifacts derived from running activities
package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pacer/internal/models"
)

// Artifact file names.
const (
	ExportFile     = "activities.csv"
	AllRunsFile    = "all-runs.csv"
	LongRunsFile   = "long-runs.csv"
	WeeklyPaceFile = "avg-pace.csv"
)

// LongRunDistance is the minimum distance in miles of a long run.
const LongRunDistance = 7.0

// ZoneFile returns the name of the artifact holding runs in heart rate zone i.
func ZoneFile(i int) string {
	return fmt.Sprintf("zone-%d-runs.csv", i)
}

// LongRuns returns the runs of at least minDistance miles.
func LongRuns(runs []models.Run, minDistance float64) []models.Run {
	var long []models.Run

	for _, r := range runs {
		if r.Distance >= minDistance {
			long = append(long, r)
		}
	}

	return long
}

// ZoneRuns returns the runs whose average heart rate falls in zone.
func ZoneRuns(runs []models.Run, zone models.HRZone) []models.Run {
	var matched []models.Run

	for _, r := range runs {
		if zone.Contains(r.AvgHR) {
			matched = append(matched, r)
		}
	}

	return matched
}

// Writer writes artifacts into Dir.
type Writer struct {
	Dir             string
	LongRunDistance float64
}

// Write produces every artifact family: all runs, long runs, one file per
// heart rate zone and the weekly average pace. Existing files are
// overwritten.
func (w *Writer) Write(runs []models.Run, weeks []models.WeeklyPace) error {
	if err := w.WriteRuns(runs); err != nil {
		return err
	}

	return w.WriteWeeklyPace(weeks)
}

// WriteRuns writes the all runs, long runs and heart rate zone artifacts.
func (w *Writer) WriteRuns(runs []models.Run) error {
	err := w.writeRuns(AllRunsFile, runs)
	if err != nil {
		return err
	}

	pterm.Success.Println("extracted all run data and wrote to csv")

	err = w.writeRuns(LongRunsFile, LongRuns(runs, w.LongRunDistance))
	if err != nil {
		return err
	}

	pterm.Success.Println("extracted long run data and wrote to csv")

	for i, zone := range models.Zones {
		err = w.writeRuns(ZoneFile(i), ZoneRuns(runs, zone))
		if err != nil {
			return err
		}

		pterm.Success.Printfln("extracted zone %d run data and wrote to csv", i)
	}

	return nil
}

// WriteWeeklyPace writes the weekly average pace artifact.
func (w *Writer) WriteWeeklyPace(weeks []models.WeeklyPace) error {
	records := make([][]string, 0, len(weeks))
	for _, week := range weeks {
		records = append(records, week.Record())
	}

	err := w.writeCSV(WeeklyPaceFile, models.WeeklyPaceHeader, records)
	if err != nil {
		return err
	}

	pterm.Success.Println("extracted weekly avg pace data and wrote to csv")

	return nil
}

func (w *Writer) writeRuns(name string, runs []models.Run) error {
	records := make([][]string, 0, len(runs))
	for _, r := range runs {
		records = append(records, r.Record())
	}

	return w.writeCSV(name, models.Header, records)
}

func (w *Writer) writeCSV(name string, header []string, records [][]string) error {
	path := filepath.Join(w.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}

	slog.Info("wrote artifact", slog.String("path", path), slog.Int("rows", len(records)))

	return nil
}

// Package ingest reads running activities from a Garmin Connect export
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/pacer/internal/models"
	"github.com/ayoisaiah/pacer/internal/pace"
	"github.com/ayoisaiah/pacer/internal/timeutil"
)

var (
	ErrMissingHeader = errors.New("export is empty: expected a header row")
	ErrMalformedRow  = errors.New("malformed running activity")
)

// Read parses a CSV export and returns its running activities in the order
// they appear. The first row is treated as a header. Any running activity
// that cannot be parsed fails the whole read.
func Read(r io.Reader) ([]models.Run, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}

	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	if !slices.Equal(header, Schema) {
		slog.Warn(
			"export header differs from the known schema",
			slog.Int("columns", len(header)),
			slog.Int("expected_columns", len(Schema)),
		)
	}

	var runs []models.Run

	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}

		if row[0] != ActivityRunning {
			continue
		}

		run, err := parseRun(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		runs = append(runs, run)
	}

	slog.Debug("parsed export", slog.Int("runs", len(runs)))

	return runs, nil
}

// Load reads the export at path.
func Load(path string) ([]models.Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

func parseRun(row []string) (models.Run, error) {
	if len(row) <= colAvgPace {
		return models.Run{}, fmt.Errorf(
			"%w: expected at least %d columns, got %d",
			ErrMalformedRow,
			colAvgPace+1,
			len(row),
		)
	}

	var fields [len(projected)]string
	for i, col := range projected {
		fields[i] = strings.TrimSpace(row[col])
	}

	date, err := time.Parse(timeutil.DateTimeLayout, fields[0])
	if err != nil {
		return models.Run{}, fmt.Errorf("%w: date: %w", ErrMalformedRow, err)
	}

	distance, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return models.Run{}, fmt.Errorf("%w: distance: %w", ErrMalformedRow, err)
	}

	elapsed, err := pace.ParseElapsed(fields[2])
	if err != nil {
		return models.Run{}, fmt.Errorf("%w: time: %w", ErrMalformedRow, err)
	}

	avgHR, err := strconv.Atoi(fields[3])
	if err != nil {
		return models.Run{}, fmt.Errorf("%w: avg hr: %w", ErrMalformedRow, err)
	}

	avgPace, err := pace.Parse(fields[4])
	if err != nil {
		return models.Run{}, fmt.Errorf("%w: avg pace: %w", ErrMalformedRow, err)
	}

	return models.NewRun(date, distance, elapsed, avgHR, avgPace, fields), nil
}

// Since returns the runs that started on or after t, preserving order. A zero
// t keeps every run.
func Since(runs []models.Run, t time.Time) []models.Run {
	if t.IsZero() {
		return runs
	}

	filtered := make([]models.Run, 0, len(runs))

	for _, run := range runs {
		if run.Date.Before(t) {
			continue
		}

		filtered = append(filtered, run)
	}

	return filtered
}

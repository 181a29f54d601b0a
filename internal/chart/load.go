// Package chart renders pace charts for the heart rate zone artifacts
package chart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/araddon/dateparse"

	"github.com/ayoisaiah/pacer/internal/models"
	"github.com/ayoisaiah/pacer/internal/pace"
)

var errUnexpectedHeader = errors.New("unexpected zone file header")

// Point is one run plotted on a chart.
type Point struct {
	Date     time.Time
	Distance float64
	// Pace is in seconds per mile
	Pace float64
}

// ReadZone parses a zone artifact. Dates are parsed in UTC.
func ReadZone(r io.Reader) ([]Point, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(models.Header)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if !slices.Equal(header, models.Header) {
		return nil, fmt.Errorf("%w: %v", errUnexpectedHeader, header)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, len(records))

	for i, rec := range records {
		date, err := dateparse.ParseIn(rec[0], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("row %d: date: %w", i+1, err)
		}

		distance, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: distance: %w", i+1, err)
		}

		p, err := pace.Parse(rec[4])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		points = append(points, Point{
			Date:     date,
			Distance: distance,
			Pace:     p.Seconds(),
		})
	}

	return points, nil
}

// LoadZone reads the zone artifact at path.
func LoadZone(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, err := ReadZone(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

package models

import (
	"time"

	"github.com/ayoisaiah/pacer/internal/pace"
)

// Header is the first row of every run artifact.
var Header = []string{"Date", "Distance", "Time", "Avg HR", "Avg Pace"}

// WeeklyPaceHeader is the first row of the weekly pace artifact.
var WeeklyPaceHeader = []string{"Date", "Avg Pace"}

// Run is a running activity projected from the raw export.
type Run struct {
	// Date is the start time of the activity
	Date     time.Time
	Distance float64 // miles
	// Time is the elapsed time of the activity
	Time    time.Duration
	AvgHR   int
	AvgPace pace.Pace

	// fields holds the projected columns exactly as they appeared in the
	// export
	fields [5]string
}

// NewRun creates a Run that remembers the source text of its five projected
// columns.
func NewRun(
	date time.Time,
	distance float64,
	elapsed time.Duration,
	avgHR int,
	avgPace pace.Pace,
	fields [5]string,
) Run {
	return Run{
		Date:     date,
		Distance: distance,
		Time:     elapsed,
		AvgHR:    avgHR,
		AvgPace:  avgPace,
		fields:   fields,
	}
}

// Record returns the run as a CSV record in Header order.
func (r Run) Record() []string {
	rec := make([]string, len(r.fields))
	copy(rec, r.fields[:])

	return rec
}

// WeeklyPace is the average pace of the runs in one weekly bucket.
type WeeklyPace struct {
	Date time.Time
	Pace pace.Pace
	Runs int
}

// Record returns the bucket as a CSV record in WeeklyPaceHeader order.
func (w WeeklyPace) Record() []string {
	return []string{w.Date.Format(time.DateOnly), w.Pace.String()}
}

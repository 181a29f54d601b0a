package stats

import (
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/ayoisaiah/pacer/internal/models"
	"github.com/ayoisaiah/pacer/internal/pace"
	"github.com/ayoisaiah/pacer/internal/timeutil"
)

// AerobicHR is the heart rate a run must exceed to count towards the weekly
// pace.
const AerobicHR = 138

var ErrNoAerobicRuns = errors.New(
	"no runs above the aerobic heart rate threshold: cannot compute weekly pace",
)

type sample struct {
	date time.Time
	pace pace.Pace
}

type bucket struct {
	paces []pace.Pace
	start time.Time
	last  time.Time
}

// WeeklyPace groups runs whose average heart rate is strictly above
// threshold into rolling 7-day buckets and averages the pace of each bucket.
//
// A bucket opens at the date of its earliest run. The first run dated a week
// or more after that closes the bucket and opens the next one. A closed
// bucket is keyed by the date of the run that closed it. The final bucket is
// keyed by the date of its last run unless that date already keys an earlier
// bucket, in which case the earlier bucket is kept.
func WeeklyPace(runs []models.Run, threshold int) ([]models.WeeklyPace, error) {
	samples := make([]sample, 0, len(runs))

	for _, r := range runs {
		if r.AvgHR <= threshold {
			continue
		}

		samples = append(samples, sample{
			date: timeutil.RoundToStart(r.Date),
			pace: r.AvgPace,
		})
	}

	if len(samples) == 0 {
		return nil, ErrNoAerobicRuns
	}

	slices.SortStableFunc(samples, func(a, b sample) int {
		return a.date.Compare(b.date)
	})

	var weeks []models.WeeklyPace

	seen := make(map[string]bool)

	closeBucket := func(b *bucket, key time.Time) error {
		if seen[key.Format(time.DateOnly)] {
			slog.Debug(
				"dropping weekly bucket with a duplicate date",
				slog.String("date", key.Format(time.DateOnly)),
				slog.Int("runs", len(b.paces)),
			)

			return nil
		}

		avg, err := pace.Mean(b.paces)
		if err != nil {
			return err
		}

		seen[key.Format(time.DateOnly)] = true

		weeks = append(weeks, models.WeeklyPace{
			Date: key,
			Pace: avg,
			Runs: len(b.paces),
		})

		return nil
	}

	current := &bucket{
		paces: []pace.Pace{samples[0].pace},
		start: samples[0].date,
		last:  samples[0].date,
	}

	for _, s := range samples[1:] {
		if s.date.Before(timeutil.WeekAfter(current.start)) {
			current.paces = append(current.paces, s.pace)
			current.last = s.date

			continue
		}

		if err := closeBucket(current, s.date); err != nil {
			return nil, err
		}

		current = &bucket{
			paces: []pace.Pace{s.pace},
			start: s.date,
			last:  s.date,
		}
	}

	if err := closeBucket(current, current.last); err != nil {
		return nil, err
	}

	return weeks, nil
}

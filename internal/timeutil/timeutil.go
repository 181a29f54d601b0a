// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"time"
)

// DateTimeLayout is the timestamp format used by the activity export.
const DateTimeLayout = time.DateTime

// DaysInAWeek is the length of a weekly pace bucket.
const DaysInAWeek = 7

type Period string

const (
	PeriodAllTime Period = "all-time"
	Period7Days   Period = "7days"
	Period14Days  Period = "14days"
	Period30Days  Period = "30days"
	Period90Days  Period = "90days"
	Period180Days Period = "180days"
	Period365Days Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime: 0,
	Period7Days:   -6,
	Period14Days:  -13,
	Period30Days:  -29,
	Period90Days:  -89,
	Period180Days: -179,
	Period365Days: -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// Start returns the start of the period relative to now. The zero time is
// returned for PeriodAllTime.
func (p Period) Start(now time.Time) time.Time {
	if p == PeriodAllTime {
		return time.Time{}
	}

	return RoundToStart(now.AddDate(0, 0, Range[p]))
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// WeekAfter returns the calendar date one week after t.
func WeekAfter(t time.Time) time.Time {
	return RoundToStart(t).AddDate(0, 0, DaysInAWeek)
}

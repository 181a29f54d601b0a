package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodStart(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)

	assert.True(t, PeriodAllTime.Start(now).IsZero())
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), Period7Days.Start(now))
	assert.Equal(t, time.Date(2023, 12, 12, 0, 0, 0, 0, time.UTC), Period90Days.Start(now))
}

func TestWeekAfter(t *testing.T) {
	got := WeekAfter(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), got)
}

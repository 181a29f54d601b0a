// Package pace provides a minutes:seconds per mile value type with duration
// arithmetic.
package pace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidPace    = errors.New("invalid pace")
	ErrInvalidElapsed = errors.New("invalid elapsed time")
	ErrNoPaces        = errors.New("cannot average an empty set of paces")
)

// Pace is the time taken to cover one mile.
type Pace time.Duration

// Parse reads a pace in the form M:SS (e.g. "7:30").
func Parse(s string) (Pace, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPace, s)
	}

	mins, err := strconv.Atoi(parts[0])
	if err != nil || mins < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPace, s)
	}

	secs, err := strconv.Atoi(parts[1])
	if err != nil || secs < 0 || secs >= 60 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPace, s)
	}

	return Pace(time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Pace {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

// Add returns the sum of p and o.
func (p Pace) Add(o Pace) Pace {
	return p + o
}

// Div divides p into n equal parts. It returns zero when n is not positive.
func (p Pace) Div(n int) Pace {
	if n <= 0 {
		return 0
	}

	return Pace(time.Duration(p) / time.Duration(n))
}

// Duration returns p as a time.Duration.
func (p Pace) Duration() time.Duration {
	return time.Duration(p)
}

// Seconds returns p in seconds per mile.
func (p Pace) Seconds() float64 {
	return time.Duration(p).Seconds()
}

// String formats p as minutes:seconds. Sub-second precision is discarded.
func (p Pace) String() string {
	secs := int64(time.Duration(p) / time.Second)

	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Mean returns the arithmetic mean of paces.
func Mean(paces []Pace) (Pace, error) {
	if len(paces) == 0 {
		return 0, ErrNoPaces
	}

	var sum Pace
	for _, p := range paces {
		sum = sum.Add(p)
	}

	return sum.Div(len(paces)), nil
}

// FormatSeconds renders a seconds-per-mile value as m:ss.
func FormatSeconds(secs float64) string {
	return Pace(time.Duration(secs * float64(time.Second))).String()
}

// ParseElapsed reads an elapsed time in the form HH:MM:SS or MM:SS, with an
// optional fractional seconds part (e.g. "01:02:03.4").
func ParseElapsed(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidElapsed, s)
	}

	secs, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil || secs < 0 || secs >= 60 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidElapsed, s)
	}

	d := time.Duration(secs * float64(time.Second))

	units := []time.Duration{time.Minute, time.Hour}

	for i, part := range parts[:len(parts)-1] {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidElapsed, s)
		}

		d += time.Duration(n) * units[len(parts)-2-i]
	}

	return d, nil
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoneOf(t *testing.T) {
	cases := []struct {
		hr   int
		zone int
		ok   bool
	}{
		{0, 0, true},
		{98, 0, true},
		{99, 1, true},
		{118, 1, true},
		{119, 2, true},
		{138, 2, true},
		{139, 3, true},
		{158, 3, true},
		{159, 4, true},
		{179, 5, true},
		{198, 5, true},
		{199, -1, false},
		{220, -1, false},
		{-1, -1, false},
	}

	for _, tc := range cases {
		zone, ok := ZoneOf(tc.hr)

		assert.Equal(t, tc.ok, ok, "hr %d", tc.hr)
		assert.Equal(t, tc.zone, zone, "hr %d", tc.hr)
	}
}

func TestZonesAreContiguous(t *testing.T) {
	assert.Equal(t, 0, Zones[0].Bottom)
	assert.Equal(t, MaxHR, Zones[len(Zones)-1].Top)

	for i := 1; i < len(Zones); i++ {
		assert.Equal(t, Zones[i-1].Top, Zones[i].Bottom)
	}
}

func TestZoneMembershipIsExclusive(t *testing.T) {
	for hr := 0; hr < MaxHR; hr++ {
		matches := 0

		for _, z := range Zones {
			if z.Contains(hr) {
				matches++
			}
		}

		assert.Equal(t, 1, matches, "hr %d", hr)
	}
}

package models

import "fmt"

// MaxHR is the upper bound of the highest heart rate zone.
const MaxHR = 199

// HRZone is a half-open heart rate range [Bottom, Top) in bpm.
type HRZone struct {
	Bottom int
	Top    int
}

// Zones are the fixed heart rate zones runs are bucketed into.
var Zones = [...]HRZone{
	{0, 99},
	{99, 119},
	{119, 139},
	{139, 159},
	{159, 179},
	{179, MaxHR},
}

// Contains reports whether hr falls within the zone.
func (z HRZone) Contains(hr int) bool {
	return hr >= z.Bottom && hr < z.Top
}

func (z HRZone) String() string {
	return fmt.Sprintf("%d-%d bpm", z.Bottom, z.Top)
}

// ZoneOf returns the index of the zone that contains hr. The second return
// value is false when hr is outside every zone.
func ZoneOf(hr int) (int, bool) {
	for i, z := range Zones {
		if z.Contains(hr) {
			return i, true
		}
	}

	return -1, false
}

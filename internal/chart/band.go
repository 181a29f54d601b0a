package chart

import "fmt"

// Band is a range of run distances plotted on its own panel.
type Band struct {
	label    string
	contains func(distance float64) bool
}

// Bands split runs into short, medium and long distances.
var Bands = [...]Band{
	{
		label:    "< 5 Mile Runs",
		contains: func(d float64) bool { return d < 5 },
	},
	{
		label:    "5-10 Mile Runs",
		contains: func(d float64) bool { return d >= 5 && d <= 10 },
	},
	{
		label:    "10+ Mile Runs",
		contains: func(d float64) bool { return d > 10 },
	},
}

// Title returns the panel title for the band in the given zone.
func (b Band) Title(zone int) string {
	return fmt.Sprintf("%s - Zone %d", b.label, zone)
}

// Contains reports whether a run of distance miles belongs to the band.
func (b Band) Contains(distance float64) bool {
	return b.contains(distance)
}

// Split partitions points by band, preserving their order.
func Split(points []Point) [len(Bands)][]Point {
	var split [len(Bands)][]Point

	for _, p := range points {
		for i, b := range Bands {
			if b.Contains(p.Distance) {
				split[i] = append(split[i], p)
				break
			}
		}
	}

	return split
}

// Package stats computes and reports running statistics
package stats

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pacer/internal/models"
	"github.com/ayoisaiah/pacer/internal/ui"
)

const barChartChar = "▇"

var ErrNoRuns = errors.New("no running activities found in the export")

// Totals summarises every run in the export.
type Totals struct {
	Runs      int
	Mileage   float64
	AvgHR     float64
	TotalTime time.Duration
	// Zones holds the number of runs in each heart rate zone
	Zones [len(models.Zones)]int
}

// Compute calculates the totals for runs.
func Compute(runs []models.Run) (Totals, error) {
	var totals Totals

	if len(runs) == 0 {
		return totals, ErrNoRuns
	}

	var hrSum int

	for _, r := range runs {
		totals.Mileage += r.Distance
		totals.TotalTime += r.Time
		hrSum += r.AvgHR

		if zone, ok := models.ZoneOf(r.AvgHR); ok {
			totals.Zones[zone]++
		}
	}

	totals.Runs = len(runs)
	totals.AvgHR = float64(hrSum) / float64(len(runs))

	return totals, nil
}

// Stats holds everything printed at the end of a report.
type Stats struct {
	Totals Totals
	Weekly []models.WeeklyPace
}

func (s *Stats) summary() string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	//nolint:gomnd // limit to first 2 units
	duration := durafmt.Parse(s.Totals.TotalTime).LimitToUnit("hours").LimitFirstN(2)

	return header +
		fmt.Sprintln("Runs:", ui.Green(s.Totals.Runs)) +
		fmt.Sprintln("Total mileage:", ui.Green(strconv.FormatFloat(s.Totals.Mileage, 'f', 2, 64))) +
		fmt.Sprintln("Avg heart rate:", ui.Green(strconv.FormatFloat(s.Totals.AvgHR, 'f', 1, 64))) +
		fmt.Sprintln("Time on feet:", ui.Green(duration))
}

func (s *Stats) weeklyTable() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Weekly avg pace")))

	data := [][]string{{"Week", "Avg Pace", "Runs"}}

	for _, w := range s.Weekly {
		data = append(data, []string{
			w.Date.Format(time.DateOnly),
			w.Pace.String(),
			strconv.Itoa(w.Runs),
		})
	}

	ui.PrintTable(data, &builder)

	return builder.String()
}

func (s *Stats) zoneChart() string {
	header := ui.Blue("\nRuns per heart rate zone")

	bars := make(pterm.Bars, 0, len(models.Zones))

	for i, z := range models.Zones {
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("Zone %d (%s)", i, z),
			Value: s.Totals.Zones[i],
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// Show writes the statistics to w.
func (s *Stats) Show(w io.Writer) {
	banner := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("STATS")

	output := fmt.Sprint(
		banner,
		s.summary(),
		s.weeklyTable(),
		s.zoneChart(),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}

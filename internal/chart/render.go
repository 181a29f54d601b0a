package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"slices"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ayoisaiah/pacer/internal/pace"
)

const (
	// paceMargin pads the y axis above and below the plotted paces (seconds)
	paceMargin = 15
	dotWidth   = 4
	fontSize   = 8
)

var lineStyle = chart.Style{
	StrokeColor: chart.ColorBlue,
	StrokeWidth: 2,
	DotColor:    chart.ColorBlue,
	DotWidth:    dotWidth,
}

var gridStyle = chart.Style{
	StrokeColor: chart.ColorAlternateGray,
	StrokeWidth: 1,
}

// paceFormatter labels the y axis in minutes:seconds.
func paceFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return pace.FormatSeconds(f)
	}

	return ""
}

// ranges returns axis ranges that keep single points and flat lines
// renderable.
func ranges(points []Point) (x, y *chart.ContinuousRange) {
	minT, maxT := points[0].Date, points[0].Date
	minP, maxP := points[0].Pace, points[0].Pace

	for _, p := range points[1:] {
		if p.Date.Before(minT) {
			minT = p.Date
		}

		if p.Date.After(maxT) {
			maxT = p.Date
		}

		minP = min(minP, p.Pace)
		maxP = max(maxP, p.Pace)
	}

	if minT.Equal(maxT) {
		minT = minT.Add(-12 * time.Hour)
		maxT = maxT.Add(12 * time.Hour)
	}

	x = &chart.ContinuousRange{
		Min: chart.TimeToFloat64(minT),
		Max: chart.TimeToFloat64(maxT),
	}

	y = &chart.ContinuousRange{
		Min: minP - paceMargin,
		Max: maxP + paceMargin,
	}

	return x, y
}

func renderPanel(title string, points []Point, width, height int) (image.Image, error) {
	if len(points) == 0 {
		return placeholder(title, width, height), nil
	}

	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		return a.Date.Compare(b.Date)
	})

	xs := make([]time.Time, len(sorted))
	ys := make([]float64, len(sorted))

	for i, p := range sorted {
		xs[i] = p.Date
		ys[i] = p.Pace
	}

	xRange, yRange := ranges(sorted)

	ch := chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: fontSize + 2},
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 30, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Date",
			Style:          chart.Style{FontSize: fontSize, TextRotationDegrees: 45},
			ValueFormatter: chart.TimeValueFormatterWithFormat(time.DateOnly),
			Range:          xRange,
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           "Pace (min:sec)",
			Style:          chart.Style{FontSize: fontSize},
			ValueFormatter: paceFormatter,
			Range:          yRange,
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    title,
				Style:   lineStyle,
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering %q: %w", title, err)
	}

	return png.Decode(&buf)
}

// placeholder is drawn in place of a panel that has no runs to plot.
func placeholder(title string, width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	face := basicfont.Face7x13

	for i, line := range []string{title, "no runs"} {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.Gray{Y: 0x60}),
			Face: face,
		}

		textWidth := d.MeasureString(line).Ceil()
		d.Dot = fixed.P(
			(width-textWidth)/2,
			height/2+i*face.Height,
		)
		d.DrawString(line)
	}

	return img
}

// Render draws one panel per distance band for the given zone and lays them
// out side by side in an image of the given size.
func Render(zone int, points []Point, width, height int) (image.Image, error) {
	split := Split(points)
	panelWidth := width / len(Bands)

	canvas := image.NewRGBA(image.Rect(0, 0, panelWidth*len(Bands), height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	for i, band := range Bands {
		panel, err := renderPanel(band.Title(zone), split[i], panelWidth, height)
		if err != nil {
			return nil, err
		}

		offset := image.Pt(i*panelWidth, 0)
		draw.Draw(
			canvas,
			panel.Bounds().Add(offset),
			panel,
			panel.Bounds().Min,
			draw.Over,
		)
	}

	return canvas, nil
}

// Encode writes img as a PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

package ui

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Chart image defaults.
const (
	ChartWidth  = 1024
	ChartHeight = 400
)

var (
	chartStroke = drawing.ColorFromHex("00b050")
	chartFill   = drawing.ColorFromHex("00b050").WithAlpha(50)
)

// RenderChartPNG writes a line chart of per-day completion percentages to w.
// X runs 1..len(percents), Y is fixed to 0..100.
func RenderChartPNG(w io.Writer, title string, percents []float64) error {
	if len(percents) == 0 {
		return fmt.Errorf("no data to chart")
	}

	xs := make([]float64, len(percents))
	ys := make([]float64, len(percents))
	for i, p := range percents {
		xs[i] = float64(i + 1)
		ys[i] = clampPercent(p)
	}
	// go-chart needs at least two points to draw a line.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	xTicks := make([]chart.Tick, 0, len(xs))
	for _, x := range xs {
		xTicks = append(xTicks, chart.Tick{Value: x, Label: fmt.Sprintf("%.0f", x)})
	}

	ch := chart.Chart{
		Title:      title,
		Width:      ChartWidth,
		Height:     ChartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 30, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "Day",
			Range: &chart.ContinuousRange{Min: xs[0], Max: xs[len(xs)-1]},
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			Name:  "%",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
			Ticks: []chart.Tick{
				{Value: 0, Label: "0"}, {Value: 25, Label: "25"}, {Value: 50, Label: "50"},
				{Value: 75, Label: "75"}, {Value: 100, Label: "100"},
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Completion",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chartStroke,
					StrokeWidth: 2,
					FillColor:   chartFill,
					DotColor:    chartStroke,
					DotWidth:    3,
				},
			},
		},
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

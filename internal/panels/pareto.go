package panels

import (
	"math"

	"github.com/samber/lo"

	"github.com/abcnoodle/marketintel/internal/chart"
	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/figures"
)

const paretoLabelLimit = 15

// Pareto builds the product concentration chart for a country and view:
// value bars, the cumulative share line and the 80% reference.
func Pareto(snap *dataset.Snapshot, country, view string) Section {
	if snap == nil || snap.Dashboard == nil || snap.Dashboard.ParetoData == nil {
		return Section{Placeholder: &Placeholder{Text: "Loading data...", Loading: true}}
	}
	items, ok := snap.Pareto(country, view)
	if !ok {
		return Section{Placeholder: &Placeholder{Text: "No data for " + country}}
	}
	if len(items) == 0 {
		return Section{Placeholder: &Placeholder{Text: "No data available"}}
	}

	points := ParetoSeries(items)
	fig, width, height := newFigure(550, 350, Margin{Top: 20, Right: 60, Bottom: 100, Left: 60})

	x := chart.NewBand(lo.Map(points, func(p ParetoPoint, _ int) string { return p.Product }), 0, width, 0.3)
	y := chart.NewLinear(0, ParetoMax(points), height, 0)
	y2 := chart.NewLinear(0, 100, height, 0)
	fig.Axes = []chart.Axis{
		chart.BandAxis(chart.Bottom, x, func(s string) string { return truncate(s, paretoLabelLimit) }).At(0, height).Rotated(),
		chart.LinearAxis(chart.Left, y, 5, func(v float64) string { return chart.FormatTick(v) + "M" }),
		chart.LinearAxis(chart.Right, y2, 5, func(v float64) string { return chart.FormatTick(v) + "%" }).At(width, 0),
	}

	barColor := figures.ColorOthers
	if view == dataset.ViewSamyang {
		barColor = figures.ColorSamyang
	}
	line := make([]chart.Point, 0, len(points))
	var dots []Mark
	for _, p := range points {
		bar := rect(x.Pos(p.Product), y.Map(p.Value), x.Bandwidth(), height-y.Map(p.Value), barColor)
		bar.Opacity = 0.8
		bar.Class = "bar"
		bar.Tip = tip(p.Product,
			"Sales: "+plain(p.Value)+"M units",
			"Cumulative: "+plain(math.Round(p.CumPct*10)/10)+"%")
		fig.add(bar)

		cx, cy := x.Mid(p.Product), y2.Map(p.CumPct)
		line = append(line, chart.Point{X: cx, Y: cy})
		dots = append(dots, circle(cx, cy, 4, figures.ColorYellow))
	}

	fig.add(Mark{Kind: MarkPath, D: chart.LinePath(line), Fill: "none", Stroke: figures.ColorYellow, StrokeWidth: 2})
	fig.add(dots...)
	fig.add(Mark{
		Kind: MarkLine, X: 0, X2: width, Y: y2.Map(80), Y2: y2.Map(80),
		Stroke: figures.ColorWhite, Dash: "4,4", Opacity: 0.5,
	})

	return Section{
		Figure:   fig,
		Insights: []figures.Insight{figures.Concentration(country, view == dataset.ViewSamyang)},
	}
}

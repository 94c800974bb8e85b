package panels

import (
	"time"

	"github.com/samber/lo"

	"github.com/abcnoodle/marketintel/internal/chart"
	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/figures"
)

type weeklyLine struct {
	label string
	color string
	value func(WeeklySample) float64
}

var weeklyLines = []weeklyLine{
	{"Samyang", figures.ColorSamyang, func(s WeeklySample) float64 { return s.Samyang }},
	{"Competitors", figures.ColorOthers, func(s WeeklySample) float64 { return s.Others }},
}

// Seasonality builds the weekly Samyang vs competitor trend for a country.
func Seasonality(snap *dataset.Snapshot, country string) Section {
	if snap == nil || snap.Dashboard == nil || snap.Dashboard.WeeklyData == nil {
		return Section{Placeholder: &Placeholder{Text: "Loading data...", Loading: true}}
	}
	samples := WeeklySeries(snap.Weekly(country))
	if len(samples) == 0 {
		return Section{Placeholder: &Placeholder{Text: "No data available for " + country}}
	}

	fig, width, height := newFigure(800, 300, Margin{Top: 20, Right: 120, Bottom: 40, Left: 50})

	d0, d1 := chart.Extent(lo.Map(samples, func(s WeeklySample, _ int) time.Time { return s.Date }))
	x := chart.NewTime(d0, d1, 0, width)
	y := chart.NewLinear(0, WeeklyMax(samples), height, 0)
	fig.Axes = []chart.Axis{
		chart.TimeAxis(chart.Bottom, x, 10, chart.ShortDate).At(0, height).Rotated(),
		chart.LinearAxis(chart.Left, y, 10, func(v float64) string { return chart.FormatTick(v) + "M" }),
	}

	for i, l := range weeklyLines {
		pts := make([]chart.Point, len(samples))
		dots := make([]Mark, len(samples))
		for j, s := range samples {
			v := l.value(s)
			pts[j] = chart.Point{X: x.Map(s.Date), Y: y.Map(v)}
			dot := circle(pts[j].X, pts[j].Y, 3, l.color)
			dot.Tip = tip(l.label, chart.FormatShortDate(s.Date)+": "+fixed(v, 2)+"M")
			dots[j] = dot
		}
		fig.add(Mark{Kind: MarkPath, D: chart.MonotoneXPath(pts), Fill: "none", Stroke: l.color, StrokeWidth: 2})
		fig.add(dots...)

		swatch := rect(width+10, float64(i*20), 10, 10, l.color)
		swatch.RX = 2
		fig.add(swatch, label(width+25, float64(i*20)+9, l.label, figures.ColorMuted, "11px"))
	}
	return Section{Figure: fig}
}

// SeasonalityInsight comments on the weekly trend. It is empty when the
// chart has nothing to show.
func SeasonalityInsight(snap *dataset.Snapshot, country string) InsightList {
	if len(WeeklySeries(snap.Weekly(country))) == 0 {
		return InsightList{}
	}
	return InsightList{Insights: []figures.Insight{figures.Trend(country, country == dataset.CountryAll)}}
}

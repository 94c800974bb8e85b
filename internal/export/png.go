package export

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/abcnoodle/marketintel/internal/chart"
	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/figures"
	"github.com/abcnoodle/marketintel/internal/panels"
)

// Chart image names.
const (
	ChartSeasonality = "seasonality"
	ChartPareto      = "pareto"
)

// Charts lists the charts that can be exported as images.
var Charts = []string{ChartSeasonality, ChartPareto}

// ErrUnknownChart is returned for a chart name outside Charts.
var ErrUnknownChart = errors.New("unknown chart")

const (
	imageWidth  = 10 * vg.Inch
	imageHeight = 5 * vg.Inch
)

// Plot draws the named chart for a country. view only applies to the
// Pareto chart.
func Plot(name string, snap *dataset.Snapshot, country, view string) (*plot.Plot, error) {
	if snap == nil {
		return nil, dataset.ErrNotLoaded
	}
	switch name {
	case ChartSeasonality:
		return seasonalityPlot(snap, country)
	case ChartPareto:
		return paretoPlot(snap, country, view)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
}

// WritePNG renders the named chart as a PNG image to w.
func WritePNG(w io.Writer, name string, snap *dataset.Snapshot, country, view string) error {
	p, err := Plot(name, snap, country, view)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(imageWidth, imageHeight, "png")
	if err != nil {
		return fmt.Errorf("preparing %s image: %w", name, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing %s image: %w", name, err)
	}
	return nil
}

func seasonalityPlot(snap *dataset.Snapshot, country string) (*plot.Plot, error) {
	samples := panels.WeeklySeries(snap.Weekly(country))
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: weekly sales for %s", ErrNoData, country)
	}

	p := plot.New()
	p.Title.Text = "Weekly Sales Trend - " + country
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Units (M)"
	p.X.Tick.Marker = plot.TimeTicks{Format: chart.ShortDate}
	p.Y.Min = 0
	p.Y.Max = panels.WeeklyMax(samples)
	p.Add(plotter.NewGrid())

	series := []struct {
		label string
		color string
		value func(panels.WeeklySample) float64
	}{
		{"Samyang", figures.ColorSamyang, func(s panels.WeeklySample) float64 { return s.Samyang }},
		{"Competitors", figures.ColorOthers, func(s panels.WeeklySample) float64 { return s.Others }},
	}
	for _, s := range series {
		pts := make(plotter.XYs, len(samples))
		for i, sample := range samples {
			pts[i].X = float64(sample.Date.Unix())
			pts[i].Y = s.value(sample)
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("building %s line: %w", s.label, err)
		}
		c := chart.MustHex(s.color).Color()
		line.Color = c
		line.Width = vg.Points(2)
		points.Color = c
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(3)
		p.Add(line, points)
		p.Legend.Add(s.label, line)
	}
	p.Legend.Top = true
	return p, nil
}

func paretoPlot(snap *dataset.Snapshot, country, view string) (*plot.Plot, error) {
	items, ok := snap.Pareto(country, view)
	if !ok || len(items) == 0 {
		return nil, fmt.Errorf("%w: %s products for %s", ErrNoData, view, country)
	}
	points := panels.ParetoSeries(items)

	p := plot.New()
	p.Title.Text = "Product Concentration - " + country + " (" + view + ")"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Sales (M units)"

	values := lo.Map(points, func(pt panels.ParetoPoint, _ int) float64 { return pt.Value })
	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(24))
	if err != nil {
		return nil, fmt.Errorf("building bars: %w", err)
	}
	fill := figures.ColorSamyang
	if view == dataset.ViewOthers {
		fill = figures.ColorOthers
	}
	bars.Color = chart.MustHex(fill).Color()
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	p.NominalX(lo.Map(points, func(pt panels.ParetoPoint, _ int) string { return pt.Product })...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	top := panels.ParetoMax(points)
	p.Y.Min = 0
	p.Y.Max = top * 1.15

	xys := make([]plotter.XY, len(points))
	labels := make([]string, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: float64(i), Y: pt.Value + top*0.02}
		labels[i] = fmt.Sprintf("%.0f%%", pt.CumPct)
	}
	cum, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("building cumulative labels: %w", err)
	}
	p.Add(cum)
	return p, nil
}

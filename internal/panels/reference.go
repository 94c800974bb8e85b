package panels

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/abcnoodle/marketintel/internal/chart"
	"github.com/abcnoodle/marketintel/internal/figures"
)

// WeightedDistribution builds the paired store type bars with gap labels.
func WeightedDistribution() Section {
	fig, width, height := newFigure(550, 320, Margin{Top: 20, Right: 80, Bottom: 40, Left: 140})
	data := figures.WeightedDistribution

	y := chart.NewBand(lo.Map(data, func(d figures.StoreDistribution, _ int) string { return d.Type }), 0, height, 0.25)
	x := chart.NewLinear(0, 60, 0, width)
	fig.Axes = []chart.Axis{
		chart.BandAxis(chart.Left, y, nil),
		chart.LinearAxis(chart.Bottom, x, 10, func(v float64) string { return chart.FormatTick(v) + "%" }).At(0, height),
	}

	half := y.Bandwidth()/2 - 2
	for _, d := range data {
		top := y.Pos(d.Type)
		gap := d.Gap()

		sam := rect(0, top, x.Map(d.Samyang), half, figures.ColorSamyang)
		sam.RX = 3
		sam.Tip = tip(d.Type,
			"Samyang: "+plain(d.Samyang)+"%",
			"Others: "+plain(d.Others)+"%",
			"Gap: "+fixed(gap, 1)+"%")

		oth := rect(0, top+y.Bandwidth()/2, x.Map(d.Others), half, figures.ColorOthers)
		oth.RX = 3

		gapColor := figures.ColorYellow
		if gap > 10 {
			gapColor = figures.ColorSamyang
		}
		g := label(width+10, top+y.Bandwidth()/2, "-"+fixed(gap, 0)+"%", gapColor, "11px")
		g.Baseline = "middle"
		g.FontWeight = "600"

		fig.add(sam, oth, g)
	}

	return Section{
		Title:    "Weighted Distribution % by Store Type",
		Figure:   fig,
		Legend:   samyangVsCompetitors,
		Insights: []figures.Insight{figures.DistributionGap},
	}
}

// pricingScale colours the premium index: red below par, green well above.
var pricingScale, _ = chart.NewPiecewise(
	[]float64{30, 100, 180},
	[]string{figures.ColorSamyang, figures.ColorYellow, figures.ColorGreen},
)

const (
	priceCellWidth  = 120
	priceCellHeight = 50
)

// Pricing builds the metric by country heatmap.
func Pricing() Section {
	m := Margin{Top: 50, Right: 30, Bottom: 30, Left: 100}
	cols, rows := figures.PricingCountries, figures.Pricing
	width := float64(priceCellWidth * len(cols))
	height := float64(priceCellHeight * len(rows))
	fig, _, _ := newFigure(width+m.Left+m.Right, height+m.Top+m.Bottom, m)

	for i, c := range cols {
		h := label(float64(i)*priceCellWidth+priceCellWidth/2, -20, c, figures.CountryColor(c), "12px")
		h.Anchor = "middle"
		h.FontWeight = "700"
		fig.add(h)
	}

	for r, row := range rows {
		cy := float64(r)*priceCellHeight + priceCellHeight/2
		rl := label(-10, cy, row.Metric, figures.ColorMuted, "11px")
		rl.Anchor = "end"
		rl.Baseline = "middle"
		fig.add(rl)

		for col, country := range cols {
			d := row.Cells[country]
			cell := rect(float64(col)*priceCellWidth+5, float64(r)*priceCellHeight+5,
				priceCellWidth-10, priceCellHeight-10, pricingScale.Map(float64(d.Index)))
			cell.RX = 6
			cell.Opacity = 0.9
			cell.Tip = tip(country+" - "+row.Metric,
				"Samyang: "+plain(d.Samyang),
				"Others: "+plain(d.Others),
				"Index: "+strconv.Itoa(d.Index)+"%")

			textColor := "#000000"
			if d.Index < 80 {
				textColor = figures.ColorWhite
			}
			v := label(float64(col)*priceCellWidth+priceCellWidth/2, cy, strconv.Itoa(d.Index)+"%", textColor, "14px")
			v.Anchor = "middle"
			v.Baseline = "middle"
			v.FontWeight = "700"
			fig.add(cell, v)
		}
	}

	return Section{
		Title:  figures.PricingTitle,
		Figure: fig,
		Legend: []LegendItem{
			{Color: figures.ColorGreen, Label: "Above benchmark (>150%)"},
			{Color: figures.ColorYellow, Label: "At benchmark (100%)"},
			{Color: figures.ColorSamyang, Label: "Below benchmark (<80%)"},
		},
		Insights: []figures.Insight{figures.UKROSRedFlag},
	}
}

// RateOfSale builds the grouped velocity bars with ratio badges.
func RateOfSale() Section {
	fig, width, height := newFigure(450, 300, Margin{Top: 20, Right: 80, Bottom: 60, Left: 70})
	data := figures.RatesOfSale

	x := chart.NewBand(lo.Map(data, func(d figures.RateOfSale, _ int) string { return d.Country }), 0, width, 0.3)
	maxY := lo.Max(lo.Map(data, func(d figures.RateOfSale, _ int) float64 { return max(d.Samyang, d.Others) })) * 1.1
	y := chart.NewLinear(0, maxY, height, 0)
	fig.Axes = []chart.Axis{
		chart.BandAxis(chart.Bottom, x, nil).At(0, height),
		chart.LinearAxis(chart.Left, y, 10, nil),
	}

	half := x.Bandwidth() / 2
	for _, d := range data {
		left := x.Pos(d.Country)
		sam := rect(left, y.Map(d.Samyang), half, height-y.Map(d.Samyang), figures.ColorSamyang)
		oth := rect(left+half, y.Map(d.Others), half, height-y.Map(d.Others), figures.ColorOthers)

		badgeColor := figures.ColorSamyang
		if d.Ratio > 1 {
			badgeColor = figures.ColorGreen
		}
		badge := label(left+half, height+35, fixed(d.Ratio, 2)+"x", badgeColor, "12px")
		badge.Anchor = "middle"
		badge.FontWeight = "700"
		fig.add(sam, oth, badge)
	}

	return Section{
		Title:    "Rate of Sale: Critical UK Gap",
		Figure:   fig,
		Legend:   samyangVsCompetitors,
		Insights: []figures.Insight{figures.MarketStrategy},
	}
}

// Retailers builds the UK retailer segment bars with ratio status.
func Retailers() Section {
	fig, width, height := newFigure(600, 250, Margin{Top: 10, Right: 100, Bottom: 30, Left: 130})
	data := figures.UKRetailers

	y := chart.NewBand(lo.Map(data, func(d figures.RetailerSegment, _ int) string { return d.Segment }), 0, height, 0.2)
	x := chart.NewLinear(0, 100, 0, width)
	fig.Axes = []chart.Axis{
		chart.BandAxis(chart.Left, y, nil),
		chart.LinearAxis(chart.Bottom, x, 10, nil).At(0, height),
	}

	half := y.Bandwidth() / 2
	for _, d := range data {
		top := y.Pos(d.Segment)
		sam := rect(0, top, x.Map(d.Samyang), half, figures.ColorSamyang)
		oth := rect(0, top+half, x.Map(d.Others), half, figures.ColorOthers)

		status := label(width+10, top+half, fixed(d.Ratio, 2)+"x", RatioColor(d.Ratio), "11px")
		status.Baseline = "middle"
		status.FontWeight = "600"
		fig.add(sam, oth, status)
	}

	return Section{
		Title:    "UK Deep-Dive: ROS by Retailer Segment",
		Figure:   fig,
		Legend:   samyangVsCompetitors,
		Insights: []figures.Insight{figures.FocusUK},
	}
}

// RatioColor grades a retailer ratio: green above 0.8, yellow above 0.5,
// red otherwise.
func RatioColor(ratio float64) string {
	switch {
	case ratio > 0.8:
		return figures.ColorGreen
	case ratio > 0.5:
		return figures.ColorYellow
	default:
		return figures.ColorSamyang
	}
}

// StatusColor maps a roadmap status to its accent.
func StatusColor(status string) string {
	switch status {
	case "GO":
		return figures.ColorGreen
	case "PILOT":
		return figures.ColorYellow
	default:
		return figures.ColorOrange
	}
}

// StrategicRoadmap builds the recommendation cards and total impact.
func StrategicRoadmap() Roadmap {
	return Roadmap{
		Title: "Strategic Roadmap with Quantified Impact",
		Cards: lo.Map(figures.Roadmap, func(r figures.Recommendation, _ int) RoadmapCard {
			return RoadmapCard{Recommendation: r, Color: StatusColor(r.Status)}
		}),
		TotalUnits:   figures.TotalImpactUnits,
		TotalRevenue: figures.TotalImpactRevenue,
	}
}

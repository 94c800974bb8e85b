package panels

import (
	"github.com/samber/lo"

	"github.com/abcnoodle/marketintel/internal/chart"
	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/figures"
)

// Flavours builds the product breakdown for a country: mini KPIs, flavour
// bars coloured by Samyang share, and the top brands. A country without
// data renders zero KPIs and an empty chart.
func Flavours(snap *dataset.Snapshot, country string) FlavourPanel {
	if snap == nil || snap.Dashboard == nil || snap.Dashboard.FlavourData == nil {
		return FlavourPanel{}
	}
	sum := SummarizeFlavours(country, snap.Flavours(country))
	meta, _ := snap.Meta(country)

	return FlavourPanel{
		Title: "Flavour Breakdown (by Units) - " + meta.Label(),
		KPIs: []MiniKPI{
			{Label: "Samyang Total", Value: fixed(sum.SamyangUnits, 1) + "M", Sub: fixed(sum.SharePct, 0) + "% share", Color: figures.ColorSamyang},
			{Label: "Spicy/Hot Market", Value: fixed(sum.SpicyUnits, 1) + "M", Sub: "Units Sold", Color: figures.ColorTeal},
			{Label: "Top Flavour", Value: sum.TopFlavour, Sub: "Most popular", Color: figures.ColorOrange},
		},
		Chart: flavourChart(sum.Rows),
		Legend: []LegendItem{
			{Color: figures.ColorSamyang, Label: "Samyang >50%"},
			{Color: figures.ColorTeal, Label: "Samyang 1-50%"},
			{Color: figures.ColorOthers, Label: "Samyang 0%"},
		},
		BrandsTitle: "Top 10 Brands (All Markets/Total)",
		Brands:      brandChart(),
		Insights:    []figures.Insight{figures.BrandDynamics, figures.CompetitorTrends},
	}
}

// ShareColor is the bar colour for a Samyang share.
func ShareColor(share float64) string {
	switch {
	case share > 50:
		return figures.ColorSamyang
	case share > 0:
		return figures.ColorTeal
	default:
		return figures.ColorOthers
	}
}

// ShareLabel is the "N% Sam" annotation, empty when Samyang has no share.
func ShareLabel(share float64) string {
	if share <= 0 {
		return ""
	}
	return plain(share) + "% Sam"
}

func shareLabelColor(share float64) string {
	switch {
	case share > 50:
		return figures.ColorGreen
	case share > 0:
		return figures.ColorTeal
	default:
		return figures.ColorMuted
	}
}

func flavourChart(rows []FlavourShare) *Figure {
	fig, width, height := newFigure(450, 250, Margin{Top: 10, Right: 80, Bottom: 30, Left: 100})

	y := chart.NewBand(lo.Map(rows, func(r FlavourShare, _ int) string { return r.Flavour }), 0, height, 0.2)
	x := chart.NewLinear(0, FlavourMax(rows), 0, width)
	fig.Axes = []chart.Axis{
		chart.BandAxis(chart.Left, y, nil),
		chart.LinearAxis(chart.Bottom, x, 10, func(v float64) string { return chart.FormatTick(v) + "M" }).At(0, height),
	}

	for _, r := range rows {
		bar := rect(0, y.Pos(r.Flavour), x.Map(r.Units), y.Bandwidth(), ShareColor(r.Share))
		bar.Opacity = 0.85
		bar.RX = 2
		bar.Tip = tip(r.Flavour,
			"Total: "+plain(r.Units)+"M",
			"Samyang: "+plain(r.Samyang)+"M ("+plain(r.Share)+"%)")
		fig.add(bar)

		if text := ShareLabel(r.Share); text != "" {
			l := label(x.Map(r.Units)+5, y.Mid(r.Flavour), text, shareLabelColor(r.Share), "10px")
			l.Baseline = "middle"
			fig.add(l)
		}
	}
	return fig
}

func brandChart() *Figure {
	fig := &Figure{Width: 380, Height: 280, Left: 120, Top: 15}
	data := figures.TopBrands

	y := chart.NewBand(lo.Map(data, func(b figures.Brand, _ int) string { return b.Brand }), 0, 250, 0.15)
	x := chart.NewLinear(0, 250, 0, 200)
	fig.Axes = []chart.Axis{chart.BandAxis(chart.Left, y, nil)}

	for _, b := range data {
		fill := figures.ColorOthers
		if b.IsSamyang {
			fill = figures.ColorSamyang
		}
		bar := rect(0, y.Pos(b.Brand), x.Map(b.Units), y.Bandwidth(), fill)
		bar.RX = 2

		growthColor := figures.ColorSamyang
		if b.Growing() {
			growthColor = figures.ColorGreen
		}
		g := label(x.Map(b.Units)+5, y.Mid(b.Brand), b.Growth, growthColor, "10px")
		g.Baseline = "middle"
		fig.add(bar, g)
	}
	return fig
}

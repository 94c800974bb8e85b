package panels

import (
	"strconv"

	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/figures"
)

const kpiStaggerMS = 80

// KPIs builds the four headline cards. The grid is empty without a
// snapshot.
func KPIs(snap *dataset.Snapshot) KPIGrid {
	if snap == nil || snap.Insights == nil {
		return KPIGrid{}
	}
	o := snap.Overview()
	meta, _ := snap.Meta(dataset.CountryAll)

	cards := []KPICard{
		{
			Label: "Total Market",
			Value: fixed(o.TotalSalesUnits/1e9, 2) + "B",
			Sub:   meta.FullLabel,
			Color: figures.ColorTeal,
		},
		{
			Label: "Samyang Share",
			Value: fixed(o.SamyangShareUnitsPct, 1) + "%",
			Sub:   figures.ShareByValueNote,
			Color: figures.ColorSamyang,
		},
		{
			Label: "Samyang Units",
			Value: fixed(o.SamyangSalesUnits/1e6, 1) + "M",
			Sub:   "€" + fixed(o.SamyangSalesValue/1e6, 0) + "M value",
			Color: figures.ColorGreen,
		},
		{
			Label: "SKU Count",
			Value: strconv.Itoa(o.SamyangProducts),
			Sub:   "of " + strconv.Itoa(o.TotalProducts) + " total",
			Color: figures.ColorOrange,
		},
	}
	for i := range cards {
		cards[i].DelayMS = i * kpiStaggerMS
	}
	return KPIGrid{Cards: cards}
}

// CountryFilter builds the page level country buttons. The active button
// takes the country colour.
func CountryFilter(active string) FilterBar {
	bar := FilterBar{ID: CountryFilterID, Attr: "country"}
	for _, c := range dataset.Countries {
		bar.Buttons = append(bar.Buttons, FilterButton{
			Label:  c,
			Value:  c,
			Active: c == active,
			Color:  figures.CountryColor(c),
		})
	}
	return bar
}

// ParetoCountryFilter builds the country buttons of the Pareto chart.
func ParetoCountryFilter(active string) FilterBar {
	bar := FilterBar{ID: ParetoCountryID, Attr: "country", Target: ParetoID}
	for _, c := range dataset.Countries {
		bar.Buttons = append(bar.Buttons, FilterButton{Label: c, Value: c, Active: c == active})
	}
	return bar
}

// ParetoViewFilter builds the Samyang/competitor switch of the Pareto chart.
func ParetoViewFilter(active string) FilterBar {
	return FilterBar{ID: ParetoViewID, Attr: "view", Target: ParetoID, Buttons: []FilterButton{
		{Label: "Samyang", Value: dataset.ViewSamyang, Active: active == dataset.ViewSamyang},
		{Label: "Competitors", Value: dataset.ViewOthers, Active: active == dataset.ViewOthers},
	}}
}

// SeasonalityFilter builds the country buttons of the weekly chart.
func SeasonalityFilter(active string) FilterBar {
	bar := FilterBar{ID: SeasonalityFilterID, Attr: "country", Target: SeasonalityID}
	for _, c := range dataset.Countries {
		bar.Buttons = append(bar.Buttons, FilterButton{Label: c, Value: c, Active: c == active})
	}
	return bar
}

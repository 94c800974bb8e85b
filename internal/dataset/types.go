package dataset

import (
	"errors"
	"strings"
	"time"
)

// Default file names of the two pre-computed documents.
const (
	InsightsFile  = "insights_enhanced.json"
	DashboardFile = "dashboard_data_v2.json"
)

// Country keys used throughout the datasets.
const (
	CountryAll         = "All"
	CountryGermany     = "Germany"
	CountryUK          = "UK"
	CountryNetherlands = "Netherlands"
)

// Countries lists the filter values in display order.
var Countries = []string{CountryAll, CountryGermany, CountryUK, CountryNetherlands}

// Pareto views.
const (
	ViewSamyang = "samyang"
	ViewOthers  = "others"
)

// Views lists the Pareto view keys.
var Views = []string{ViewSamyang, ViewOthers}

var (
	// ErrNotLoaded is returned when no snapshot has been loaded yet.
	ErrNotLoaded = errors.New("dataset not loaded")
	// ErrUnknownCountry is returned for a country outside Countries.
	ErrUnknownCountry = errors.New("unknown country")
)

// Insights is the insights_enhanced.json document. Only the market overview
// is consumed; other keys are ignored.
type Insights struct {
	MarketOverview MarketOverview `json:"market_overview"`
}

// MarketOverview holds the headline totals shown on the KPI cards.
type MarketOverview struct {
	TotalSalesUnits      float64 `json:"total_sales_units"`
	TotalSalesValue      float64 `json:"total_sales_value,omitempty"`
	SamyangSalesUnits    float64 `json:"samyang_sales_units"`
	SamyangSalesValue    float64 `json:"samyang_sales_value"`
	SamyangShareUnitsPct float64 `json:"samyang_share_units_pct"`
	SamyangProducts      int     `json:"samyang_products"`
	TotalProducts        int     `json:"total_products"`
}

// Dashboard is the dashboard_data_v2.json document.
type Dashboard struct {
	ParetoData  map[string]map[string][]ParetoItem `json:"pareto_data"`
	FlavourData map[string][]FlavourRow            `json:"flavour_data"`
	WeeklyData  map[string][]WeeklyPoint           `json:"weekly_data"`
	DateMeta    map[string]DateMeta                `json:"date_meta"`
}

// ParetoItem is one product in a concentration ranking. Value is in
// millions of units.
type ParetoItem struct {
	Product string  `json:"product"`
	Value   float64 `json:"value"`
	CumPct  float64 `json:"cum_pct"`
}

// FlavourRow aggregates units sold for one flavour, in millions.
type FlavourRow struct {
	Flavour string  `json:"flavour"`
	Units   float64 `json:"units"`
	Samyang float64 `json:"samyang"`
	Share   float64 `json:"share"`
}

// WeeklyPoint is one week of sales in millions of units.
type WeeklyPoint struct {
	Date    string  `json:"date"`
	Samyang float64 `json:"samyang"`
	Others  float64 `json:"others"`
}

// Time parses the ISO date of the point.
func (w WeeklyPoint) Time() (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(w.Date))
}

// DateMeta describes the period covered for a country.
type DateMeta struct {
	FullLabel  string `json:"full_label"`
	RangeLabel string `json:"range_label"`
}

// Label prefers the short range label.
func (m DateMeta) Label() string {
	if m.RangeLabel != "" {
		return m.RangeLabel
	}
	return m.FullLabel
}

// NormalizeCountry maps user input onto a country key. "all" is accepted in
// any case; other names match case-insensitively. An empty input means All.
// Unknown names are returned trimmed together with ErrUnknownCountry so
// callers can still show them in a placeholder.
func NormalizeCountry(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, CountryAll) {
		return CountryAll, nil
	}
	for _, c := range Countries {
		if strings.EqualFold(s, c) {
			return c, nil
		}
	}
	return s, ErrUnknownCountry
}

// NormalizeView maps user input onto a Pareto view, defaulting to samyang.
func NormalizeView(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), ViewOthers) {
		return ViewOthers
	}
	return ViewSamyang
}

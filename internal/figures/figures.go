// Package figures holds the reference numbers and narrative copy of the
// market study that are not part of the JSON datasets.
package figures

import "github.com/abcnoodle/marketintel/internal/dataset"

// Palette.
const (
	ColorSamyang = "#E31E24"
	ColorOthers  = "#0066CC"
	ColorTeal    = "#00A3A3"
	ColorOrange  = "#FF6B35"
	ColorGreen   = "#00C48C"
	ColorPurple  = "#8B5CF6"
	ColorYellow  = "#FFB020"
	ColorGray    = "#6B7280"

	// Surface and text colours of the dark theme.
	ColorPanel = "#1A1F2E"
	ColorInk   = "#0D1117"
	ColorMuted = "#B8C5D6"
	ColorWhite = "#FFFFFF"
)

var countryColors = map[string]string{
	dataset.CountryGermany:     "#E31E24",
	dataset.CountryUK:          "#FF6B35",
	dataset.CountryNetherlands: "#00A3A3",
}

// CountryColor returns the accent colour of a country, teal for All and
// anything unknown.
func CountryColor(country string) string {
	if c, ok := countryColors[country]; ok {
		return c
	}
	return ColorTeal
}

// ShareByValueNote is the subtitle of the share KPI card.
const ShareByValueNote = "8.2% by value (premium)"

// StoreDistribution is weighted distribution in percent for one store type.
type StoreDistribution struct {
	Type    string  `json:"type"`
	Samyang float64 `json:"samyang"`
	Others  float64 `json:"others"`
}

// Gap is the competitor lead in percentage points.
func (d StoreDistribution) Gap() float64 { return d.Others - d.Samyang }

// WeightedDistribution by store type.
var WeightedDistribution = []StoreDistribution{
	{Type: "Germany Total", Samyang: 12.3, Others: 15.1},
	{Type: "Netherlands Total", Samyang: 22.2, Others: 22.7},
	{Type: "UK - Megastores", Samyang: 38.2, Others: 52.4},
	{Type: "UK - Superstores", Samyang: 32.1, Others: 48.6},
	{Type: "UK - Convenience", Samyang: 28.4, Others: 41.2},
	{Type: "UK - High Street", Samyang: 18.6, Others: 35.8},
}

// PriceCell compares Samyang against the competitor benchmark. Index is
// Samyang as a percentage of the benchmark.
type PriceCell struct {
	Samyang float64 `json:"samyang"`
	Others  float64 `json:"others"`
	Index   int     `json:"index"`
}

// PriceMetric is one row of the pricing heatmap.
type PriceMetric struct {
	Metric string               `json:"metric"`
	Cells  map[string]PriceCell `json:"cells"`
}

// PricingCountries are the heatmap columns in display order.
var PricingCountries = []string{dataset.CountryGermany, dataset.CountryUK, dataset.CountryNetherlands}

// PricingTitle heads the pricing heatmap.
const PricingTitle = "Pricing vs Benchmark (89 Samyang vs 2,394 Competitor Products)"

// Pricing is the metric by country benchmark matrix.
var Pricing = []PriceMetric{
	{Metric: "Absolute Price", Cells: map[string]PriceCell{
		dataset.CountryGermany:     {1.85, 1.02, 181},
		dataset.CountryUK:          {1.92, 1.05, 183},
		dataset.CountryNetherlands: {1.78, 0.98, 182},
	}},
	{Metric: "Price/100g", Cells: map[string]PriceCell{
		dataset.CountryGermany:     {2.18, 1.31, 166},
		dataset.CountryUK:          {2.18, 1.31, 166},
		dataset.CountryNetherlands: {2.14, 1.29, 166},
	}},
	{Metric: "Pack Size", Cells: map[string]PriceCell{
		dataset.CountryGermany:     {85, 78, 109},
		dataset.CountryUK:          {88, 80, 110},
		dataset.CountryNetherlands: {83, 76, 109},
	}},
	{Metric: "ROS Index", Cells: map[string]PriceCell{
		dataset.CountryGermany:     {3.16, 2.35, 135},
		dataset.CountryUK:          {21.2, 57.2, 37},
		dataset.CountryNetherlands: {3.64, 2.92, 125},
	}},
}

// RateOfSale compares velocity per country. Ratio is Samyang over others.
type RateOfSale struct {
	Country string  `json:"country"`
	Samyang float64 `json:"samyang"`
	Others  float64 `json:"others"`
	Ratio   float64 `json:"ratio"`
}

// RatesOfSale by country.
var RatesOfSale = []RateOfSale{
	{Country: dataset.CountryGermany, Samyang: 3.16, Others: 2.35, Ratio: 1.35},
	{Country: dataset.CountryNetherlands, Samyang: 3.64, Others: 2.92, Ratio: 1.25},
	{Country: dataset.CountryUK, Samyang: 21.2, Others: 57.2, Ratio: 0.37},
}

// Brand is one of the top brands across all markets, units in millions.
type Brand struct {
	Brand     string  `json:"brand"`
	Units     float64 `json:"units"`
	Growth    string  `json:"growth"`
	IsSamyang bool    `json:"is_samyang"`
}

// Growing reports whether the growth figure is positive.
func (b Brand) Growing() bool { return len(b.Growth) > 0 && b.Growth[0] == '+' }

// TopBrands across all markets.
var TopBrands = []Brand{
	{Brand: "MAGGI", Units: 227.2, Growth: "+3.2%"},
	{Brand: "POT NOODLE", Units: 173.9, Growth: "-1.8%"},
	{Brand: "YUM YUM", Units: 149.0, Growth: "+5.1%"},
	{Brand: "SUPER NOODLES", Units: 140.7, Growth: "-2.4%"},
	{Brand: "POT NOODLE KING", Units: 131.2, Growth: "+8.7%"},
	{Brand: "NISSIN", Units: 109.4, Growth: "+12.3%"},
	{Brand: "KNORR", Units: 102.0, Growth: "-4.1%"},
	{Brand: "BULDAK (Samyang)", Units: 72.4, Growth: "+24.6%", IsSamyang: true},
	{Brand: "KOKA", Units: 55.5, Growth: "+1.2%"},
	{Brand: "NONG SHIM", Units: 32.9, Growth: "+15.8%"},
}

// Segment is a leaf of the market structure, in units.
type Segment struct {
	Name  string  `json:"name"`
	Units float64 `json:"units"`
}

// MarketGroup is the first ring of the market structure.
type MarketGroup struct {
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	Segments []Segment `json:"segments"`
}

// MarketStructure splits the total market by owner and flavour segment.
var MarketStructure = []MarketGroup{
	{Name: "Samyang", Color: ColorSamyang, Segments: []Segment{
		{"Spicy/Hot", 48_500_000},
		{"Cheese", 18_200_000},
		{"Chicken", 12_100_000},
		{"Other", 8_000_000},
	}},
	{Name: "Competitors", Color: ColorOthers, Segments: []Segment{
		{"Chicken", 245_000_000},
		{"Curry", 133_600_000},
		{"Beef", 83_000_000},
		{"Other", 1_405_000_000},
	}},
}

// Story is one line of the market structure narrative.
type Story struct {
	Icon string
	Text string
}

// MarketStory accompanies the sunburst.
var MarketStory = []Story{
	{"🎯", "**Samyang = 4.5% share (Volume)** but 8.2% by Value. Premium positioning confirmed."},
	{"🔥", "**Dominance in Spicy:** Samyang leads the Spicy/Hot segment (56% share) and Cheese (79%)."},
	{"⚠️", "**White Space:** Curry is 134M units globally with zero Samyang presence."},
	{"🌍", "**Geographic Risk:** 61% of sales concentrated in Germany."},
}

// RetailerSegment is UK rate of sale for one retailer segment.
type RetailerSegment struct {
	Segment string  `json:"segment"`
	Samyang float64 `json:"samyang"`
	Others  float64 `json:"others"`
	Ratio   float64 `json:"ratio"`
}

// UKRetailers ranked by ratio.
var UKRetailers = []RetailerSegment{
	{Segment: "High Street Large", Samyang: 75.2, Others: 85.7, Ratio: 0.88},
	{Segment: "Convenience", Samyang: 47.8, Others: 59.3, Ratio: 0.81},
	{Segment: "Megastores", Samyang: 30.0, Others: 41.3, Ratio: 0.73},
	{Segment: "Superstores", Samyang: 16.3, Others: 40.2, Ratio: 0.41},
	{Segment: "Impulse", Samyang: 0.9, Others: 37.6, Ratio: 0.02},
}

// Recommendation is one card of the strategic roadmap.
type Recommendation struct {
	Title      string `json:"title"`
	Impact     string `json:"impact"`
	Status     string `json:"status"`
	Confidence string `json:"confidence"`
	Timeline   string `json:"timeline"`
}

// Roadmap is the quantified strategic plan.
var Roadmap = []Recommendation{
	{Title: "DE/NL: Expand +500 Stores", Impact: "+20M units | +€37M", Status: "GO", Confidence: "HIGH", Timeline: "Q1-Q2"},
	{Title: "UK: Launch Cup Format", Impact: "+7.6M units | +€14M", Status: "PILOT", Confidence: "MEDIUM", Timeline: "Q2-Q3"},
	{Title: "Innovation: Spicy Curry", Impact: "+6M units | +€12.4M", Status: "TEST", Confidence: "MEDIUM", Timeline: "Q3-Q4"},
	{Title: "Portfolio: Delist Tail SKUs (Total Market)", Impact: "+€2M savings", Status: "GO", Confidence: "HIGH", Timeline: "Q1"},
}

// Twelve month totals of the roadmap.
const (
	TotalImpactUnits   = "+33.6M"
	TotalImpactRevenue = "+€65.4M"
)

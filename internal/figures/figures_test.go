package figures

import (
	"math"
	"strings"
	"testing"

	"github.com/abcnoodle/marketintel/internal/dataset"
)

func TestCountryColor(t *testing.T) {
	tests := map[string]string{
		dataset.CountryGermany:     "#E31E24",
		dataset.CountryUK:          "#FF6B35",
		dataset.CountryNetherlands: "#00A3A3",
		dataset.CountryAll:         ColorTeal,
		"France":                   ColorTeal,
	}
	for country, want := range tests {
		if got := CountryColor(country); got != want {
			t.Errorf("CountryColor(%q) = %q, want %q", country, got, want)
		}
	}
}

func TestPricingCoversEveryCountry(t *testing.T) {
	for _, row := range Pricing {
		for _, c := range PricingCountries {
			if _, ok := row.Cells[c]; !ok {
				t.Errorf("%s has no cell for %s", row.Metric, c)
			}
		}
	}
}

func TestMarketStructureTotal(t *testing.T) {
	total := 0.0
	for _, g := range MarketStructure {
		for _, s := range g.Segments {
			total += s.Units
		}
	}
	if got := math.Round(total/1e7) / 100; got != 1.95 {
		t.Errorf("market total = %.2fB, want 1.95B", got)
	}
}

func TestBrandGrowing(t *testing.T) {
	var samyang int
	for _, b := range TopBrands {
		if b.IsSamyang {
			samyang++
			if !b.Growing() {
				t.Errorf("%s should be growing", b.Brand)
			}
		}
	}
	if samyang != 1 {
		t.Errorf("expected exactly one Samyang brand, got %d", samyang)
	}
	if (Brand{Growth: "-1.8%"}).Growing() {
		t.Error("negative growth reported as growing")
	}
}

func TestDistributionGap(t *testing.T) {
	if got := WeightedDistribution[2].Gap(); math.Abs(got-14.2) > 1e-9 {
		t.Errorf("megastore gap = %v, want 14.2", got)
	}
}

func TestInsightKindColor(t *testing.T) {
	if KindAction.Color() != ColorSamyang || KindOpportunity.Color() != ColorGreen || KindInfo.Color() != ColorTeal {
		t.Error("unexpected kind colours")
	}
	if InsightKind("").Color() != ColorTeal {
		t.Error("empty kind should fall back to teal")
	}
}

func TestConcentrationAndTrend(t *testing.T) {
	if got := Concentration("UK", true).Body; !strings.Contains(got, "UK: Samyang Top Performers") {
		t.Errorf("samyang view body = %q", got)
	}
	if got := Concentration("UK", false).Body; !strings.Contains(got, "Competitor Tail") {
		t.Errorf("others view body = %q", got)
	}
	if got := Trend("Germany", false).Title; got != "Trend Analysis (Germany)" {
		t.Errorf("trend title = %q", got)
	}
	if got := Trend("All", true).Body; !strings.Contains(got, "Variable Market Performance") {
		t.Errorf("all trend body = %q", got)
	}
}

package panels

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/figures"
)

func loadSnapshot(t *testing.T) *dataset.Snapshot {
	t.Helper()
	snap, err := dataset.NewLoader().Load(t.Context(),
		dataset.SourcesIn("../../testdata/data", dataset.InsightsFile, dataset.DashboardFile))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return snap
}

func TestFixed(t *testing.T) {
	tests := []struct {
		v    float64
		prec int
		want string
	}{
		{1.9534, 2, "1.95"},
		{4.47, 1, "4.5"},
		{2.5, 0, "3"},
		{0.125, 2, "0.13"},
		{175.4, 0, "175"},
		{-2.5, 0, "-3"},
		{1.045, 2, "1.04"},
		{2.675, 2, "2.67"},
		{1.005, 2, "1.00"},
		{8.345, 2, "8.35"},
		{-0.125, 2, "-0.13"},
	}
	for _, tt := range tests {
		if got := fixed(tt.v, tt.prec); got != tt.want {
			t.Errorf("fixed(%v, %d) = %q, want %q", tt.v, tt.prec, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Buldak Hot Chicken Original", 15); got != "Buldak Hot Chic..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Buldak Curry", 15); got != "Buldak Curry" {
		t.Errorf("short label changed: %q", got)
	}
}

func TestKPIs(t *testing.T) {
	grid := KPIs(loadSnapshot(t))
	if len(grid.Cards) != 4 {
		t.Fatalf("cards = %d", len(grid.Cards))
	}
	want := []KPICard{
		{Label: "Total Market", Value: "1.95B", Sub: "52 weeks to 28 Jan 2024", Color: figures.ColorTeal, DelayMS: 0},
		{Label: "Samyang Share", Value: "4.5%", Sub: "8.2% by value (premium)", Color: figures.ColorSamyang, DelayMS: 80},
		{Label: "Samyang Units", Value: "87.3M", Sub: "€175M value", Color: figures.ColorGreen, DelayMS: 160},
		{Label: "SKU Count", Value: "89", Sub: "of 2483 total", Color: figures.ColorOrange, DelayMS: 240},
	}
	if !reflect.DeepEqual(grid.Cards, want) {
		t.Errorf("cards = %+v\nwant %+v", grid.Cards, want)
	}

	if got := KPIs(nil); len(got.Cards) != 0 {
		t.Error("no snapshot should give no cards")
	}
}

func TestCountryFilter(t *testing.T) {
	bar := CountryFilter(dataset.CountryUK)
	if len(bar.Buttons) != 4 {
		t.Fatalf("buttons = %d", len(bar.Buttons))
	}
	for _, b := range bar.Buttons {
		if b.Active != (b.Value == dataset.CountryUK) {
			t.Errorf("button %s active = %v", b.Value, b.Active)
		}
	}
	if bar.Buttons[2].Color != "#FF6B35" {
		t.Errorf("UK colour = %q", bar.Buttons[2].Color)
	}
	if v := ParetoViewFilter(dataset.ViewOthers); !v.Buttons[1].Active || v.Buttons[0].Active {
		t.Errorf("view filter = %+v", v.Buttons)
	}
}

func TestSummarizeFlavours(t *testing.T) {
	snap := loadSnapshot(t)
	s := SummarizeFlavours(dataset.CountryAll, snap.Flavours(dataset.CountryAll))

	if math.Abs(s.SamyangUnits-78.8) > 1e-9 {
		t.Errorf("samyang units = %v", s.SamyangUnits)
	}
	if math.Abs(s.TotalUnits-583.3) > 1e-9 {
		t.Errorf("total units = %v", s.TotalUnits)
	}
	if s.SharePct != 14 {
		t.Errorf("share = %v, want 14", s.SharePct)
	}
	if math.Abs(s.SpicyUnits-220.2) > 1e-9 {
		t.Errorf("spicy units = %v, want Curry + Spicy/Hot", s.SpicyUnits)
	}
	if s.TopFlavour != "Chicken" {
		t.Errorf("top flavour = %q", s.TopFlavour)
	}

	empty := SummarizeFlavours(dataset.CountryNetherlands, nil)
	if empty.SharePct != 0 || empty.TopFlavour != "-" {
		t.Errorf("empty summary = %+v", empty)
	}
}

func TestShareLabelMatchesRoundedShare(t *testing.T) {
	snap := loadSnapshot(t)
	for _, c := range dataset.Countries {
		for _, r := range SummarizeFlavours(c, snap.Flavours(c)).Rows {
			want := 0.0
			if r.Units > 0 {
				want = math.Round(r.Samyang / r.Units * 100)
			}
			if r.Share != want {
				t.Errorf("%s/%s share = %v, want %v", c, r.Flavour, r.Share, want)
			}
			label := ShareLabel(r.Share)
			if want > 0 && label != plain(want)+"% Sam" {
				t.Errorf("%s/%s label = %q", c, r.Flavour, label)
			}
			if want == 0 && label != "" {
				t.Errorf("%s/%s zero share should have no label, got %q", c, r.Flavour, label)
			}
		}
	}
}

func TestShareColor(t *testing.T) {
	if ShareColor(56) != figures.ColorSamyang || ShareColor(5) != figures.ColorTeal || ShareColor(0) != figures.ColorOthers {
		t.Error("unexpected share colours")
	}
}

func TestParetoSeriesMonotone(t *testing.T) {
	snap := loadSnapshot(t)
	for _, c := range dataset.Countries {
		for _, v := range dataset.Views {
			items, _ := snap.Pareto(c, v)
			points := ParetoSeries(items)
			if len(points) == 0 {
				continue
			}
			for i := 1; i < len(points); i++ {
				if points[i].CumPct < points[i-1].CumPct {
					t.Errorf("%s/%s cumulative decreases at %d", c, v, i)
				}
			}
			if last := points[len(points)-1].CumPct; last != 100 {
				t.Errorf("%s/%s ends at %v, want 100", c, v, last)
			}
		}
	}
}

func TestParetoPlaceholders(t *testing.T) {
	snap := loadSnapshot(t)
	tests := []struct {
		snap          *dataset.Snapshot
		country, view string
		want          string
	}{
		{nil, dataset.CountryAll, dataset.ViewSamyang, "Loading data..."},
		{snap, dataset.CountryNetherlands, dataset.ViewSamyang, "No data for Netherlands"},
		{snap, "France", dataset.ViewSamyang, "No data for France"},
		{snap, dataset.CountryGermany, dataset.ViewOthers, "No data available"},
	}
	for _, tt := range tests {
		s := Pareto(tt.snap, tt.country, tt.view)
		if s.Placeholder == nil || s.Placeholder.Text != tt.want {
			t.Errorf("Pareto(%s, %s) placeholder = %+v, want %q", tt.country, tt.view, s.Placeholder, tt.want)
		}
		if s.Figure != nil {
			t.Errorf("Pareto(%s, %s) should not draw a figure", tt.country, tt.view)
		}
	}
}

func TestParetoChart(t *testing.T) {
	s := Pareto(loadSnapshot(t), dataset.CountryUK, dataset.ViewOthers)
	if s.Figure == nil {
		t.Fatal("expected figure")
	}
	var bars, dots, paths int
	for _, m := range s.Figure.Marks {
		switch m.Kind {
		case MarkRect:
			bars++
			if m.Fill != figures.ColorOthers {
				t.Errorf("others view bar fill = %q", m.Fill)
			}
		case MarkCircle:
			dots++
		case MarkPath:
			paths++
		}
	}
	if bars != 2 || dots != 2 || paths != 1 {
		t.Errorf("bars=%d dots=%d paths=%d", bars, dots, paths)
	}
	if len(s.Figure.Axes) != 3 || !s.Figure.Axes[0].Rotate {
		t.Errorf("axes = %+v", s.Figure.Axes)
	}
	if !strings.Contains(s.Insights[0].Body, "UK: Competitor Tail") {
		t.Errorf("insight = %q", s.Insights[0].Body)
	}
}

func TestSeasonality(t *testing.T) {
	snap := loadSnapshot(t)

	s := Seasonality(snap, dataset.CountryGermany)
	if s.Figure == nil {
		t.Fatalf("expected figure, got %+v", s.Placeholder)
	}
	var tips []string
	for _, m := range s.Figure.Marks {
		if m.Kind == MarkCircle && m.Tip != nil {
			tips = append(tips, m.Tip.Title+" "+m.Tip.Lines[0])
		}
	}
	if len(tips) != 4 || tips[0] != "Samyang Jan 07: 0.95M" {
		t.Errorf("tips = %v", tips)
	}

	if got := Seasonality(snap, dataset.CountryNetherlands).Placeholder; got == nil || got.Text != "No data available for Netherlands" {
		t.Errorf("Netherlands placeholder = %+v", got)
	}
	if got := Seasonality(nil, dataset.CountryAll).Placeholder; got == nil || !got.Loading {
		t.Errorf("nil snapshot placeholder = %+v", got)
	}

	if ins := SeasonalityInsight(snap, dataset.CountryAll).Insights; len(ins) != 1 || ins[0].Title != "Trend Analysis (All)" {
		t.Errorf("insight = %+v", ins)
	}
	if ins := SeasonalityInsight(snap, dataset.CountryNetherlands).Insights; len(ins) != 0 {
		t.Errorf("no data should give no insight, got %+v", ins)
	}
}

func TestWeeklySeriesOrdersByDate(t *testing.T) {
	got := WeeklySeries([]dataset.WeeklyPoint{
		{Date: "2024-01-21", Samyang: 3},
		{Date: "not a date", Samyang: 9},
		{Date: "2024-01-07", Samyang: 1},
		{Date: "2024-01-14", Samyang: 2},
	})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (invalid date dropped)", len(got))
	}
	for i, want := range []float64{1, 2, 3} {
		if got[i].Samyang != want {
			t.Errorf("sample %d samyang = %v, want %v", i, got[i].Samyang, want)
		}
	}
}

func TestWeeklyMax(t *testing.T) {
	if got := WeeklyMax(nil); math.Abs(got-11) > 1e-9 {
		t.Errorf("empty WeeklyMax = %v, want 11", got)
	}
	got := WeeklyMax([]WeeklySample{{Samyang: 1, Others: 20}})
	if math.Abs(got-22) > 1e-9 {
		t.Errorf("WeeklyMax = %v, want 22", got)
	}
}

func TestFlavoursUnknownCountry(t *testing.T) {
	p := Flavours(loadSnapshot(t), dataset.CountryNetherlands)
	if p.KPIs[0].Value != "0.0M" || p.KPIs[0].Sub != "0% share" || p.KPIs[2].Value != "-" {
		t.Errorf("KPIs = %+v", p.KPIs)
	}
	if len(p.Chart.Marks) != 0 {
		t.Errorf("expected empty chart, got %d marks", len(p.Chart.Marks))
	}
	if p.Brands == nil || len(p.Brands.Marks) != 20 {
		t.Error("brands chart should always render")
	}
}

func TestSunburst(t *testing.T) {
	p := Sunburst()
	var arcs int
	var center string
	for _, m := range p.Figure.Marks {
		if m.Class == "sb-arc" {
			arcs++
		}
		if m.ID == "sb-val" {
			center = m.Text
		}
	}
	if arcs != 11 {
		t.Errorf("arcs = %d, want 11", arcs)
	}
	if center != "1.95B" {
		t.Errorf("centre = %q, want 1.95B", center)
	}
	root := p.Figure.Marks[0]
	if root.Fill != figures.ColorPanel || root.Center.Label != "Market" {
		t.Errorf("root arc = %+v", root)
	}
	if p.Figure.Marks[2].Fill == figures.ColorSamyang {
		t.Error("segment arcs should use a brighter parent colour")
	}
}

func TestPricingColours(t *testing.T) {
	if got := pricingScale.Map(100); got != "#ffb020" {
		t.Errorf("index 100 colour = %q", got)
	}
	s := Pricing()
	var white int
	for _, m := range s.Figure.Marks {
		if m.Kind == MarkText && m.Fill == figures.ColorWhite {
			white++
			if m.Text != "37%" {
				t.Errorf("unexpected white label %q", m.Text)
			}
		}
	}
	if white != 1 {
		t.Errorf("white labels = %d, want only the UK ROS index", white)
	}
}

func TestRatioAndStatusColors(t *testing.T) {
	if RatioColor(0.88) != figures.ColorGreen || RatioColor(0.73) != figures.ColorYellow || RatioColor(0.02) != figures.ColorSamyang {
		t.Error("ratio colours")
	}
	r := StrategicRoadmap()
	want := []string{figures.ColorGreen, figures.ColorYellow, figures.ColorOrange, figures.ColorGreen}
	for i, c := range r.Cards {
		if c.Color != want[i] {
			t.Errorf("card %d colour = %q, want %q", i, c.Color, want[i])
		}
	}
}

func TestCountryChangesOnlyScopedContainers(t *testing.T) {
	snap := loadSnapshot(t)
	base := DefaultFilter()
	for _, country := range []string{dataset.CountryGermany, dataset.CountryUK, dataset.CountryNetherlands} {
		f := base
		f.Country = country
		for _, id := range Containers {
			a, err := Build(id, snap, base)
			if err != nil {
				t.Fatal(err)
			}
			b, err := Build(id, snap, f)
			if err != nil {
				t.Fatal(err)
			}
			if !CountryScoped(id) && !reflect.DeepEqual(a, b) {
				t.Errorf("%s changed when selecting %s", id, country)
			}
		}
	}

	a, _ := Build(FlavourID, snap, base)
	f := base
	f.Country = dataset.CountryGermany
	b, _ := Build(FlavourID, snap, f)
	if reflect.DeepEqual(a, b) {
		t.Error("flavour panel should follow the country filter")
	}
}

func TestBuildUnknownContainer(t *testing.T) {
	_, err := Build("nope", nil, DefaultFilter())
	if !errors.Is(err, ErrUnknownContainer) {
		t.Errorf("err = %v", err)
	}
}

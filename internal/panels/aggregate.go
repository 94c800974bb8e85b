package panels

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/abcnoodle/marketintel/internal/dataset"
)

// fixed formats v with prec decimals. Ties are decided on the exact binary
// value of v and round away from zero.
func fixed(v float64, prec int) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', 60, 64)
	dot := strings.IndexByte(s, '.')
	if tail := s[dot+1+prec:]; tail[0] == '5' && strings.TrimRight(tail[1:], "0") == "" {
		head := s[:dot+1+prec]
		if prec == 0 {
			head = s[:dot]
		}
		t, _ := strconv.ParseFloat(head, 64)
		return strconv.FormatFloat(math.Copysign(t+math.Pow10(-prec), v), 'f', prec, 64)
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// plain formats v in its shortest form.
func plain(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// truncate shortens labels longer than n runes and appends "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

var spicyKeywords = []string{"Spicy", "Hot", "Curry", "Kimchi"}

// FlavourShare is a flavour row with the computed Samyang share.
type FlavourShare struct {
	Flavour string  `json:"flavour"`
	Units   float64 `json:"units"`
	Samyang float64 `json:"samyang"`
	Share   float64 `json:"share"`
}

// FlavourSummary aggregates the flavour rows of one country.
type FlavourSummary struct {
	Country      string         `json:"country"`
	SamyangUnits float64        `json:"samyang_units"`
	TotalUnits   float64        `json:"total_units"`
	SharePct     float64        `json:"share_pct"`
	SpicyUnits   float64        `json:"spicy_units"`
	TopFlavour   string         `json:"top_flavour"`
	Rows         []FlavourShare `json:"rows"`
}

// SummarizeFlavours computes the flavour KPIs. Row order is preserved and
// the top flavour is the first row.
func SummarizeFlavours(country string, rows []dataset.FlavourRow) FlavourSummary {
	s := FlavourSummary{
		Country:      country,
		SamyangUnits: lo.SumBy(rows, func(r dataset.FlavourRow) float64 { return r.Samyang }),
		TotalUnits:   lo.SumBy(rows, func(r dataset.FlavourRow) float64 { return r.Units }),
		TopFlavour:   "-",
	}
	s.SpicyUnits = lo.SumBy(rows, func(r dataset.FlavourRow) float64 {
		if isSpicy(r.Flavour) {
			return r.Units
		}
		return 0
	})
	total := s.TotalUnits
	if total == 0 {
		total = 1
	}
	s.SharePct = math.Round(s.SamyangUnits / total * 100)
	if len(rows) > 0 && rows[0].Flavour != "" {
		s.TopFlavour = rows[0].Flavour
	}
	s.Rows = lo.Map(rows, func(r dataset.FlavourRow, _ int) FlavourShare {
		return FlavourShare{
			Flavour: r.Flavour,
			Units:   r.Units,
			Samyang: r.Samyang,
			Share:   dataset.SharePct(r.Samyang, r.Units),
		}
	})
	return s
}

func isSpicy(flavour string) bool {
	return lo.ContainsBy(spicyKeywords, func(k string) bool { return strings.Contains(flavour, k) })
}

// ParetoPoint is a ranked product with its recomputed cumulative share.
type ParetoPoint struct {
	Product string  `json:"product"`
	Value   float64 `json:"value"`
	CumPct  float64 `json:"cum_pct"`
}

// ParetoSeries recomputes the cumulative percentage from the values in the
// supplied order.
func ParetoSeries(items []dataset.ParetoItem) []ParetoPoint {
	cum := dataset.CumulativePct(lo.Map(items, func(it dataset.ParetoItem, _ int) float64 { return it.Value }))
	return lo.Map(items, func(it dataset.ParetoItem, i int) ParetoPoint {
		return ParetoPoint{Product: it.Product, Value: it.Value, CumPct: cum[i]}
	})
}

// WeeklySample is a parsed weekly point.
type WeeklySample struct {
	Date    time.Time `json:"date"`
	Samyang float64   `json:"samyang"`
	Others  float64   `json:"others"`
}

// WeeklySeries parses the weekly points, dropping those with invalid dates,
// and orders them by date.
func WeeklySeries(points []dataset.WeeklyPoint) []WeeklySample {
	out := make([]WeeklySample, 0, len(points))
	for _, p := range points {
		t, err := p.Time()
		if err != nil {
			continue
		}
		out = append(out, WeeklySample{Date: t, Samyang: p.Samyang, Others: p.Others})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// maxOr returns the largest value, or fallback when there are none or the
// largest is zero.
func maxOr(values []float64, fallback float64) float64 {
	if len(values) == 0 {
		return fallback
	}
	m := lo.Max(values)
	if m == 0 {
		return fallback
	}
	return m
}

// ParetoMax is the top of the Pareto value axis.
func ParetoMax(points []ParetoPoint) float64 {
	return maxOr(lo.Map(points, func(p ParetoPoint, _ int) float64 { return p.Value }), 10)
}

// FlavourMax is the end of the flavour units axis.
func FlavourMax(rows []FlavourShare) float64 {
	return maxOr(lo.Map(rows, func(r FlavourShare, _ int) float64 { return r.Units }), 100)
}

// WeeklyMax is the top of the weekly axis, with 10% headroom.
func WeeklyMax(samples []WeeklySample) float64 {
	values := lo.FlatMap(samples, func(s WeeklySample, _ int) []float64 { return []float64{s.Samyang, s.Others} })
	return maxOr(values, 10) * 1.1
}

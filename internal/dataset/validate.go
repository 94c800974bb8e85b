package dataset

import (
	"fmt"
	"math"
	"sort"
)

// Severity grades a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one problem found in a snapshot.
type Issue struct {
	Severity Severity `json:"severity"`
	Path     string   `json:"path"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Severity, i.Path, i.Message)
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// CumulativePct returns the running share of the total at each position,
// in percent. The last element is exactly 100 when the total is positive;
// negative values count as zero so the result never decreases.
func CumulativePct(values []float64) []float64 {
	total := 0.0
	for _, v := range values {
		total += math.Max(0, v)
	}
	out := make([]float64, len(values))
	if total <= 0 {
		return out
	}
	run := 0.0
	for i, v := range values {
		run += math.Max(0, v)
		out[i] = run / total * 100
	}
	out[len(out)-1] = 100
	return out
}

// SharePct is Samyang's rounded share of units, 0 when units is not
// positive.
func SharePct(samyang, units float64) float64 {
	if units <= 0 {
		return 0
	}
	return math.Round(samyang / units * 100)
}

// Validate checks that every field the panels read is present and
// consistent. Missing per-country data is a warning because the panels
// degrade to placeholders.
func Validate(s *Snapshot) []Issue {
	var issues []Issue
	add := func(sev Severity, path, format string, args ...any) {
		issues = append(issues, Issue{Severity: sev, Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if s == nil || s.Insights == nil || s.Dashboard == nil {
		add(SeverityError, "$", "snapshot is empty")
		return issues
	}

	o := s.Insights.MarketOverview
	if o.TotalSalesUnits <= 0 {
		add(SeverityError, "market_overview.total_sales_units", "must be positive")
	}
	if o.SamyangSalesUnits > o.TotalSalesUnits {
		add(SeverityError, "market_overview.samyang_sales_units", "exceeds total_sales_units")
	}
	if o.SamyangShareUnitsPct < 0 || o.SamyangShareUnitsPct > 100 {
		add(SeverityError, "market_overview.samyang_share_units_pct", "out of range: %v", o.SamyangShareUnitsPct)
	}
	if o.SamyangProducts > o.TotalProducts {
		add(SeverityError, "market_overview.samyang_products", "exceeds total_products")
	}

	d := s.Dashboard
	if _, ok := d.DateMeta[CountryAll]; !ok {
		add(SeverityWarning, "date_meta.All", "missing; KPI subtitle falls back to an empty label")
	}

	for _, c := range Countries {
		if _, ok := d.ParetoData[c]; !ok {
			add(SeverityWarning, "pareto_data."+c, "missing")
		}
		if _, ok := d.FlavourData[c]; !ok {
			add(SeverityWarning, "flavour_data."+c, "missing")
		}
		if len(d.WeeklyData[c]) == 0 {
			add(SeverityWarning, "weekly_data."+c, "missing or empty")
		}
	}

	for country, views := range d.ParetoData {
		for view, items := range views {
			path := fmt.Sprintf("pareto_data.%s.%s", country, view)
			values := make([]float64, len(items))
			for i, it := range items {
				if it.Product == "" {
					add(SeverityError, fmt.Sprintf("%s[%d].product", path, i), "empty")
				}
				if it.Value < 0 {
					add(SeverityError, fmt.Sprintf("%s[%d].value", path, i), "negative")
				}
				values[i] = it.Value
			}
			cum := CumulativePct(values)
			for i, it := range items {
				if math.Abs(it.CumPct-cum[i]) > 1 {
					add(SeverityWarning, fmt.Sprintf("%s[%d].cum_pct", path, i),
						"supplied %.1f differs from recomputed %.1f", it.CumPct, cum[i])
					break
				}
			}
		}
	}

	for country, rows := range d.FlavourData {
		for i, r := range rows {
			path := fmt.Sprintf("flavour_data.%s[%d]", country, i)
			if r.Flavour == "" {
				add(SeverityError, path+".flavour", "empty")
			}
			if r.Samyang > r.Units {
				add(SeverityError, path+".samyang", "exceeds units")
			}
			if want := SharePct(r.Samyang, r.Units); math.Abs(r.Share-want) > 1 {
				add(SeverityWarning, path+".share", "supplied %v differs from computed %v", r.Share, want)
			}
		}
	}

	for country, points := range d.WeeklyData {
		var prev string
		for i, p := range points {
			path := fmt.Sprintf("weekly_data.%s[%d].date", country, i)
			if _, err := p.Time(); err != nil {
				add(SeverityError, path, "invalid date %q", p.Date)
				continue
			}
			if prev != "" && p.Date < prev {
				add(SeverityWarning, path, "dates are not ascending")
			}
			prev = p.Date
		}
	}

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
	return issues
}

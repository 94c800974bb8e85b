package dataset

import (
	"sort"
	"sync/atomic"

	"github.com/samber/lo"
)

// Holder keeps the current snapshot. Readers never block; a reload swaps the
// pointer.
type Holder struct {
	cur atomic.Pointer[Snapshot]
}

// Current returns the loaded snapshot or nil.
func (h *Holder) Current() *Snapshot {
	return h.cur.Load()
}

// Get returns the loaded snapshot or ErrNotLoaded.
func (h *Holder) Get() (*Snapshot, error) {
	s := h.cur.Load()
	if s == nil {
		return nil, ErrNotLoaded
	}
	return s, nil
}

// Store replaces the current snapshot.
func (h *Holder) Store(s *Snapshot) {
	h.cur.Store(s)
}

// Pareto returns the ranking for country and view. ok reports whether the
// country has any Pareto entry at all.
func (s *Snapshot) Pareto(country, view string) (items []ParetoItem, ok bool) {
	if s == nil || s.Dashboard == nil || s.Dashboard.ParetoData == nil {
		return nil, false
	}
	byView, ok := s.Dashboard.ParetoData[country]
	if !ok {
		return nil, false
	}
	return byView[view], true
}

// Flavours returns the flavour rows for country, empty when missing.
func (s *Snapshot) Flavours(country string) []FlavourRow {
	if s == nil || s.Dashboard == nil {
		return nil
	}
	return s.Dashboard.FlavourData[country]
}

// Weekly returns the weekly series for country, empty when missing.
func (s *Snapshot) Weekly(country string) []WeeklyPoint {
	if s == nil || s.Dashboard == nil {
		return nil
	}
	return s.Dashboard.WeeklyData[country]
}

// Meta returns the date metadata for country.
func (s *Snapshot) Meta(country string) (DateMeta, bool) {
	if s == nil || s.Dashboard == nil {
		return DateMeta{}, false
	}
	m, ok := s.Dashboard.DateMeta[country]
	return m, ok
}

// Overview returns the market overview, or the zero value when missing.
func (s *Snapshot) Overview() MarketOverview {
	if s == nil || s.Insights == nil {
		return MarketOverview{}
	}
	return s.Insights.MarketOverview
}

// DataCountries lists every country key present in any dashboard section,
// sorted with All first.
func (s *Snapshot) DataCountries() []string {
	if s == nil || s.Dashboard == nil {
		return nil
	}
	d := s.Dashboard
	keys := lo.Uniq(lo.Flatten([][]string{
		lo.Keys(d.ParetoData),
		lo.Keys(d.FlavourData),
		lo.Keys(d.WeeklyData),
		lo.Keys(d.DateMeta),
	}))
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == CountryAll || keys[j] == CountryAll {
			return keys[i] == CountryAll && keys[j] != CountryAll
		}
		return keys[i] < keys[j]
	})
	return keys
}

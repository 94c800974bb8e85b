// Package panels turns a dataset snapshot into view models, one per
// dashboard container. Builders are pure: the same snapshot and filter
// always produce the same view model.
package panels

import (
	"errors"
	"fmt"

	"github.com/abcnoodle/marketintel/internal/dataset"
)

// Container ids of the host page.
const (
	KPIGridID            = "kpi-grid"
	CountryFilterID      = "country-filter"
	WeightedDistID       = "weighted-dist-chart"
	ParetoID             = "numeric-dist-chart"
	ParetoCountryID      = "pareto-country-filter"
	ParetoViewID         = "pareto-view-filter"
	PricingID            = "price-by-country-chart"
	FlavourID            = "flavour-by-country-chart"
	SeasonalityID        = "seasonality-chart"
	SeasonalityInsightID = "seasonality-insight"
	SeasonalityFilterID  = "seasonality-filter"
	ROSID                = "ros-chart"
	SunburstID           = "sunburst-chart"
	RetailerID           = "retailer-heatmap"
	InsightsID           = "insights-container"
	TooltipID            = "tooltip"
)

// Containers lists every container Build knows, in page order.
var Containers = []string{
	KPIGridID,
	CountryFilterID,
	WeightedDistID,
	ParetoID,
	PricingID,
	FlavourID,
	SeasonalityID,
	SeasonalityInsightID,
	ROSID,
	SunburstID,
	RetailerID,
	InsightsID,
}

// ErrUnknownContainer is returned by Build for an id outside Containers.
var ErrUnknownContainer = errors.New("unknown container")

// Filter is the selection state of the page. Country drives the flavour
// and seasonality panels; the Pareto chart keeps its own selection.
type Filter struct {
	Country       string
	ParetoCountry string
	ParetoView    string
}

// DefaultFilter selects All everywhere and the Samyang Pareto view.
func DefaultFilter() Filter {
	return Filter{
		Country:       dataset.CountryAll,
		ParetoCountry: dataset.CountryAll,
		ParetoView:    dataset.ViewSamyang,
	}
}

// Build returns the view model of the container with the given id.
func Build(id string, snap *dataset.Snapshot, f Filter) (any, error) {
	switch id {
	case KPIGridID:
		return KPIs(snap), nil
	case CountryFilterID:
		return CountryFilter(f.Country), nil
	case WeightedDistID:
		return WeightedDistribution(), nil
	case ParetoID:
		return Pareto(snap, f.ParetoCountry, f.ParetoView), nil
	case PricingID:
		return Pricing(), nil
	case FlavourID:
		return Flavours(snap, f.Country), nil
	case SeasonalityID:
		return Seasonality(snap, f.Country), nil
	case SeasonalityInsightID:
		return SeasonalityInsight(snap, f.Country), nil
	case ROSID:
		return RateOfSale(), nil
	case SunburstID:
		return Sunburst(), nil
	case RetailerID:
		return Retailers(), nil
	case InsightsID:
		return StrategicRoadmap(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownContainer, id)
	}
}

// CountryScoped reports whether a container depends on Filter.Country.
func CountryScoped(id string) bool {
	switch id {
	case FlavourID, SeasonalityID, SeasonalityInsightID, CountryFilterID:
		return true
	}
	return false
}

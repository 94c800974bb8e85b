package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/export"
	"github.com/abcnoodle/marketintel/internal/panels"
)

// startTime is the modification time reported for embedded assets.
var startTime = time.Now()

// filterFromQuery reads the page selection. Unknown countries fall back to
// All on the page; fragments keep them so placeholders can name them.
func filterFromQuery(r *http.Request) panels.Filter {
	q := r.URL.Query()
	f := panels.DefaultFilter()
	if c, err := dataset.NormalizeCountry(q.Get("country")); err == nil {
		f.Country = c
	}
	if c, err := dataset.NormalizeCountry(q.Get("pareto_country")); err == nil {
		f.ParetoCountry = c
	}
	f.ParetoView = dataset.NormalizeView(q.Get("pareto_view"))
	return f
}

func (d *Dashboard) handlePage(w http.ResponseWriter, r *http.Request) {
	snap := d.holder.Current()
	status := http.StatusOK
	if snap == nil {
		status = http.StatusServiceUnavailable
	}

	var buf bytes.Buffer
	opts := ServerPage(d.opts.Title, d.opts.Live)
	if err := d.renderer.Page(&buf, snap, filterFromQuery(r), opts); err != nil {
		d.logger.Error("rendering page", zap.Error(err))
		http.Error(w, "rendering page failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (d *Dashboard) handleFragment(w http.ResponseWriter, r *http.Request) {
	snap, err := d.holder.Get()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}

	id := chi.URLParam(r, "container")
	q := r.URL.Query()
	country, _ := dataset.NormalizeCountry(q.Get("country"))

	f := panels.DefaultFilter()
	if id == panels.ParetoID {
		f.ParetoCountry = country
		f.ParetoView = dataset.NormalizeView(q.Get("view"))
	} else {
		f.Country = country
	}

	var buf bytes.Buffer
	if err := d.renderer.Fragment(&buf, id, snap, f); err != nil {
		if errors.Is(err, panels.ErrUnknownContainer) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		d.logger.Error("rendering fragment", zap.String("container", id), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// overviewResponse is the JSON response for the overview endpoint.
type overviewResponse struct {
	MarketOverview dataset.MarketOverview `json:"market_overview"`
	Period         dataset.DateMeta       `json:"period"`
	Countries      []string               `json:"countries"`
	LoadedAt       time.Time              `json:"loaded_at"`
}

func (d *Dashboard) handleOverview(w http.ResponseWriter, r *http.Request) {
	snap, ok := d.snapshot(w)
	if !ok {
		return
	}
	meta, _ := snap.Meta(dataset.CountryAll)
	writeJSON(w, http.StatusOK, overviewResponse{
		MarketOverview: snap.Overview(),
		Period:         meta,
		Countries:      snap.DataCountries(),
		LoadedAt:       snap.LoadedAt,
	})
}

func (d *Dashboard) handleFlavours(w http.ResponseWriter, r *http.Request) {
	snap, ok := d.snapshot(w)
	if !ok {
		return
	}
	country, ok := countryParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, panels.SummarizeFlavours(country, snap.Flavours(country)))
}

// paretoResponse is the JSON response for the Pareto endpoint.
type paretoResponse struct {
	Country string               `json:"country"`
	View    string               `json:"view"`
	Max     float64              `json:"max"`
	Points  []panels.ParetoPoint `json:"points"`
}

func (d *Dashboard) handlePareto(w http.ResponseWriter, r *http.Request) {
	snap, ok := d.snapshot(w)
	if !ok {
		return
	}
	country, ok := countryParam(w, r)
	if !ok {
		return
	}
	view := dataset.NormalizeView(chi.URLParam(r, "view"))

	items, found := snap.Pareto(country, view)
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no data for " + country})
		return
	}
	points := panels.ParetoSeries(items)
	writeJSON(w, http.StatusOK, paretoResponse{
		Country: country,
		View:    view,
		Max:     panels.ParetoMax(points),
		Points:  points,
	})
}

// weeklyResponse is the JSON response for the weekly endpoint.
type weeklyResponse struct {
	Country string                `json:"country"`
	Period  dataset.DateMeta      `json:"period"`
	Max     float64               `json:"max"`
	Weeks   []panels.WeeklySample `json:"weeks"`
}

func (d *Dashboard) handleWeekly(w http.ResponseWriter, r *http.Request) {
	snap, ok := d.snapshot(w)
	if !ok {
		return
	}
	country, ok := countryParam(w, r)
	if !ok {
		return
	}
	weeks := panels.WeeklySeries(snap.Weekly(country))
	meta, _ := snap.Meta(country)
	writeJSON(w, http.StatusOK, weeklyResponse{
		Country: country,
		Period:  meta,
		Max:     panels.WeeklyMax(weeks),
		Weeks:   weeks,
	})
}

func (d *Dashboard) handleWorkbook(w http.ResponseWriter, r *http.Request) {
	snap, ok := d.snapshot(w)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, snap); err != nil {
		d.logger.Error("exporting workbook", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="marketintel.xlsx"`)
	w.Write(buf.Bytes())
}

func (d *Dashboard) handleChart(w http.ResponseWriter, r *http.Request) {
	snap, ok := d.snapshot(w)
	if !ok {
		return
	}
	q := r.URL.Query()
	country, err := dataset.NormalizeCountry(q.Get("country"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	err = export.WritePNG(&buf, chi.URLParam(r, "name"), snap, country, dataset.NormalizeView(q.Get("view")))
	switch {
	case errors.Is(err, export.ErrUnknownChart), errors.Is(err, export.ErrNoData):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	case err != nil:
		d.logger.Error("exporting chart", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// snapshot writes a 503 and reports false when nothing is loaded.
func (d *Dashboard) snapshot(w http.ResponseWriter) (*dataset.Snapshot, bool) {
	snap, err := d.holder.Get()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return nil, false
	}
	return snap, true
}

func countryParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	country, err := dataset.NormalizeCountry(chi.URLParam(r, "country"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error() + ": " + country})
		return "", false
	}
	return country, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

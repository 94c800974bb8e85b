// Package dashboard serves the market intelligence page, its per-container
// fragments, derived JSON and live reload notifications.
package dashboard

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abcnoodle/marketintel/internal/dataset"
)

// Options configures the served page.
type Options struct {
	Title string
	// Live enables the websocket reload client on the page.
	Live bool
}

// Dashboard renders the current snapshot of a holder.
type Dashboard struct {
	holder   *dataset.Holder
	renderer *Renderer
	hub      *Hub
	logger   *zap.Logger
	opts     Options
}

// New creates a Dashboard reading from holder.
func New(holder *dataset.Holder, renderer *Renderer, hub *Hub, logger *zap.Logger, opts Options) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	if hub == nil {
		hub = NewHub(logger)
	}
	return &Dashboard{
		holder:   holder,
		renderer: renderer,
		hub:      hub,
		logger:   logger,
		opts:     opts,
	}
}

// Hub returns the live reload hub.
func (d *Dashboard) Hub() *Hub { return d.hub }

// Reload tells connected browsers to refresh.
func (d *Dashboard) Reload() { d.hub.Broadcast(ReloadMessage) }

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.handlePage)
	r.Get("/fragments/{container}", d.handleFragment)
	r.Get("/static/{name}", d.handleStatic)

	r.Route("/api/data", func(r chi.Router) {
		r.Get("/overview", d.handleOverview)
		r.Get("/flavours/{country}", d.handleFlavours)
		r.Get("/pareto/{country}/{view}", d.handlePareto)
		r.Get("/weekly/{country}", d.handleWeekly)
	})

	r.Get("/export/marketintel.xlsx", d.handleWorkbook)
	r.Get("/charts/{name}.png", d.handleChart)

	r.Get("/ws/live", d.hub.ServeHTTP)
}

func (d *Dashboard) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	body, ok := Assets[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, name, startTime, bytes.NewReader(body))
}

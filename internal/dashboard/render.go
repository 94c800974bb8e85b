package dashboard

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/panels"
)

//go:embed static/dashboard.css
var dashboardCSS []byte

//go:embed static/dashboard.js
var dashboardJS []byte

// Assets maps the embedded static file names to their contents.
var Assets = map[string][]byte{
	"dashboard.css": dashboardCSS,
	"dashboard.js":  dashboardJS,
}

// containerTemplates maps container ids onto fragment template names.
var containerTemplates = map[string]string{
	panels.KPIGridID:            "kpis",
	panels.CountryFilterID:      "buttons",
	panels.WeightedDistID:       "section",
	panels.ParetoID:             "section",
	panels.PricingID:            "section",
	panels.FlavourID:            "flavour",
	panels.SeasonalityID:        "section",
	panels.SeasonalityInsightID: "insights",
	panels.ROSID:                "section",
	panels.SunburstID:           "sunburst",
	panels.RetailerID:           "section",
	panels.InsightsID:           "roadmap",
}

// PageOptions controls how the host page links to its assets and
// fragments.
type PageOptions struct {
	Title string
	// Static selects file based fragment URLs for an exported site.
	Static       bool
	AssetBase    string
	FragmentBase string
	// LivePath is the websocket path of reload notifications; empty
	// disables live reload.
	LivePath string
}

// ServerPage returns the options of the page served by the dashboard.
func ServerPage(title string, live bool) PageOptions {
	opts := PageOptions{Title: title, AssetBase: "/static", FragmentBase: "/fragments"}
	if live {
		opts.LivePath = "/ws/live"
	}
	return opts
}

// StaticPage returns the options of an exported page.
func StaticPage(title string) PageOptions {
	return PageOptions{Title: title, Static: true, AssetBase: "static", FragmentBase: "fragments"}
}

type pageData struct {
	PageOptions
	Live              bool
	Loaded            bool
	Subtitle          string
	Containers        map[string]template.HTML
	ParetoCountry     panels.FilterBar
	ParetoView        panels.FilterBar
	SeasonalityFilter panels.FilterBar
}

// Renderer turns panel view models into HTML.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the page and fragment templates.
func NewRenderer() (*Renderer, error) {
	funcs := svgFuncs()
	for name, fn := range markdownFuncs(newMarkdown()) {
		funcs[name] = fn
	}

	tmpl, err := template.New("page").Funcs(funcs).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	if _, err := tmpl.New("fragments").Parse(fragmentTemplates); err != nil {
		return nil, fmt.Errorf("parsing fragment templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Fragment writes the inner HTML of one container.
func (r *Renderer) Fragment(w io.Writer, id string, snap *dataset.Snapshot, f panels.Filter) error {
	vm, err := panels.Build(id, snap, f)
	if err != nil {
		return err
	}
	if err := r.tmpl.ExecuteTemplate(w, containerTemplates[id], vm); err != nil {
		return fmt.Errorf("rendering %s: %w", id, err)
	}
	return nil
}

func (r *Renderer) fragmentHTML(id string, snap *dataset.Snapshot, f panels.Filter) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.Fragment(&buf, id, snap, f); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Page writes the full dashboard. Without a snapshot every container is
// left empty.
func (r *Renderer) Page(w io.Writer, snap *dataset.Snapshot, f panels.Filter, opts PageOptions) error {
	data := pageData{
		PageOptions:       opts,
		Live:              opts.LivePath != "" && !opts.Static,
		Loaded:            snap != nil,
		Containers:        make(map[string]template.HTML, len(panels.Containers)),
		ParetoCountry:     panels.ParetoCountryFilter(f.ParetoCountry),
		ParetoView:        panels.ParetoViewFilter(f.ParetoView),
		SeasonalityFilter: panels.SeasonalityFilter(f.Country),
	}
	if snap != nil {
		meta, _ := snap.Meta(dataset.CountryAll)
		data.Subtitle = meta.Label()
		for _, id := range panels.Containers {
			html, err := r.fragmentHTML(id, snap, f)
			if err != nil {
				return err
			}
			data.Containers[id] = html
		}
	}
	if err := r.tmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abcnoodle/marketintel/internal/dashboard"
	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/export"
	"github.com/abcnoodle/marketintel/internal/panels"
	"github.com/abcnoodle/marketintel/internal/progress"
)

// WorkbookFile is the name of the spreadsheet written next to the page.
const WorkbookFile = "marketintel.xlsx"

// countryFragments are re-fetched by the page when the country changes.
var countryFragments = []string{panels.FlavourID, panels.SeasonalityID, panels.SeasonalityInsightID}

// Generator writes the dashboard as a static site: the page, every
// fragment a filter button can request, the assets and a workbook.
type Generator struct {
	OutputDir string
	Title     string
	Renderer  *dashboard.Renderer
	Reporter  progress.Reporter
}

// NewGenerator creates a Generator writing to outputDir.
func NewGenerator(outputDir, title string, renderer *dashboard.Renderer) *Generator {
	return &Generator{
		OutputDir: outputDir,
		Title:     title,
		Renderer:  renderer,
		Reporter:  progress.Nop{},
	}
}

// file is one output of the site with the function producing its bytes.
type file struct {
	path   string
	render func(*bytes.Buffer) error
}

// FragmentPath is the site relative path of a pre-rendered fragment. view
// is only used by the Pareto chart.
func FragmentPath(id, country, view string) string {
	name := country
	if view != "" {
		name += "-" + view
	}
	return filepath.ToSlash(filepath.Join("fragments", id, name+".html"))
}

func (g *Generator) files(snap *dataset.Snapshot) []file {
	filter := panels.DefaultFilter()
	files := []file{{
		path: "index.html",
		render: func(b *bytes.Buffer) error {
			return g.Renderer.Page(b, snap, filter, dashboard.StaticPage(g.Title))
		},
	}}

	for name, body := range dashboard.Assets {
		files = append(files, file{
			path:   "static/" + name,
			render: func(b *bytes.Buffer) error { _, err := b.Write(body); return err },
		})
	}

	for _, id := range countryFragments {
		for _, country := range dataset.Countries {
			f := filter
			f.Country = country
			files = append(files, file{
				path:   FragmentPath(id, country, ""),
				render: func(b *bytes.Buffer) error { return g.Renderer.Fragment(b, id, snap, f) },
			})
		}
	}

	for _, country := range dataset.Countries {
		for _, view := range dataset.Views {
			f := filter
			f.ParetoCountry, f.ParetoView = country, view
			files = append(files, file{
				path:   FragmentPath(panels.ParetoID, country, view),
				render: func(b *bytes.Buffer) error { return g.Renderer.Fragment(b, panels.ParetoID, snap, f) },
			})
		}
	}

	files = append(files, file{
		path:   WorkbookFile,
		render: func(b *bytes.Buffer) error { return export.WriteWorkbook(b, snap) },
	})
	return files
}

// Generate builds the full static site. Returns the number of files written.
func (g *Generator) Generate(snap *dataset.Snapshot) (int, error) {
	if snap == nil {
		return 0, dataset.ErrNotLoaded
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	files := g.files(snap)
	g.Reporter.Start(len(files))
	defer g.Reporter.Finish()

	var buf bytes.Buffer
	for i, f := range files {
		buf.Reset()
		if err := f.render(&buf); err != nil {
			return i, fmt.Errorf("rendering %s: %w", f.path, err)
		}
		dst := filepath.Join(g.OutputDir, filepath.FromSlash(f.path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return i, err
		}
		if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
			return i, fmt.Errorf("writing %s: %w", f.path, err)
		}
		g.Reporter.Update(i+1, f.path)
	}
	return len(files), nil
}

package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/figures"
	"github.com/abcnoodle/marketintel/internal/panels"
)

// Sheet names of the workbook, in order.
const (
	SheetOverview = "Overview"
	SheetPareto   = "Pareto"
	SheetFlavours = "Flavours"
	SheetWeekly   = "Weekly"
	SheetRoadmap  = "Roadmap"
)

// Sheets lists the workbook sheets in order.
var Sheets = []string{SheetOverview, SheetPareto, SheetFlavours, SheetWeekly, SheetRoadmap}

type sheetWriter struct {
	f      *excelize.File
	name   string
	row    int
	header int
}

func newSheet(f *excelize.File, name string, headers ...any) (*sheetWriter, error) {
	if name != SheetOverview {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}
	s := &sheetWriter{f: f, name: name}
	if err := s.append(headers...); err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(name, "A1", last, s.headerStyle()); err != nil {
		return nil, fmt.Errorf("styling %s header: %w", name, err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetColWidth(name, "A", lastCol, 18); err != nil {
		return nil, fmt.Errorf("sizing %s columns: %w", name, err)
	}
	return s, nil
}

func (s *sheetWriter) headerStyle() int {
	if s.header != 0 {
		return s.header
	}
	id, err := s.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1A1F2E"}},
	})
	if err == nil {
		s.header = id
	}
	return s.header
}

func (s *sheetWriter) append(values ...any) error {
	s.row++
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return err
	}
	if err := s.f.SetSheetRow(s.name, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", s.name, s.row, err)
	}
	return nil
}

// Workbook builds a spreadsheet holding the overview totals, every Pareto
// ranking with its recomputed cumulative share, the flavour rows, the
// weekly series and the strategic roadmap.
func Workbook(snap *dataset.Snapshot) (*excelize.File, error) {
	if snap == nil {
		return nil, dataset.ErrNotLoaded
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		f.Close()
		return nil, err
	}

	for _, write := range []func(*excelize.File, *dataset.Snapshot) error{
		writeOverview, writePareto, writeFlavours, writeWeekly, writeRoadmap,
	} {
		if err := write(f, snap); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteWorkbook streams the workbook of snap to w.
func WriteWorkbook(w io.Writer, snap *dataset.Snapshot) error {
	f, err := Workbook(snap)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeOverview(f *excelize.File, snap *dataset.Snapshot) error {
	s, err := newSheet(f, SheetOverview, "Metric", "Value")
	if err != nil {
		return err
	}
	o := snap.Overview()
	meta, _ := snap.Meta(dataset.CountryAll)
	rows := [][]any{
		{"Period", meta.FullLabel},
		{"Total sales (units)", o.TotalSalesUnits},
		{"Total sales (value)", o.TotalSalesValue},
		{"Samyang sales (units)", o.SamyangSalesUnits},
		{"Samyang sales (value)", o.SamyangSalesValue},
		{"Samyang share of units (%)", o.SamyangShareUnitsPct},
		{"Samyang products", o.SamyangProducts},
		{"Total products", o.TotalProducts},
	}
	for _, r := range rows {
		if err := s.append(r...); err != nil {
			return err
		}
	}
	return nil
}

func writePareto(f *excelize.File, snap *dataset.Snapshot) error {
	s, err := newSheet(f, SheetPareto, "Country", "View", "Rank", "Product", "Value (M units)", "Cumulative %")
	if err != nil {
		return err
	}
	for _, country := range snap.DataCountries() {
		for _, view := range dataset.Views {
			items, _ := snap.Pareto(country, view)
			for i, p := range panels.ParetoSeries(items) {
				if err := s.append(country, view, i+1, p.Product, p.Value, p.CumPct); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeFlavours(f *excelize.File, snap *dataset.Snapshot) error {
	s, err := newSheet(f, SheetFlavours, "Country", "Flavour", "Units (M)", "Samyang (M)", "Samyang share %")
	if err != nil {
		return err
	}
	for _, country := range snap.DataCountries() {
		for _, r := range panels.SummarizeFlavours(country, snap.Flavours(country)).Rows {
			if err := s.append(country, r.Flavour, r.Units, r.Samyang, r.Share); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeWeekly(f *excelize.File, snap *dataset.Snapshot) error {
	s, err := newSheet(f, SheetWeekly, "Country", "Week", "Samyang (M)", "Competitors (M)")
	if err != nil {
		return err
	}
	for _, country := range snap.DataCountries() {
		for _, w := range panels.WeeklySeries(snap.Weekly(country)) {
			if err := s.append(country, w.Date.Format("2006-01-02"), w.Samyang, w.Others); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRoadmap(f *excelize.File, _ *dataset.Snapshot) error {
	s, err := newSheet(f, SheetRoadmap, "Recommendation", "Impact", "Status", "Confidence", "Timeline")
	if err != nil {
		return err
	}
	for _, r := range figures.Roadmap {
		if err := s.append(r.Title, r.Impact, r.Status, r.Confidence, r.Timeline); err != nil {
			return err
		}
	}
	return s.append("12-Month Total Impact", figures.TotalImpactUnits+" units | "+figures.TotalImpactRevenue)
}

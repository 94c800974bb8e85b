package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/abcnoodle/marketintel/internal/dataset"
)

func loadFixture(t *testing.T) *dataset.Snapshot {
	t.Helper()
	snap, err := dataset.NewLoader().Load(t.Context(),
		dataset.SourcesIn("../../testdata/data", dataset.InsightsFile, dataset.DashboardFile))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return snap
}

func TestWorkbook(t *testing.T) {
	snap := loadFixture(t)

	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, snap); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	got := f.GetSheetList()
	if len(got) != len(Sheets) {
		t.Fatalf("sheets = %v, want %v", got, Sheets)
	}
	for i, name := range Sheets {
		if got[i] != name {
			t.Errorf("sheet %d = %q, want %q", i, got[i], name)
		}
	}

	if v, _ := f.GetCellValue(SheetOverview, "B2"); v != "52 weeks to 28 Jan 2024" {
		t.Errorf("period = %q", v)
	}
	if v, _ := f.GetCellValue(SheetOverview, "B8"); v != "89" {
		t.Errorf("samyang products = %q", v)
	}

	pareto, err := f.GetRows(SheetPareto)
	if err != nil {
		t.Fatal(err)
	}
	// header + All (5+5) + Germany (3) + UK (2+2)
	if len(pareto) != 18 {
		t.Errorf("pareto rows = %d, want 18", len(pareto))
	}
	if pareto[5][0] != "All" || pareto[5][5] != "100" {
		t.Errorf("last All samyang row = %v, want cumulative 100", pareto[5])
	}

	flavours, _ := f.GetRows(SheetFlavours)
	// header + All 5 + Germany 2 + UK 2
	if len(flavours) != 10 {
		t.Errorf("flavour rows = %d, want 10", len(flavours))
	}

	weekly, _ := f.GetRows(SheetWeekly)
	if len(weekly) != 9 || weekly[1][1] != "2024-01-07" {
		t.Errorf("weekly rows = %d, first = %v", len(weekly), weekly[1])
	}

	roadmap, _ := f.GetRows(SheetRoadmap)
	if last := roadmap[len(roadmap)-1]; last[0] != "12-Month Total Impact" {
		t.Errorf("roadmap total row = %v", last)
	}
}

func TestWorkbookNotLoaded(t *testing.T) {
	if _, err := Workbook(nil); !errors.Is(err, dataset.ErrNotLoaded) {
		t.Errorf("Workbook(nil) = %v, want ErrNotLoaded", err)
	}
}

func TestWritePNG(t *testing.T) {
	snap := loadFixture(t)
	pngMagic := []byte("\x89PNG\r\n\x1a\n")

	tests := []struct {
		name, country, view string
	}{
		{ChartSeasonality, "All", ""},
		{ChartSeasonality, "Germany", ""},
		{ChartPareto, "All", dataset.ViewSamyang},
		{ChartPareto, "UK", dataset.ViewOthers},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.country, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WritePNG(&buf, tt.name, snap, tt.country, tt.view); err != nil {
				t.Fatalf("WritePNG: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
				t.Error("output is not a PNG image")
			}
		})
	}
}

func TestWritePNGErrors(t *testing.T) {
	snap := loadFixture(t)
	var buf bytes.Buffer

	if err := WritePNG(&buf, "heatmap", snap, "All", ""); !errors.Is(err, ErrUnknownChart) {
		t.Errorf("unknown chart = %v", err)
	}
	if err := WritePNG(&buf, ChartSeasonality, snap, "Netherlands", ""); !errors.Is(err, ErrNoData) {
		t.Errorf("missing weekly data = %v", err)
	}
	if err := WritePNG(&buf, ChartPareto, snap, "Germany", dataset.ViewOthers); !errors.Is(err, ErrNoData) {
		t.Errorf("empty pareto view = %v", err)
	}
	if err := WritePNG(&buf, ChartPareto, nil, "All", ""); !errors.Is(err, dataset.ErrNotLoaded) {
		t.Errorf("nil snapshot = %v", err)
	}
}

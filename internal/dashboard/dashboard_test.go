package dashboard

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/panels"
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

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func setupTest(t *testing.T, loaded bool) (*Dashboard, chi.Router) {
	t.Helper()
	holder := &dataset.Holder{}
	if loaded {
		holder.Store(loadFixture(t))
	}
	d := New(holder, newRenderer(t), nil, nil, Options{Title: "ABC Noodle Co Market Intelligence", Live: true})
	r := chi.NewRouter()
	d.RegisterRoutes(r)
	return d, r
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestPage(t *testing.T) {
	_, r := setupTest(t, true)

	w := get(t, r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()

	for _, id := range append(panels.Containers, panels.TooltipID, panels.ParetoCountryID, panels.ParetoViewID, panels.SeasonalityFilterID) {
		if !strings.Contains(body, `id="`+id+`"`) {
			t.Errorf("page is missing container #%s", id)
		}
	}
	for _, want := range []string{
		"Total Market",
		"1.95B",
		"52 weeks to 28 Jan 2024",
		"of 2483 total",
		`data-live="/ws/live"`,
		`href="/static/dashboard.css"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page does not contain %q", want)
		}
	}
}

func TestPageFragmentsMatchContainers(t *testing.T) {
	_, r := setupTest(t, true)
	page := get(t, r, "/").Body.String()

	for _, id := range panels.Containers {
		frag := get(t, r, "/fragments/"+id)
		if frag.Code != http.StatusOK {
			t.Fatalf("fragment %s: status %d", id, frag.Code)
		}
		if !strings.Contains(page, frag.Body.String()) {
			t.Errorf("fragment %s differs from the page container", id)
		}
	}
}

func TestPageNotLoaded(t *testing.T) {
	_, r := setupTest(t, false)

	w := get(t, r, "/")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `<div id="kpi-grid" class="kpi-grid"></div>`) {
		t.Error("expected an empty KPI grid")
	}
	if strings.Contains(body, "Total Market") {
		t.Error("nothing should render without data")
	}
}

func TestCountryChangesOnlyScopedContainers(t *testing.T) {
	_, r := setupTest(t, true)

	for _, id := range panels.Containers {
		all := get(t, r, "/fragments/"+id+"?country=All").Body.Bytes()
		uk := get(t, r, "/fragments/"+id+"?country=UK").Body.Bytes()

		switch id {
		case panels.FlavourID, panels.SeasonalityID, panels.SeasonalityInsightID, panels.CountryFilterID:
			if bytes.Equal(all, uk) {
				t.Errorf("%s should change with the country", id)
			}
		case panels.ParetoID:
			// The Pareto chart follows its own filter.
		default:
			if !bytes.Equal(all, uk) {
				t.Errorf("%s changed with the country", id)
			}
		}
	}
}

func TestFragmentPlaceholders(t *testing.T) {
	_, r := setupTest(t, true)

	tests := []struct {
		target string
		want   string
	}{
		{"/fragments/numeric-dist-chart?country=Netherlands", "No data for Netherlands"},
		{"/fragments/numeric-dist-chart?country=Germany&view=others", "No data available"},
		{"/fragments/seasonality-chart?country=Netherlands", "No data available for Netherlands"},
		{"/fragments/numeric-dist-chart?country=UK&view=others", "Pot Noodle Chicken &amp; Mushroom"},
		{"/fragments/numeric-dist-chart?country=all", "Cumulative: 100%"},
	}
	for _, tt := range tests {
		w := get(t, r, tt.target)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status %d", tt.target, w.Code)
			continue
		}
		if !strings.Contains(w.Body.String(), tt.want) {
			t.Errorf("%s: body does not contain %q", tt.target, tt.want)
		}
	}
}

func TestFragmentErrors(t *testing.T) {
	_, r := setupTest(t, true)
	if w := get(t, r, "/fragments/not-a-chart"); w.Code != http.StatusNotFound {
		t.Errorf("unknown container: expected 404, got %d", w.Code)
	}

	_, empty := setupTest(t, false)
	w := get(t, empty, "/fragments/kpi-grid")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	var body map[string]string
	json.NewDecoder(w.Body).Decode(&body)
	if body["error"] != dataset.ErrNotLoaded.Error() {
		t.Errorf("error = %q", body["error"])
	}
}

func TestAPIEndpoints(t *testing.T) {
	_, r := setupTest(t, true)

	w := get(t, r, "/api/data/overview")
	if w.Code != http.StatusOK {
		t.Fatalf("overview: %d", w.Code)
	}
	var overview overviewResponse
	json.NewDecoder(w.Body).Decode(&overview)
	if overview.MarketOverview.TotalProducts != 2483 || len(overview.Countries) != 4 {
		t.Errorf("overview = %+v", overview)
	}

	w = get(t, r, "/api/data/flavours/all")
	var flavours panels.FlavourSummary
	json.NewDecoder(w.Body).Decode(&flavours)
	if flavours.Country != "All" || flavours.SharePct != 14 || flavours.TopFlavour != "Chicken" {
		t.Errorf("flavours = %+v", flavours)
	}

	w = get(t, r, "/api/data/pareto/UK/others")
	var pareto paretoResponse
	json.NewDecoder(w.Body).Decode(&pareto)
	if len(pareto.Points) != 2 || pareto.Points[1].CumPct != 100 || pareto.Max != 55 {
		t.Errorf("pareto = %+v", pareto)
	}

	w = get(t, r, "/api/data/weekly/Germany")
	var weekly weeklyResponse
	json.NewDecoder(w.Body).Decode(&weekly)
	if len(weekly.Weeks) != 2 || weekly.Period.RangeLabel != "DE: Jan 2023 - Jan 2024" {
		t.Errorf("weekly = %+v", weekly)
	}

	for _, target := range []string{
		"/api/data/flavours/Atlantis",
		"/api/data/pareto/Netherlands/samyang",
		"/api/data/weekly/Atlantis",
	} {
		if w := get(t, r, target); w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", target, w.Code)
		}
	}

	_, empty := setupTest(t, false)
	if w := get(t, empty, "/api/data/overview"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("overview without data: expected 503, got %d", w.Code)
	}
}

func TestStaticAssets(t *testing.T) {
	_, r := setupTest(t, false)

	w := get(t, r, "/static/dashboard.js")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "data-tip-title") {
		t.Errorf("dashboard.js: status %d", w.Code)
	}
	if w := get(t, r, "/static/missing.js"); w.Code != http.StatusNotFound {
		t.Errorf("missing asset: expected 404, got %d", w.Code)
	}
}

func TestExportRoutes(t *testing.T) {
	_, r := setupTest(t, true)

	w := get(t, r, "/export/marketintel.xlsx")
	if w.Code != http.StatusOK || !strings.Contains(w.Header().Get("Content-Type"), "spreadsheetml") {
		t.Errorf("workbook: status %d, type %q", w.Code, w.Header().Get("Content-Type"))
	}

	w = get(t, r, "/charts/seasonality.png?country=UK")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
		t.Errorf("seasonality image: status %d", w.Code)
	}

	for _, target := range []string{
		"/charts/pie.png",
		"/charts/seasonality.png?country=Netherlands",
		"/charts/pareto.png?country=Atlantis",
	} {
		if w := get(t, r, target); w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", target, w.Code)
		}
	}
}

func TestLiveReload(t *testing.T) {
	d, r := setupTest(t, true)
	srv := httptest.NewServer(r)
	defer srv.Close()
	defer d.Hub().Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing %s: %v", url, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for d.Hub().Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	d.Reload()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("reading message: %v", err)
	}
	if string(msg) != ReloadMessage {
		t.Errorf("message = %q, want %q", msg, ReloadMessage)
	}
}

func TestStaticPageOptions(t *testing.T) {
	renderer := newRenderer(t)

	var buf bytes.Buffer
	if err := renderer.Page(&buf, loadFixture(t), panels.DefaultFilter(), StaticPage("Export")); err != nil {
		t.Fatalf("Page: %v", err)
	}
	body, _ := io.ReadAll(&buf)
	for _, want := range []string{`data-mode="static"`, `data-fragments="fragments"`, `src="static/dashboard.js"`} {
		if !strings.Contains(string(body), want) {
			t.Errorf("static page does not contain %q", want)
		}
	}
	if strings.Contains(string(body), "data-live") {
		t.Error("static page must not open a websocket")
	}
}

package loadlog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestRecordAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()

	saved, err := store.Record(ctx, Entry{
		Reason:          ReasonStartup,
		Status:          StatusOK,
		InsightsSource:  "data/insights_enhanced.json",
		DashboardSource: "data/dashboard_data_v2.json",
		InsightsSHA:     "abc",
		Countries:       []string{"All", "UK"},
		Warnings:        2,
		Duration:        1500 * time.Microsecond,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected generated ID")
	}
	if saved.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}

	got, err := store.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Reason != ReasonStartup || got.Status != StatusOK {
		t.Errorf("reason/status = %s/%s", got.Reason, got.Status)
	}
	if len(got.Countries) != 2 || got.Countries[1] != "UK" {
		t.Errorf("countries = %v", got.Countries)
	}
	if got.Warnings != 2 || got.InsightsSHA != "abc" {
		t.Errorf("warnings/sha = %d/%q", got.Warnings, got.InsightsSHA)
	}
	if got.Duration != time.Millisecond {
		t.Errorf("duration = %v, want 1ms", got.Duration)
	}
	if !got.Timestamp.Equal(saved.Timestamp) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, saved.Timestamp)
	}

	if _, err := store.GetByID(ctx, "missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetByID(missing) = %v, want sql.ErrNoRows", err)
	}
}

func TestRecordRejectsUnknownReason(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Record(t.Context(), Entry{Reason: "cron", Status: StatusOK})
	if err == nil {
		t.Fatal("expected CHECK constraint failure")
	}
}

func TestListFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()
	base := time.Date(2024, 1, 28, 12, 0, 0, 0, time.UTC)

	seed := []Entry{
		{Reason: ReasonStartup, Status: StatusOK, Timestamp: base},
		{Reason: ReasonWatch, Status: StatusFailed, Timestamp: base.Add(time.Minute), Error: "decoding JSON"},
		{Reason: ReasonWatch, Status: StatusOK, Timestamp: base.Add(2 * time.Minute)},
		{Reason: ReasonBuild, Status: StatusOK, Timestamp: base.Add(3 * time.Minute)},
	}
	for _, e := range seed {
		if _, err := store.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	all, err := store.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 4 || all[0].Reason != ReasonBuild || all[3].Reason != ReasonStartup {
		t.Fatalf("expected newest first, got %v", reasons(all))
	}

	watch, _ := store.List(ctx, Filter{Reason: ReasonWatch})
	if len(watch) != 2 {
		t.Errorf("watch entries = %d, want 2", len(watch))
	}

	failed, _ := store.List(ctx, Filter{Status: StatusFailed})
	if len(failed) != 1 || failed[0].Error != "decoding JSON" {
		t.Errorf("failed entries = %+v", failed)
	}

	since := base.Add(90 * time.Second)
	recent, _ := store.List(ctx, Filter{Since: &since})
	if len(recent) != 2 {
		t.Errorf("entries since %v = %d, want 2", since, len(recent))
	}

	page, _ := store.List(ctx, Filter{Limit: 2, Offset: 1})
	if len(page) != 2 || page[0].Reason != ReasonWatch {
		t.Errorf("page = %v", reasons(page))
	}

	tail, _ := store.List(ctx, Filter{Offset: 3})
	if len(tail) != 1 || tail[0].Reason != ReasonStartup {
		t.Errorf("offset without limit = %v", reasons(tail))
	}

	latest, err := store.Latest(ctx)
	if err != nil || latest.Reason != ReasonBuild {
		t.Errorf("Latest = %v, %v", latest, err)
	}

	n, err := store.DeleteBefore(ctx, base.Add(2*time.Minute))
	if err != nil || n != 2 {
		t.Errorf("DeleteBefore = %d, %v; want 2", n, err)
	}
}

func TestLatestEmpty(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Latest(t.Context()); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Latest on empty store = %v", err)
	}
}

func TestSucceededAndFailed(t *testing.T) {
	snap := &dataset.Snapshot{
		Dashboard: &dataset.Dashboard{
			FlavourData: map[string][]dataset.FlavourRow{"All": nil, "UK": nil},
		},
		Sources:   dataset.Sources{Insights: "a.json", Dashboard: "b.json"},
		LoadedAt:  time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC),
		Checksums: map[string]string{"insights": "i", "dashboard": "d"},
	}
	issues := []dataset.Issue{{Severity: dataset.SeverityWarning, Path: "x", Message: "y"}}

	ok := Succeeded(ReasonWatch, snap, issues, time.Second)
	if ok.Status != StatusOK || ok.Warnings != 1 || ok.DashboardSHA != "d" {
		t.Errorf("Succeeded = %+v", ok)
	}
	if len(ok.Countries) != 2 || ok.Countries[0] != "All" {
		t.Errorf("countries = %v", ok.Countries)
	}

	bad := Failed(ReasonCheck, snap.Sources, errors.New("boom"), time.Second)
	if bad.Status != StatusFailed || bad.Error != "boom" || bad.InsightsSource != "a.json" {
		t.Errorf("Failed = %+v", bad)
	}
}

func TestRoutes(t *testing.T) {
	store := newTestStore(t)
	saved, err := store.Record(t.Context(), Entry{Reason: ReasonStartup, Status: StatusOK})
	if err != nil {
		t.Fatal(err)
	}
	store.Record(t.Context(), Entry{Reason: ReasonWatch, Status: StatusFailed, Error: "bad"})

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/loads/?status=failed", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var entries []Entry
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Error != "bad" {
		t.Errorf("filtered list = %+v", entries)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/loads/"+saved.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got Entry
	json.NewDecoder(rec.Body).Decode(&got)
	if got.ID != saved.ID {
		t.Errorf("got ID %q, want %q", got.ID, saved.ID)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/loads/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing id status = %d, want 404", rec.Code)
	}
}

func reasons(entries []Entry) []Reason {
	out := make([]Reason, len(entries))
	for i, e := range entries {
		out[i] = e.Reason
	}
	return out
}

func TestLoadRecordsAttempts(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()
	loader := dataset.NewLoader()

	good := dataset.SourcesIn("../../testdata/data", dataset.InsightsFile, dataset.DashboardFile)
	snap, issues, err := Load(ctx, loader, good, ReasonStartup, store, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap == nil || dataset.HasErrors(issues) {
		t.Fatalf("unexpected result: snap=%v issues=%v", snap, issues)
	}

	bad := dataset.SourcesIn(t.TempDir(), dataset.InsightsFile, dataset.DashboardFile)
	if _, _, err := Load(ctx, loader, bad, ReasonWatch, store, nil); err == nil {
		t.Fatal("expected error for missing files")
	}

	entries, err := store.List(ctx, Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	statuses := map[Status]Reason{}
	for _, e := range entries {
		statuses[e.Status] = e.Reason
	}
	if statuses[StatusOK] != ReasonStartup || statuses[StatusFailed] != ReasonWatch {
		t.Errorf("recorded = %v", statuses)
	}
	for _, e := range entries {
		if e.Status == StatusOK && (e.InsightsSHA == "" || e.Warnings != len(issues)) {
			t.Errorf("ok entry = %+v", e)
		}
	}

	if _, _, err := Load(ctx, loader, good, ReasonCheck, nil, nil); err != nil {
		t.Errorf("Load without a store: %v", err)
	}
}

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestMatches(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, []string{"*.json", "extra/**/*.yml"}, func(context.Context, []string) {}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	tests := []struct {
		path string
		want bool
	}{
		{"dashboard_data_v2.json", true},
		{filepath.Join(dir, "insights_enhanced.json"), true},
		{"notes.txt", false},
		{"nested/data.json", false},
		{"extra/a/b/c.yml", true},
	}
	for _, tt := range tests {
		if got := w.Matches(tt.path); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNewRejectsBadPattern(t *testing.T) {
	if _, err := New(t.TempDir(), []string{"[.json"}, nil, nil); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestDebouncedChange(t *testing.T) {
	dir := t.TempDir()

	var (
		mu    sync.Mutex
		calls [][]string
	)
	changed := make(chan struct{}, 4)
	w, err := New(dir, []string{"*.json"}, func(_ context.Context, paths []string) {
		mu.Lock()
		calls = append(calls, paths)
		mu.Unlock()
		changed <- struct{}{}
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.SetDebounce(50 * time.Millisecond)
	if err := w.Start(t.Context()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	target := filepath.Join(dir, "dashboard_data_v2.json")
	for i := range 3 {
		if err := os.WriteFile(target, []byte(`{"n":`+string(rune('0'+i))+`}`), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644)

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 {
		t.Fatalf("calls = %v, want one settled burst", calls)
	}
	if len(calls[0]) != 1 || calls[0][0] != target {
		t.Errorf("paths = %v, want [%s]", calls[0], target)
	}
}

func TestStopAfterFailedStart(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing"), []string{"*.json"}, func(context.Context, []string) {}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(t.Context()); err == nil {
		t.Fatal("expected error watching a missing directory")
	}

	stopped := make(chan struct{})
	go func() {
		w.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked after a failed Start")
	}
}

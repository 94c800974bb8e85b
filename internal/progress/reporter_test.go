package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Label: "Exporting site", Out: &buf}

	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "static/dashboard.css")
	r.Finish()

	want := []string{
		"Exporting site: 2 files",
		"[1/2] index.html",
		"[2/2] static/dashboard.css",
		"Exporting site: done",
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(got) != len(want) {
		t.Fatalf("lines = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("x").(*CIReporter); !ok {
		t.Error("expected a CIReporter when CI is set")
	}
}

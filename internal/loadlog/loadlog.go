// Package loadlog records every attempt to load the datasets.
package loadlog

import (
	"time"

	"github.com/abcnoodle/marketintel/internal/dataset"
)

// Reason identifies what triggered a load.
type Reason string

const (
	ReasonStartup Reason = "startup"
	ReasonWatch   Reason = "watch"
	ReasonBuild   Reason = "build"
	ReasonExport  Reason = "export"
	ReasonCheck   Reason = "check"
)

// Status is the outcome of a load.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Entry is a single load attempt.
type Entry struct {
	ID              string        `json:"id"`
	Timestamp       time.Time     `json:"timestamp"`
	Reason          Reason        `json:"reason"`
	Status          Status        `json:"status"`
	InsightsSource  string        `json:"insights_source"`
	DashboardSource string        `json:"dashboard_source"`
	InsightsSHA     string        `json:"insights_sha256,omitempty"`
	DashboardSHA    string        `json:"dashboard_sha256,omitempty"`
	Countries       []string      `json:"countries"`
	Warnings        int           `json:"warnings"`
	Error           string        `json:"error,omitempty"`
	Duration        time.Duration `json:"duration_ns"`
}

// Succeeded describes a successful load of snap.
func Succeeded(reason Reason, snap *dataset.Snapshot, issues []dataset.Issue, took time.Duration) Entry {
	return Entry{
		Timestamp:       snap.LoadedAt,
		Reason:          reason,
		Status:          StatusOK,
		InsightsSource:  snap.Sources.Insights,
		DashboardSource: snap.Sources.Dashboard,
		InsightsSHA:     snap.Checksums["insights"],
		DashboardSHA:    snap.Checksums["dashboard"],
		Countries:       snap.DataCountries(),
		Warnings:        len(issues),
		Duration:        took,
	}
}

// Failed describes a load of src that returned err.
func Failed(reason Reason, src dataset.Sources, err error, took time.Duration) Entry {
	return Entry{
		Timestamp:       time.Now().UTC(),
		Reason:          reason,
		Status:          StatusFailed,
		InsightsSource:  src.Insights,
		DashboardSource: src.Dashboard,
		Error:           err.Error(),
		Duration:        took,
	}
}

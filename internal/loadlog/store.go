package loadlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abcnoodle/marketintel/internal/db"
)

const timestampLayout = "2006-01-02 15:04:05.000"

// Store persists load entries.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts a new entry. An empty ID gets a UUID and a zero timestamp
// is set to now. The stored entry is returned.
func (s *Store) Record(ctx context.Context, entry Entry) (Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	entry.Timestamp = entry.Timestamp.UTC().Truncate(time.Millisecond)
	if entry.Countries == nil {
		entry.Countries = []string{}
	}

	countries, err := json.Marshal(entry.Countries)
	if err != nil {
		return Entry{}, fmt.Errorf("marshalling countries: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO dataset_loads (
			id, timestamp, reason, status, insights_source, dashboard_source,
			insights_sha256, dashboard_sha256, countries, warnings, error, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Timestamp.Format(timestampLayout),
		string(entry.Reason),
		string(entry.Status),
		entry.InsightsSource,
		entry.DashboardSource,
		entry.InsightsSHA,
		entry.DashboardSHA,
		string(countries),
		entry.Warnings,
		entry.Error,
		entry.Duration.Milliseconds(),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("inserting load entry: %w", err)
	}
	entry.Duration = entry.Duration.Truncate(time.Millisecond)
	return entry, nil
}

const selectColumns = `SELECT id, timestamp, reason, status, insights_source, dashboard_source,
	insights_sha256, dashboard_sha256, countries, warnings, error, duration_ms FROM dataset_loads`

// GetByID retrieves a single entry.
func (s *Store) GetByID(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id)
	return scanInto(row)
}

// Filter controls which entries List returns.
type Filter struct {
	Reason Reason
	Status Status
	Since  *time.Time
	Limit  int
	Offset int
}

// List returns entries matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter Filter) ([]Entry, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Reason != "" {
		clauses = append(clauses, "reason = ?")
		args = append(args, string(filter.Reason))
	}
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Since.UTC().Format(timestampLayout))
	}

	query := selectColumns
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC, rowid DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		if filter.Limit <= 0 {
			query += " LIMIT -1"
		}
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying load entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanInto(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Latest returns the most recent entry, or sql.ErrNoRows when there is none.
func (s *Store) Latest(ctx context.Context) (*Entry, error) {
	entries, err := s.List(ctx, Filter{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, sql.ErrNoRows
	}
	return &entries[0], nil
}

// DeleteBefore removes entries older than the given time and returns how
// many were deleted.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM dataset_loads WHERE timestamp < ?",
		before.UTC().Format(timestampLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old load entries: %w", err)
	}
	return res.RowsAffected()
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInto(sc scanner) (*Entry, error) {
	var (
		e                 Entry
		reason, status    string
		ts, countriesJSON string
		durationMS        int64
	)

	err := sc.Scan(
		&e.ID, &ts, &reason, &status, &e.InsightsSource, &e.DashboardSource,
		&e.InsightsSHA, &e.DashboardSHA, &countriesJSON, &e.Warnings, &e.Error, &durationMS,
	)
	if err != nil {
		return nil, err
	}

	e.Reason = Reason(reason)
	e.Status = Status(status)
	e.Duration = time.Duration(durationMS) * time.Millisecond

	if t, parseErr := time.Parse(timestampLayout, ts); parseErr == nil {
		e.Timestamp = t
	} else if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
		e.Timestamp = t
	}

	if err := json.Unmarshal([]byte(countriesJSON), &e.Countries); err != nil {
		e.Countries = nil
	}

	return &e, nil
}

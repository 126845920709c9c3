// Package store persists completed report runs to SQLite. Only the final
// count tables are stored; intermediate pipeline state never is.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/andrisbotar/factory-analysis/internal/report"
)

// Store wraps a SQLite database holding report runs.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and configures WAL mode.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "store: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "store: exec %s", pragma)
		}
	}
	return &Store{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS report_runs (
	id            TEXT PRIMARY KEY,
	source        TEXT NOT NULL,
	total_records INTEGER NOT NULL,
	top_project   TEXT NOT NULL,
	top_count     INTEGER NOT NULL,
	created_at    DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS report_counts (
	run_id TEXT NOT NULL REFERENCES report_runs(id),
	view   TEXT NOT NULL,
	key    TEXT NOT NULL,
	count  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_report_counts_run ON report_counts(run_id, view);
`

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "store: migrate")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// countView is the slice of a report a persisted view is read from.
type countView interface {
	Keys() []string
	Get(string) int
}

// SaveReport writes one completed run and its count tables in a single
// transaction, returning the new run ID.
func (s *Store) SaveReport(ctx context.Context, source string, rep *report.Report) (string, error) {
	id := uuid.New().String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", eris.Wrap(err, "store: begin tx")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO report_runs (id, source, total_records, top_project, top_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, source, rep.TotalRecords, rep.TopProject, rep.TopProjectCount, time.Now().UTC(),
	)
	if err != nil {
		return "", eris.Wrap(err, "store: insert run")
	}

	views := []struct {
		name  string
		table countView
	}{
		{"year", rep.ByYear},
		{"area", rep.ByArea},
		{"temporary", rep.ByTemporary},
		{"project", rep.ByProject},
	}
	for _, view := range views {
		for _, key := range view.table.Keys() {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO report_counts (run_id, view, key, count) VALUES (?, ?, ?, ?)`,
				id, view.name, key, view.table.Get(key),
			)
			if err != nil {
				return "", eris.Wrapf(err, "store: insert %s counts", view.name)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", eris.Wrap(err, "store: commit")
	}
	return id, nil
}

// Counts loads one persisted view of a run as a key->count map.
func (s *Store) Counts(ctx context.Context, runID, view string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, count FROM report_counts WHERE run_id = ? AND view = ?`,
		runID, view,
	)
	if err != nil {
		return nil, eris.Wrap(err, "store: query counts")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, eris.Wrap(err, "store: scan counts")
		}
		counts[key] = n
	}
	return counts, eris.Wrap(rows.Err(), "store: iterate counts")
}

package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mavwarf/iconkit/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path and creates
// the runs table.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp  TEXT    NOT NULL,
    root       TEXT    NOT NULL DEFAULT '',
    source     TEXT    NOT NULL DEFAULT '',
    status     TEXT    NOT NULL,
    files      INTEGER NOT NULL DEFAULT 0,
    bundle     TEXT    NOT NULL DEFAULT '',
    detail     TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Log(r Record) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (timestamp, root, source, status, files, bundle, detail)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Time.Format(time.RFC3339), r.Root, r.Source, r.Status, r.Files, r.Bundle, r.Detail,
	)
	return err
}

func (s *SQLiteStore) Entries(limit int) ([]Record, error) {
	query := `SELECT id, timestamp, root, source, status, files, bundle, detail FROM runs ORDER BY id`
	var args []any
	if limit > 0 {
		// newest `limit` rows, returned oldest first
		query = `SELECT * FROM (
			SELECT id, timestamp, root, source, status, files, bundle, detail
			FROM runs ORDER BY id DESC LIMIT ?
		) ORDER BY id`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var id int64
		var tsStr string
		var r Record
		if err := rows.Scan(&id, &tsStr, &r.Root, &r.Source, &r.Status, &r.Files, &r.Bundle, &r.Detail); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			continue
		}
		r.Time = ts
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) Clean(days int) (int, error) {
	if days <= 0 {
		return 0, nil
	}
	cutoff := DayCutoff(days)
	rows, err := s.db.Query(`SELECT id, timestamp FROM runs`)
	if err != nil {
		return 0, err
	}
	var stale []int64
	for rows.Next() {
		var id int64
		var tsStr string
		if err := rows.Scan(&id, &tsStr); err != nil {
			rows.Close()
			return 0, err
		}
		// RFC3339 strings with mixed offsets do not sort lexically, so
		// compare parsed times.
		if ts, err := time.Parse(time.RFC3339, tsStr); err == nil && ts.Before(cutoff) {
			stale = append(stale, id)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	for _, id := range stale {
		if _, err := tx.Exec(`DELETE FROM runs WHERE id = ?`, id); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(stale), nil
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM runs`)
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}

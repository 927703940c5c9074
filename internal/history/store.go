// Package history records one line per generation run so a project can see
// when its icons were last rebuilt and whether the bundle step ran.
package history

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/Mavwarf/iconkit/internal/config"
	"github.com/Mavwarf/iconkit/internal/paths"
)

// StatusOK marks a run that wrote every target.
const StatusOK = "ok"

// Record is one generation run.
type Record struct {
	Time   time.Time
	Root   string
	Source string
	Status string // StatusOK or a failure slug such as "source_missing"
	Files  int
	Bundle string // bundle outcome: "compiled", "skipped", "failed" or ""
	Detail string
}

// Store abstracts history storage: FileStore (flat log file) or
// SQLiteStore.
type Store interface {
	Log(r Record) error
	Entries(limit int) ([]Record, error) // oldest first, last `limit` runs, 0 = all
	Clean(days int) (int, error)         // remove runs older than days, return removed count
	Clear() error
	Path() string
	Close() error
}

// Open returns the store selected by kind inside dir, or nil when history
// is off.
func Open(kind, dir string) (Store, error) {
	switch kind {
	case config.HistoryFile:
		return NewFileStore(filepath.Join(dir, paths.HistoryLogName)), nil
	case config.HistorySQLite:
		return NewSQLiteStore(filepath.Join(dir, paths.HistoryDBName))
	case "", config.HistoryOff:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown history store %q", kind)
	}
}

// DayCutoff returns midnight (local time) of the day that is days-1 days
// before today, so days=1 means "today only".
func DayCutoff(days int) time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -(days - 1))
}

func tail(records []Record, limit int) []Record {
	if limit <= 0 || len(records) <= limit {
		return records
	}
	return records[len(records)-limit:]
}

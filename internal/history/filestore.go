package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mavwarf/iconkit/internal/paths"
)

// FileStore implements Store using a flat log file, one line per run.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore that reads and writes the given log file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// openLog opens (or creates) the log file for appending, creating the
// parent directory if needed.
func (f *FileStore) openLog() (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(f.path), paths.DirPerm); err != nil {
		return nil, err
	}
	return os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, paths.FilePerm)
}

func (f *FileStore) Log(r Record) error {
	file, err := f.openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = fmt.Fprintln(file, FormatLine(r))
	return err
}

func (f *FileStore) read() ([]Record, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return ParseRecords(string(data)), nil
}

func (f *FileStore) Entries(limit int) ([]Record, error) {
	records, err := f.read()
	if err != nil {
		return nil, err
	}
	return tail(records, limit), nil
}

func (f *FileStore) Clean(days int) (int, error) {
	if days <= 0 {
		return 0, nil
	}
	records, err := f.read()
	if err != nil || len(records) == 0 {
		return 0, err
	}

	cutoff := DayCutoff(days)
	var kept []string
	for _, r := range records {
		if !r.Time.Before(cutoff) {
			kept = append(kept, FormatLine(r))
		}
	}
	removed := len(records) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if len(kept) == 0 {
		_ = os.Remove(f.path)
		return removed, nil
	}
	if err := paths.AtomicWrite(f.path, []byte(strings.Join(kept, "\n")+"\n")); err != nil {
		return 0, err
	}
	return removed, nil
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Close() error { return nil }

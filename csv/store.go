// Package csv implements serieslog.Store on a headerless CSV file.
package csv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/serieslog"
)

var _ serieslog.Store = (*Store)(nil)

// Store persists records as rows of a CSV file with no header.
type Store struct {
	path string
}

// NewStore creates a Store for path. Relative paths are resolved against
// the working directory at construction time.
func NewStore(path string) (*Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w: %w", path, serieslog.ErrStorage, err)
	}
	return &Store{path: abs}, nil
}

// Path returns the absolute path of the CSV file.
func (s *Store) Path() string { return s.path }

// Ensure creates an empty file, including parent directories, if missing.
func (s *Store) Ensure() error {
	_, err := os.Stat(s.path)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return storageErr("stat", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return storageErr("create directories", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return storageErr("create file", err)
	}
	if err := f.Close(); err != nil {
		return storageErr("create file", err)
	}
	return nil
}

// ReadAll returns all rows in file order. A missing file is created first.
// Rows may have any number of fields, and bare quotes are read literally;
// only I/O failures are errors.
func (s *Store) ReadAll() ([]serieslog.Record, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, storageErr("open file", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	// Hand-edited rows may carry stray quotes; keep them as text.
	r.LazyQuotes = true
	var records []serieslog.Record
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, storageErr("read file", err)
		}
		records = append(records, serieslog.Record(row))
	}
	return records, nil
}

// WriteAll replaces the file content with records. The new content is
// written to a temporary file in the same directory and renamed over the
// original so a failed write never leaves a half-written log. The existing
// file's permissions are kept.
func (s *Store) WriteAll(records []serieslog.Record) error {
	data, err := encode(records)
	if err != nil {
		return storageErr("encode", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return storageErr("create directories", err)
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return storageErr("create temp file", err)
	}
	if err := writeTemp(tmp, data, mode); err != nil {
		os.Remove(tmp.Name()) // best-effort cleanup
		return storageErr("write temp file", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name()) // best-effort cleanup
		return storageErr("rename temp file", err)
	}
	return nil
}

func writeTemp(f *os.File, data []byte, mode os.FileMode) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Append adds one row at the end of the file.
func (s *Store) Append(record serieslog.Record) error {
	data, err := encode([]serieslog.Record{record})
	if err != nil {
		return storageErr("encode", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return storageErr("create directories", err)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return storageErr("open file", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return storageErr("append", err)
	}
	if err := f.Close(); err != nil {
		return storageErr("append", err)
	}
	return nil
}

// encode renders records with CRLF line endings, the dialect spreadsheet
// tools expect.
func encode(records []serieslog.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	for _, r := range records {
		if err := w.Write(r); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, serieslog.ErrStorage, err)
}

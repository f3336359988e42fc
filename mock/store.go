// Package mock provides test doubles for serieslog interfaces using function fields.
package mock

import "github.com/fwojciec/serieslog"

var _ serieslog.Store = (*Store)(nil)

// Store is a test double for serieslog.Store.
// Set the function fields for the methods you need.
type Store struct {
	EnsureFn   func() error
	ReadAllFn  func() ([]serieslog.Record, error)
	WriteAllFn func(records []serieslog.Record) error
	AppendFn   func(record serieslog.Record) error
	PathFn     func() string
}

// Ensure delegates to EnsureFn.
func (s *Store) Ensure() error {
	return s.EnsureFn()
}

// ReadAll delegates to ReadAllFn.
func (s *Store) ReadAll() ([]serieslog.Record, error) {
	return s.ReadAllFn()
}

// WriteAll delegates to WriteAllFn.
func (s *Store) WriteAll(records []serieslog.Record) error {
	return s.WriteAllFn(records)
}

// Append delegates to AppendFn.
func (s *Store) Append(record serieslog.Record) error {
	return s.AppendFn(record)
}

// Path delegates to PathFn.
func (s *Store) Path() string {
	return s.PathFn()
}

// MemStore is an in-memory serieslog.Store for tests that need real
// persistence semantics without touching the filesystem.
type MemStore struct {
	Records []serieslog.Record
	Ensured bool
}

var _ serieslog.Store = (*MemStore)(nil)

// Ensure marks the store as created.
func (s *MemStore) Ensure() error {
	s.Ensured = true
	return nil
}

// ReadAll returns a deep copy of Records.
func (s *MemStore) ReadAll() ([]serieslog.Record, error) {
	return clone(s.Records), nil
}

// WriteAll replaces Records with a deep copy of records.
func (s *MemStore) WriteAll(records []serieslog.Record) error {
	s.Records = clone(records)
	return nil
}

// Append adds a copy of record.
func (s *MemStore) Append(record serieslog.Record) error {
	s.Records = append(s.Records, append(serieslog.Record(nil), record...))
	return nil
}

// Path returns a fixed placeholder path.
func (s *MemStore) Path() string { return "mem://log.csv" }

func clone(records []serieslog.Record) []serieslog.Record {
	if records == nil {
		return nil
	}
	out := make([]serieslog.Record, len(records))
	for i, r := range records {
		out[i] = append(serieslog.Record(nil), r...)
	}
	return out
}

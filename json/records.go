// Package json exports session records as a versioned JSON document.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/serieslog"
)

// envelope is the v1 wire format for an exported log.
type envelope struct {
	Version    int         `json:"version"`
	Source     string      `json:"source"`
	ExportedAt time.Time   `json:"exported_at"`
	Sessions   []recordDTO `json:"sessions"`
}

type recordDTO struct {
	StartTime   string `json:"start_time"`
	StopTime    string `json:"stop_time"`
	SeriesCount *int   `json:"series_count"`
	Open        bool   `json:"open"`
	// Raw holds the original fields for rows that are not three columns wide.
	Raw []string `json:"raw,omitempty"`
}

// MarshalRecords serializes records to JSON in v1 envelope format.
// A series count that does not parse is exported as null.
func MarshalRecords(source string, exportedAt time.Time, records []serieslog.Record) ([]byte, error) {
	env := envelope{
		Version:    1,
		Source:     source,
		ExportedAt: exportedAt,
		Sessions:   make([]recordDTO, len(records)),
	}
	for i, r := range records {
		dto := recordDTO{
			StartTime: r.StartTime(),
			StopTime:  r.StopTime(),
			Open:      r.Open(),
		}
		if r.StopTime() != "" {
			if _, n, err := serieslog.ParseSeriesCount(r.SeriesCount()); err == nil {
				dto.SeriesCount = &n
			}
		}
		if len(r) != serieslog.NumColumns {
			dto.Raw = append([]string{}, r...)
		}
		env.Sessions[i] = dto
	}
	return json.MarshalIndent(env, "", "  ")
}

// Save writes the export to path, creating parent directories as needed.
func Save(path, source string, exportedAt time.Time, records []serieslog.Record) error {
	data, err := MarshalRecords(source, exportedAt, records)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

package serieslog

import "time"

// TimeLayout is the timestamp format used for start and stop times.
// Local time, second resolution, readable by spreadsheets.
const TimeLayout = "2006-01-02 15:04:05"

// Column positions within a Record.
const (
	ColStartTime = iota
	ColStopTime
	ColSeriesCount
	NumColumns
)

// Record is one persisted session row: start_time, stop_time, series_count.
// It is kept as the raw field slice so rows with an unexpected number of
// fields survive a read/write cycle unchanged.
type Record []string

// NewRecord creates a well-formed three-column record.
func NewRecord(start, stop, series string) Record {
	return Record{start, stop, series}
}

// StartTime returns the start_time field, or "" if absent.
func (r Record) StartTime() string { return r.field(ColStartTime) }

// StopTime returns the stop_time field, or "" if absent.
func (r Record) StopTime() string { return r.field(ColStopTime) }

// SeriesCount returns the series_count field, or "" if absent.
func (r Record) SeriesCount() string { return r.field(ColSeriesCount) }

func (r Record) field(i int) string {
	if i < len(r) {
		return r[i]
	}
	return ""
}

// Open reports whether the record is an unterminated session. Rows with
// fewer than two fields are never open.
func (r Record) Open() bool {
	return len(r) >= 2 && r[ColStartTime] != "" && r[ColStopTime] == ""
}

// Padded returns a copy of r extended with empty fields to at least
// NumColumns fields.
func (r Record) Padded() Record {
	out := make(Record, max(len(r), NumColumns))
	copy(out, r)
	return out
}

// Duration returns stop minus start for a closed record whose timestamps
// parse in the given location.
func (r Record) Duration(loc *time.Location) (time.Duration, bool) {
	if r.Open() || r.StopTime() == "" {
		return 0, false
	}
	start, err := time.ParseInLocation(TimeLayout, r.StartTime(), loc)
	if err != nil {
		return 0, false
	}
	stop, err := time.ParseInLocation(TimeLayout, r.StopTime(), loc)
	if err != nil {
		return 0, false
	}
	return stop.Sub(start), true
}

// FormatTime formats t with TimeLayout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// FindOpenIndex returns the index of the last record if it is open, or -1.
// Earlier rows are never examined.
func FindOpenIndex(records []Record) int {
	if len(records) == 0 {
		return -1
	}
	last := len(records) - 1
	if records[last].Open() {
		return last
	}
	return -1
}

// RemoveIndex returns a copy of records without the element at i.
func RemoveIndex(records []Record, i int) []Record {
	out := make([]Record, 0, len(records)-1)
	out = append(out, records[:i]...)
	return append(out, records[i+1:]...)
}

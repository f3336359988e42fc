package serieslog

import (
	"strconv"
	"time"
)

// Summary aggregates a set of records.
type Summary struct {
	Sessions int           // all rows
	Closed   int           // rows with a stop time and a valid series count
	Open     bool          // last row is open
	Series   int           // total series across closed rows
	Duration time.Duration // total time across closed rows with parseable timestamps
}

// Summarize totals records. Rows whose series count or timestamps do not
// parse are counted as sessions but contribute nothing else.
func Summarize(records []Record, loc *time.Location) Summary {
	s := Summary{
		Sessions: len(records),
		Open:     FindOpenIndex(records) >= 0,
	}
	for _, r := range records {
		if r.StopTime() == "" {
			continue
		}
		n, err := strconv.Atoi(r.SeriesCount())
		if err != nil || n < 0 {
			continue
		}
		s.Closed++
		s.Series += n
		if d, ok := r.Duration(loc); ok {
			s.Duration += d
		}
	}
	return s
}

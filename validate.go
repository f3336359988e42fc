package serieslog

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSeriesCount validates the number-of-series input. Surrounding
// whitespace is ignored; the rest must be ASCII digits that fit an int.
// It returns the trimmed text as it will be stored and its value.
func ParseSeriesCount(input string) (string, int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", 0, fmt.Errorf("number of series is required: %w", ErrValidation)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return "", 0, fmt.Errorf("number of series must be a non-negative integer, got %q: %w", s, ErrValidation)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return "", 0, fmt.Errorf("number of series out of range, got %q: %w", s, ErrValidation)
	}
	return s, n, nil
}

package serieslog

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates user input failed validation.
	ErrValidation = errors.New("validation error")

	// ErrStorage indicates the backing file could not be read or written.
	ErrStorage = errors.New("storage error")

	// ErrNoSession indicates Stop found no record to close.
	ErrNoSession = errors.New("no running session found")
)

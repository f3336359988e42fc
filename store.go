package serieslog

// Store persists session records in file order.
type Store interface {
	// Ensure creates an empty backing file, including parent directories,
	// if it does not exist. It is idempotent.
	Ensure() error

	// ReadAll returns every record in file order.
	ReadAll() ([]Record, error)

	// WriteAll replaces the entire content with records.
	WriteAll(records []Record) error

	// Append adds one record to the end without rewriting earlier rows.
	Append(record Record) error

	// Path returns the resolved location of the backing file.
	Path() string
}

package serieslog

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	Info    int `yaml:"info"`    // Neutral messages
	Success int `yaml:"success"` // Success messages, running indicator
	Warning int `yaml:"warning"` // Resume prompt, warnings
	Error   int `yaml:"error"`   // Error messages
	Muted   int `yaml:"muted"`   // Idle indicator, hints, file path
	Accent  int `yaml:"accent"`  // Title, headings
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Info:    7,
		Success: 2,
		Warning: 3,
		Error:   1,
		Muted:   8,
		Accent:  5,
	}
}

package serieslog

// DefaultFile is the log file used when none is configured, resolved
// against the working directory.
const DefaultFile = "log.csv"

// Config holds user settings.
type Config struct {
	File  string `yaml:"file"`
	Theme Theme  `yaml:"theme"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		File:  DefaultFile,
		Theme: DefaultTheme(),
	}
}

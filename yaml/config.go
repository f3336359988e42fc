// Package yaml loads serieslog configuration from YAML files.
package yaml

import (
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/serieslog"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".serieslog.yaml"

// Load reads the config file at path over serieslog.DefaultConfig. A missing
// file yields the defaults. Fields absent from the file keep their default
// values.
func Load(path string) (serieslog.Config, error) {
	cfg := serieslog.DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		return cfg, nil
	default:
		return serieslog.Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return serieslog.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.File == "" {
		cfg.File = serieslog.DefaultFile
	}
	return cfg, nil
}

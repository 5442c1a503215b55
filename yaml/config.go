// Package yaml loads the corpus source list from a YAML file.
package yaml

import (
	"fmt"
	"os"

	"github.com/fwojciec/corpus"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the source list lives relative to the
// working directory.
const DefaultConfigPath = "data/sources.yml"

// LoadConfig reads and parses the source list at path.
// Absent and empty sections are nil; field values are not validated here.
func LoadConfig(path string) (*corpus.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses a YAML source list.
func ParseConfig(data []byte) (*corpus.Config, error) {
	var cfg corpus.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, corpus.Errorf(corpus.EINVALID, "failed to parse YAML: %v", err)
	}
	if cfg.Quran != nil && cfg.Quran.IsZero() {
		cfg.Quran = nil
	}
	if cfg.Sunnah != nil && cfg.Sunnah.IsZero() {
		cfg.Sunnah = nil
	}
	return &cfg, nil
}

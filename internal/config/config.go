// Package config loads optional CLI defaults from a YAML file, layered
// under explicit flags the way the teacher's CLI layers flags over
// defaults (cli/main.go's cobra flags each carry their own zero-value
// default; this package supplies a file-based default one layer further
// out).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults holds the subset of CLI flags a config file may pre-set.
type Defaults struct {
	Samples int    `yaml:"samples"`
	Skip    int    `yaml:"skip"`
	Driver  string `yaml:"driver"`
}

// Load reads and parses a YAML defaults file. A missing file is not an
// error — the caller should treat it as "no overrides" — but a malformed
// one is, since the user clearly intended to supply configuration.
func Load(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Defaults{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &d, nil
}

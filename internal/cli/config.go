// Package cli implements the tracediff command logic: loading trace
// documents from JSON files, running the comparison or reconstruction, and
// rendering the result for a terminal.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is probed when the user does not pass --config.
const DefaultConfigPath = "tracediff.yaml"

// Config is the optional CLI configuration file.
type Config struct {
	// SensitiveKeys extends the built-in masking list.
	SensitiveKeys []string `yaml:"sensitive_keys"`
	// PreviewLength caps request previews in summaries (default 50).
	PreviewLength int `yaml:"preview_length"`
	Render        RenderConfig `yaml:"render"`
}

// RenderConfig controls terminal output.
type RenderConfig struct {
	// Style is "auto" (styled markdown when the terminal supports color) or
	// "plain" (raw markdown). Unknown values fall back to auto.
	Style string `yaml:"style"`
}

// LoadConfig reads a YAML config file. A missing file at the default path is
// not an error: the zero Config is returned. A missing file at an explicit
// path is.
func LoadConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

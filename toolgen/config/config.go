package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

// Config carries defaults for repeated invocations (endpoint, headers,
// dialect, service allowlist) and the server options used by serve mode.
type Config struct {
	URL           string             `yaml:"url,omitempty" json:"url,omitempty"`
	Headers       map[string]string  `yaml:"headers,omitempty" json:"headers,omitempty"`
	Format        string             `yaml:"format,omitempty" json:"format,omitempty"`
	OnlyMutations bool               `yaml:"onlyMutations,omitempty" json:"onlyMutations,omitempty"`
	Services      []string           `yaml:"services,omitempty" json:"services,omitempty"`
	Server        *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return &cfg, nil
}

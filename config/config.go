package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Filters FilterConfig `json:"filters" yaml:"filters"`
	Git     GitConfig    `json:"git" yaml:"git"`
	Output  OutputConfig `json:"output" yaml:"output"`
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Exclude []string `json:"exclude" yaml:"exclude"` // Doublestar globs ignored under the watch path
}

// GitConfig selects how changed paths are listed.
type GitConfig struct {
	Backend string `json:"backend" yaml:"backend"` // "cli" (default) or "go-git"
}

// OutputConfig controls how the result is published.
type OutputConfig struct {
	Name   string `json:"name" yaml:"name"`     // Default: "changed"
	Format string `json:"format" yaml:"format"` // Default: "github"
}

// DefaultFileNames are searched, in order, when no config path is given.
var DefaultFileNames = []string{".pathchanged.json", ".pathchanged.yaml", ".pathchanged.yml"}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Filters: FilterConfig{
			Exclude: []string{},
		},
		Git: GitConfig{
			Backend: "cli",
		},
		Output: OutputConfig{
			Name:   "changed",
			Format: "github",
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
// With an empty path the default file names are tried in dir, then in the
// user's home directory.
func LoadConfig(path, dir string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = findConfigFile(dir)
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, err
	}

	if err := unmarshalConfig(path, data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

func findConfigFile(dir string) string {
	var candidates []string
	for _, name := range DefaultFileNames {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		for _, name := range DefaultFileNames {
			candidates = append(candidates, filepath.Join(home, name))
		}
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func unmarshalConfig(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return json.Unmarshal(data, cfg)
	}
}

// SaveConfig saves configuration to a file, as YAML or JSON by extension.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

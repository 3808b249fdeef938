// Package config loads datefmt settings from an optional TOML or YAML file
// and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPattern is used when neither the config file nor the environment sets one
	DefaultPattern = "YYYY-MM-DD"

	EnvPattern = "DATEFMT_PATTERN"
	EnvConfig  = "DATEFMT_CONFIG"
)

// candidateFiles are tried in order inside the config directory
var candidateFiles = []string{"config.toml", "config.yaml", "config.yml"}

// Config holds the complete datefmt configuration
type Config struct {
	DefaultPattern string            `toml:"default_pattern" yaml:"default_pattern"`
	Presets        map[string]string `toml:"presets" yaml:"presets"`

	// Path is the file the config was read from, empty when none was found
	Path string `toml:"-" yaml:"-"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		DefaultPattern: DefaultPattern,
		Presets:        map[string]string{},
	}
}

// Load reads configuration from path, or from DATEFMT_CONFIG, or from the
// first config file found in Dir(). A missing default file is not an error;
// a missing explicit path is. DATEFMT_PATTERN overrides default_pattern.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		if env := os.Getenv(EnvConfig); env != "" {
			path = env
			explicit = true
		}
	}

	if !explicit {
		path = findConfigFile(Dir())
	}

	cfg := Default()
	if path != "" {
		loaded, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if env := strings.TrimSpace(os.Getenv(EnvPattern)); env != "" {
		cfg.DefaultPattern = env
	}

	return cfg, nil
}

func findConfigFile(dir string) string {
	for _, name := range candidateFiles {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func loadFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(raw), cfg); err != nil {
			return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported config format (expected .toml, .yaml or .yml)", path)
	}

	if strings.TrimSpace(cfg.DefaultPattern) == "" {
		cfg.DefaultPattern = DefaultPattern
	}
	if cfg.Presets == nil {
		cfg.Presets = map[string]string{}
	}
	for name, pattern := range cfg.Presets {
		if strings.TrimSpace(name) == "" || pattern == "" {
			return nil, fmt.Errorf("%s: preset %q must have a name and a pattern", path, name)
		}
	}

	cfg.Path = path
	return cfg, nil
}

// Dir returns the XDG-compliant config directory for datefmt
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "datefmt")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "datefmt")
}

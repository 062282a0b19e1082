package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config captures the settings required to reach one appliance. Values are
// resolved in order: defaults, config file, environment, then command-line
// flags (applied by the caller).
type Config struct {
	Host     string        `yaml:"host"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	Interval time.Duration `yaml:"interval"`
	Insecure bool          `yaml:"insecure"`
}

// Load initialises Config from an optional YAML file plus environment
// overrides. An empty path falls back to $F5MON_CONFIG; no path at all is
// fine when the environment or flags supply the connection details.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("F5MON_CONFIG")
	}

	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// Validate reports the first missing required field.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Username == "" {
		return fmt.Errorf("username is required")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		Interval: 30 * time.Second,
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("F5MON_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("F5MON_USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv("F5MON_PASSWORD"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("F5MON_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Interval = d
		}
	}
	if v := os.Getenv("F5MON_INSECURE"); v != "" {
		cfg.Insecure = strings.EqualFold(v, "true") || v == "1"
	}
}

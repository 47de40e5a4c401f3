package pool

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes a Pool's construction-time parameters so they can be
// loaded from and saved to a YAML file instead of hardcoded at the call
// site.
type Config struct {
	Name           string        `yaml:"name"`
	ThreadCount    int           `yaml:"threadCount"`
	QueueNames     []string      `yaml:"queueNames,omitempty"`
	PauseWarnAfter time.Duration `yaml:"pauseWarnAfter,omitempty"`
}

// LoadYAML reads and parses a Config from the YAML file at path.
func LoadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pool: read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("pool: parse config: %w", err)
	}
	return &cfg, nil
}

// SaveYAML writes cfg to path as YAML, creating or truncating the file
// with owner-only permissions.
func SaveYAML(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("pool: marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("pool: write config: %w", err)
	}
	return nil
}

// NewFromConfig constructs a Pool from cfg, applying opts after the
// config-derived options. QueueNames is informational only here — it
// documents the queues the caller intends to register via NewQueue, since
// Config carries no Hooks; the queues themselves must still be created by
// the caller.
func NewFromConfig(cfg *Config, opts ...Option) *Pool {
	allOpts := opts
	if cfg.PauseWarnAfter > 0 {
		allOpts = append([]Option{WithPauseWarnAfter(cfg.PauseWarnAfter)}, opts...)
	}
	return New(cfg.Name, cfg.ThreadCount, allOpts...)
}

package pool

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	ipool "github.com/takuyaohta/wqpool/internal/pool"
)

// New constructs a pool with the given name and fixed thread count. See
// internal/pool.New for details.
func New(name string, threadCount int, opts ...Option) *Pool {
	return ipool.New(name, threadCount, opts...)
}

// NewQueue registers a new named queue against p and returns it. See
// internal/pool.NewQueue for details.
func NewQueue[T any](p *Pool, name string, hooks Hooks[T]) *Queue[T] {
	return ipool.NewQueue(p, name, hooks)
}

// NewFromConfig constructs a Pool from cfg, applying opts after any
// config-derived options.
func NewFromConfig(cfg *Config, opts ...Option) *Pool {
	return ipool.NewFromConfig(cfg, opts...)
}

// LoadYAML reads and parses a Config from the YAML file at path.
func LoadYAML(path string) (*Config, error) {
	return ipool.LoadYAML(path)
}

// SaveYAML writes cfg to path as YAML.
func SaveYAML(path string, cfg *Config) error {
	return ipool.SaveYAML(path, cfg)
}

// WithLogger sets the *slog.Logger the pool uses for lifecycle and
// scheduling events.
func WithLogger(logger *slog.Logger) Option {
	return ipool.WithLogger(logger)
}

// WithMetrics enables Prometheus instrumentation against reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return ipool.WithMetrics(reg)
}

// WithPauseWarnAfter logs a warning if a call to Pause has not observed
// quiescence within d.
func WithPauseWarnAfter(d time.Duration) Option {
	return ipool.WithPauseWarnAfter(d)
}

package wqpool

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/takuyaohta/wqpool/pool"
)

// Pool is a fixed-size set of worker goroutines draining a dynamic set of
// named work queues in round-robin order.
type Pool = pool.Pool

// Option configures optional Pool behavior at construction time.
type Option = pool.Option

// Queue is one named work queue registered against a Pool.
type Queue[T any] = pool.Queue[T]

// Hooks is the capability set a producer supplies to plug a concrete data
// structure into a Queue.
type Hooks[T any] = pool.Hooks[T]

// MisuseError is panicked when a caller violates the pool's lifecycle
// contract.
type MisuseError = pool.MisuseError

// Config describes a Pool's construction-time parameters for loading from
// or saving to YAML.
type Config = pool.Config

// New constructs a pool with the given name and fixed thread count.
func New(name string, threadCount int, opts ...Option) *Pool {
	return pool.New(name, threadCount, opts...)
}

// NewQueue registers a new named queue against p and returns it.
func NewQueue[T any](p *Pool, name string, hooks Hooks[T]) *Queue[T] {
	return pool.NewQueue(p, name, hooks)
}

// NewFromConfig constructs a Pool from cfg, applying opts after any
// config-derived options.
func NewFromConfig(cfg *Config, opts ...Option) *Pool {
	return pool.NewFromConfig(cfg, opts...)
}

// LoadYAML reads and parses a Config from the YAML file at path.
func LoadYAML(path string) (*Config, error) {
	return pool.LoadYAML(path)
}

// SaveYAML writes cfg to path as YAML.
func SaveYAML(path string, cfg *Config) error {
	return pool.SaveYAML(path, cfg)
}

// WithLogger sets the *slog.Logger the pool uses for lifecycle and
// scheduling events.
func WithLogger(logger *slog.Logger) Option {
	return pool.WithLogger(logger)
}

// WithMetrics enables Prometheus instrumentation against reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return pool.WithMetrics(reg)
}

// WithPauseWarnAfter logs a warning if a call to Pause has not observed
// quiescence within d.
func WithPauseWarnAfter(d time.Duration) Option {
	return pool.WithPauseWarnAfter(d)
}

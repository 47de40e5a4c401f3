// Package pool re-exports the multi-queue worker thread pool engine from
// internal/pool at the module's root, so it can be imported without the
// internal/ path while the engine itself stays free to change shape
// without breaking callers who only use these aliases.
package pool

import (
	ipool "github.com/takuyaohta/wqpool/internal/pool"
)

// Pool is a fixed-size set of worker goroutines draining a dynamic set of
// named work queues in round-robin order. See internal/pool's package doc
// for the full usage guide.
type Pool = ipool.Pool

// Option configures optional Pool behavior at construction time.
type Option = ipool.Option

// Queue is one named work queue registered against a Pool.
type Queue[T any] = ipool.Queue[T]

// Hooks is the capability set a producer supplies to plug a concrete data
// structure into a Queue.
type Hooks[T any] = ipool.Hooks[T]

// MisuseError is panicked when a caller violates the pool's lifecycle
// contract.
type MisuseError = ipool.MisuseError

// Config describes a Pool's construction-time parameters for loading from
// or saving to YAML.
type Config = ipool.Config

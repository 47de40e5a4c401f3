package pool

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// queueHandle is the type-erased capability set the pool schedules over.
// A *Queue[T] satisfies this for any T, since none of these methods
// mention T. tryProcess and clearLocked are invoked with the pool's lock
// held; queueName and queueID only read fields fixed at construction and
// are also called without it.
type queueHandle interface {
	queueName() string
	queueID() uuid.UUID
	tryProcess() bool
	clearLocked()
}

// Pool is a fixed-size set of worker goroutines draining a dynamic,
// ordered list of named work queues in round-robin order. See the
// package doc for an overview and the Queue and Hooks types for how
// work queues plug in.
//
// The zero value is not usable; construct with New.
type Pool struct {
	name string
	id   uuid.UUID

	mu        sync.Mutex
	workAvail *sync.Cond
	drain     *sync.Cond

	stop       bool
	pause      bool
	queues     []queueHandle
	cursor     int
	processing int

	started bool
	workers []*worker
	group   *errgroup.Group

	logger         *slog.Logger
	metrics        *metricsSet
	pauseWarnAfter time.Duration
}

// Option configures optional behavior of a Pool at construction time.
type Option func(*Pool)

// WithLogger sets the *slog.Logger the pool uses for lifecycle and
// scheduling events. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pool) {
		p.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation, registering a small
// set of gauges and counters against reg under the "pool" constant
// label set to the pool's name. If this option is never supplied the
// pool collects no metrics and has no Prometheus dependency at runtime.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(p *Pool) {
		p.metrics = newMetricsSet(reg, p.name)
	}
}

// WithPauseWarnAfter logs a warning if a call to Pause has not observed
// quiescence within d. It does not change Pause's blocking behavior,
// only adds an operational log line for an unexpectedly slow drain.
func WithPauseWarnAfter(d time.Duration) Option {
	return func(p *Pool) {
		p.pauseWarnAfter = d
	}
}

// New constructs a pool with the given name and a fixed thread count.
// It creates threadCount worker goroutine descriptors but does not
// start them; call Start to do that. Passing opts customizes logging,
// metrics, or the pause watchdog.
func New(name string, threadCount int, opts ...Option) *Pool {
	p := &Pool{
		name:   name,
		id:     uuid.New(),
		logger: slog.Default(),
	}
	p.workAvail = sync.NewCond(&p.mu)
	p.drain = sync.NewCond(&p.mu)

	for _, opt := range opts {
		opt(p)
	}

	for i := 0; i < threadCount; i++ {
		p.workers = append(p.workers, &worker{pool: p})
	}

	return p
}

// SetThreadCount grows the worker set to n workers. It only ever adds
// workers — calling it with n less than or equal to the current count
// is a no-op, mirroring the pool's C++ ancestor, whose set_num_threads
// only ever grows the thread set. It is valid only before Start; calling
// it after Start is a programmer error.
func (p *Pool) SetThreadCount(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		misuse("SetThreadCount", "called after Start")
	}

	for len(p.workers) < n {
		p.workers = append(p.workers, &worker{pool: p})
	}
}

// Start spawns every worker goroutine. Each begins the scheduling loop
// described in the package doc. Calling Start twice is a programmer
// error.
func (p *Pool) Start() {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		misuse("Start", "pool already started")
	}
	p.started = true
	workers := append([]*worker(nil), p.workers...)
	p.mu.Unlock()

	p.group = new(errgroup.Group)
	for _, w := range workers {
		w := w
		p.group.Go(func() error {
			w.run()
			return nil
		})
	}

	p.logger.Info("pool started", "pool", p.name, "id", p.id, "workers", len(workers))
}

// Kick signals the work-available condition once, waking at most one
// idle worker. Use this when work became visible through a path other
// than a Queue's Enqueue — for example, bulk-loading items directly
// into a queue's backing storage.
func (p *Pool) Kick() {
	p.mu.Lock()
	p.workAvail.Signal()
	p.mu.Unlock()
}

// kickLocked is Kick's non-locking sibling for callers that already
// hold p.mu — mirroring the locking/non-locking queue/_kick split of
// this pool's C++ ancestor.
func (p *Pool) kickLocked() {
	p.workAvail.Signal()
}

// Pause sets the pool's pause flag and blocks until no worker is
// executing a process hook, and none will start one until Unpause is
// called. Calling Pause while already paused is a programmer error.
func (p *Pool) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pause {
		misuse("Pause", "pool is already paused")
	}
	p.pause = true

	var timer *time.Timer
	if p.pauseWarnAfter > 0 {
		timer = time.AfterFunc(p.pauseWarnAfter, func() {
			p.logger.Warn("pause has not drained yet",
				"pool", p.name, "after", p.pauseWarnAfter)
		})
		defer timer.Stop()
	}

	for p.processing > 0 {
		p.drain.Wait()
	}

	if p.metrics != nil {
		p.metrics.pauses.Inc()
	}
}

// PauseNew sets the pool's pause flag and returns immediately. Any
// process hooks already in flight continue to completion; no new ones
// start until Unpause is called. Calling PauseNew while already paused
// is a programmer error.
func (p *Pool) PauseNew() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pause {
		misuse("PauseNew", "pool is already paused")
	}
	p.pause = true

	if p.metrics != nil {
		p.metrics.pauses.Inc()
	}
}

// Unpause clears the pool's pause flag and wakes every worker so
// scheduling resumes. Calling Unpause when the pool is not paused is a
// programmer error.
func (p *Pool) Unpause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.pause {
		misuse("Unpause", "pool is not paused")
	}
	p.pause = false
	p.workAvail.Broadcast()

	if p.metrics != nil {
		p.metrics.unpauses.Inc()
	}
}

// Stop sets the pool's stop flag, wakes every worker, and waits for all
// of them to exit. Stop is terminal: once it returns, the pool cannot be
// restarted. If clearAfter is true, every registered queue's Clear hook
// is invoked once all workers have exited.
//
// The pool's C++ ancestor wakes workers with a single condition signal
// on stop; with a fixed set of N worker goroutines that can all be
// parked on the same condition simultaneously, a single signal only
// guarantees one of them wakes. This implementation broadcasts instead,
// so Stop terminates promptly regardless of thread count — see
// DESIGN.md for the reasoning.
func (p *Pool) Stop(clearAfter bool) {
	p.mu.Lock()
	p.stop = true
	p.workAvail.Broadcast()
	p.mu.Unlock()

	if p.group != nil {
		_ = p.group.Wait()
	}

	if clearAfter {
		p.mu.Lock()
		for _, q := range p.queues {
			q.clearLocked()
		}
		p.mu.Unlock()
	}

	if p.metrics != nil {
		p.metrics.stops.Inc()
	}
	p.logger.Info("pool stopped", "pool", p.name, "id", p.id, "cleared", clearAfter)
}

// register appends wq to the pool's ordered queue list. Called by
// NewQueue; producers never call this directly.
func (p *Pool) register(wq queueHandle) {
	p.mu.Lock()
	p.queues = append(p.queues, wq)
	p.mu.Unlock()
	p.logger.Debug("queue registered",
		"pool", p.name, "queue", wq.queueName(), "queue_id", wq.queueID())
}

// deregister removes wq from the pool's ordered queue list, shifting
// the suffix left by one to preserve order. No-op if wq is not
// registered. Called by Queue.Close; owners must ensure no worker is
// mid-hook on the queue being removed — see Queue.Close and
// spec.md §4.4.
func (p *Pool) deregister(wq queueHandle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, cur := range p.queues {
		if cur == wq {
			copy(p.queues[i:], p.queues[i+1:])
			p.queues = p.queues[:len(p.queues)-1]
			if len(p.queues) > 0 {
				p.cursor %= len(p.queues)
			} else {
				p.cursor = 0
			}
			p.logger.Debug("queue deregistered",
				"pool", p.name, "queue", wq.queueName(), "queue_id", wq.queueID())
			return
		}
	}
}

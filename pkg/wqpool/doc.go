// Package wqpool provides a multi-queue worker thread pool: a fixed set of
// worker goroutines that cooperatively drain a dynamic set of named work
// queues in round-robin order.
//
// It is a thin, doc-heavy convenience layer over
// github.com/takuyaohta/wqpool/pool, which is itself a re-export of the
// engine in internal/pool. Reach for this package when you want a single
// import and a config-driven constructor; reach for pool directly when
// you want the bare types.
//
// # Overview
//
// A Pool owns a fixed number of worker goroutines and a dynamic list of
// named Queue values. Each Queue wraps a Hooks value supplying five
// required operations — Enqueue, SelectiveDequeue, Next, Process and
// Clear — plus an optional Len, so any
// backing data structure (slice, ring buffer, priority heap) can plug into
// the pool's scheduling loop without the pool knowing its shape.
//
// # Basic usage
//
//	p := wqpool.New("ingest", 4)
//
//	var pending []Job
//	q := wqpool.NewQueue(p, "jobs", wqpool.Hooks[Job]{
//		Enqueue: func(j Job) bool {
//			pending = append(pending, j)
//			return true
//		},
//		SelectiveDequeue: func(j Job) {
//			for i, cur := range pending {
//				if cur.ID == j.ID {
//					pending = append(pending[:i], pending[i+1:]...)
//					return
//				}
//			}
//		},
//		Next: func() (Job, bool) {
//			if len(pending) == 0 {
//				return Job{}, false
//			}
//			j := pending[0]
//			pending = pending[1:]
//			return j, true
//		},
//		Process: func(j Job) { handle(j) },
//		Clear:   func() { pending = nil },
//	})
//
//	p.Start()
//	q.Enqueue(Job{ID: 1})
//
//	// Later, drain in-flight work and stop for good:
//	p.Stop(true)
//
// # Config-driven construction
//
// NewFromConfig builds a Pool from a Config loaded with LoadYAML, useful
// when the thread count and pause-warning threshold are deployment
// parameters rather than compile-time constants:
//
//	cfg, err := wqpool.LoadYAML("pool.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := wqpool.NewFromConfig(cfg, wqpool.WithMetrics(prometheus.DefaultRegisterer))
//
// # Pause and drain
//
// Pause blocks until every worker currently inside a Process hook has
// returned, and guarantees none will start a new one until Unpause is
// called:
//
//	p.Pause()
//	snapshot := captureState()
//	p.Unpause()
//
// PauseNew is the non-blocking sibling: it stops new hooks from starting
// but returns immediately.
package wqpool

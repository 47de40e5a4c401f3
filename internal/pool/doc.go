// Package pool implements a multi-queue worker thread pool: a fixed set
// of worker goroutines that cooperatively drain a dynamic set of named
// work queues in round-robin order.
//
// # Overview
//
// A Pool owns one mutex and two condition variables built on it — one
// signaled whenever work becomes available, one signaled whenever a
// worker finishes a process hook while the pool is paused. Producers
// register a Queue[T] against a Pool and enqueue items of type T; the
// pool's workers pick the next non-empty queue in round-robin order and
// invoke that queue's Process hook with the pool's lock released, so
// the hook is free to take its own locks or block without risking a
// deadlock against the pool.
//
// # Basic usage
//
//	p := pool.New("ingest", 4)
//
//	q := pool.NewQueue(p, "jobs", pool.Hooks[Job]{
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
//		Process: func(j Job) {
//			handle(j)
//		},
//		Clear: func() {
//			pending = nil
//		},
//	})
//
//	p.Start()
//	q.Enqueue(Job{ID: 1})
//
//	// Later, drain in-flight work and stop for good:
//	p.Stop(true)
//
// # Pause and drain
//
// Pause blocks until every worker currently inside a Process hook has
// returned and guarantees none will start a new one until Unpause is
// called — useful for taking a consistent snapshot of external state
// the queues' hooks touch:
//
//	p.Pause()
//	snapshot := captureState()
//	p.Unpause()
//
// PauseNew is the non-blocking sibling: it stops new hooks from
// starting but returns immediately, leaving any in-flight hook to
// finish on its own time.
//
// # Thread safety
//
// Every exported method on Pool and Queue[T] is safe to call from
// multiple goroutines. The one exception is the lifecycle contract
// documented on each method: starting a pool twice, pausing twice
// without an intervening unpause, or unpausing a pool that isn't paused
// is a programmer error and panics with a *MisuseError rather than
// silently doing nothing, since silently ignoring a broken lifecycle
// call tends to mask the bug it came from.
package pool

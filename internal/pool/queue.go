package pool

import "github.com/google/uuid"

// Queue is one named work queue registered against a Pool. It wraps a
// caller-supplied Hooks[T], translating the pool's type-erased scheduling
// calls into calls on the caller's own data structure.
//
// A Queue's zero value is not usable; construct with NewQueue.
type Queue[T any] struct {
	pool  *Pool
	name  string
	id    uuid.UUID
	hooks Hooks[T]
}

// NewQueue registers a new named queue against p and returns it. Enqueue
// may be called immediately, even before p.Start. name is used only for
// logging and metric labels; it need not be unique, though non-unique
// names make log output harder to follow.
func NewQueue[T any](p *Pool, name string, hooks Hooks[T]) *Queue[T] {
	hooks.validate(name)

	q := &Queue[T]{
		pool:  p,
		name:  name,
		id:    uuid.New(),
		hooks: hooks,
	}
	p.register(q)
	return q
}

// Enqueue adds item to the queue via the Enqueue hook and signals the
// work-available condition once, whether or not the item was accepted —
// a rejection might be racing another goroutine's state change, and
// signalling unconditionally avoids starving a worker over that race.
// Reports whatever the Enqueue hook reported.
func (q *Queue[T]) Enqueue(item T) bool {
	q.pool.mu.Lock()
	defer q.pool.mu.Unlock()

	ok := q.hooks.Enqueue(item)
	q.pool.kickLocked()
	if q.pool.metrics != nil {
		q.pool.metrics.observeQueueLen(q.name, q.id, q.hooks.Len)
	}
	return ok
}

// Dequeue removes item from the queue via the SelectiveDequeue hook if
// present, and is a no-op if it is not. Unlike Enqueue, it does not kick
// the pool, since removing an item never creates new work.
func (q *Queue[T]) Dequeue(item T) {
	q.pool.mu.Lock()
	q.hooks.SelectiveDequeue(item)
	q.pool.mu.Unlock()
}

// Clear discards every item currently pending in the queue via the Clear
// hook. Unlike Pool.Stop's clearAfter, this can be called at any time;
// it does not wait for or prevent a concurrent Process call already in
// flight for an item already pulled via Next.
func (q *Queue[T]) Clear() {
	q.pool.mu.Lock()
	q.hooks.Clear()
	q.pool.mu.Unlock()
}

// Close deregisters the queue from its pool. Workers stop considering it
// in future sweeps. The caller is responsible for ensuring no goroutine
// is concurrently enqueuing to a closed queue; Close does not itself
// drain or clear pending items — call Clear first if that's wanted.
//
// Close does not check whether a worker is currently inside this queue's
// Process hook. The owner must pause or stop the pool before closing a
// queue so that none is.
func (q *Queue[T]) Close() {
	q.pool.deregister(q)
}

// queueName satisfies queueHandle.
func (q *Queue[T]) queueName() string {
	return q.name
}

// queueID satisfies queueHandle.
func (q *Queue[T]) queueID() uuid.UUID {
	return q.id
}

// clearLocked satisfies queueHandle. Called with the pool's lock held.
func (q *Queue[T]) clearLocked() {
	q.hooks.Clear()
}

// tryProcess satisfies queueHandle. Called with the pool's lock held; it
// pulls one item via Next (lock held), releases the lock around Process,
// then reacquires it before returning, matching the contract documented
// on queueHandle.
func (q *Queue[T]) tryProcess() bool {
	item, ok := q.hooks.Next()
	if !ok {
		return false
	}

	q.pool.mu.Unlock()
	q.hooks.Process(item)
	q.pool.mu.Lock()

	return true
}

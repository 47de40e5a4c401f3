package wqpool

import (
	"testing"
	"time"
)

// TestNewProcessesEnqueuedItems is a compile-time-and-behavior smoke test
// that the re-exported wqpool API wires through to the underlying engine
// end to end, the way the teacher package's own facade tests check
// interface compatibility rather than internal behavior.
func TestNewProcessesEnqueuedItems(t *testing.T) {
	p := New("smoke", 1)

	var pending []int
	done := make(chan struct{})

	q := NewQueue(p, "jobs", Hooks[int]{
		Enqueue: func(item int) bool {
			pending = append(pending, item)
			return true
		},
		SelectiveDequeue: func(target int) {
			for i, item := range pending {
				if item == target {
					pending = append(pending[:i], pending[i+1:]...)
					return
				}
			}
		},
		Next: func() (int, bool) {
			if len(pending) == 0 {
				return 0, false
			}
			item := pending[0]
			pending = pending[1:]
			return item, true
		},
		Process: func(int) {
			close(done)
		},
		Clear: func() {
			pending = nil
		},
	})

	p.Start()
	q.Enqueue(1)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the re-exported API to process an item")
	}
	p.Stop(false)
}

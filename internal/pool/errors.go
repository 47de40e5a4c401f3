package pool

import "fmt"

// MisuseError is panicked when a caller violates the pool's lifecycle
// contract: double-pause, unpause while not paused, starting a pool
// twice, or resizing a pool that has already started. These are
// programmer errors, not recoverable conditions, so the pool aborts
// rather than trying to limp along with a lifecycle it can no longer
// reason about.
//
// A caller that wants to distinguish a misuse panic from any other
// panic escaping a process hook can recover and type-assert:
//
//	defer func() {
//		if r := recover(); r != nil {
//			if me, ok := r.(*pool.MisuseError); ok {
//				log.Fatalf("pool misuse: %s", me)
//			}
//			panic(r)
//		}
//	}()
type MisuseError struct {
	Op  string
	Msg string
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("pool: %s: %s", e.Op, e.Msg)
}

func misuse(op, msg string) {
	panic(&MisuseError{Op: op, Msg: msg})
}

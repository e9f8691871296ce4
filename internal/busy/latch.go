// Package busy provides the idle/busy latch that gates resubmission while a
// command or a payment check is in flight.
package busy

import "sync/atomic"

type State int32

const (
	Idle State = iota
	Busy
)

func (s State) String() string {
	if s == Busy {
		return "busy"
	}
	return "idle"
}

// Latch is a two-state flag. The zero value is Idle.
type Latch struct {
	state atomic.Int32
}

// TryAcquire moves the latch from Idle to Busy. It returns false, leaving the
// latch untouched, when it is already Busy.
func (l *Latch) TryAcquire() bool {
	return l.state.CompareAndSwap(int32(Idle), int32(Busy))
}

// Release returns the latch to Idle. Releasing an idle latch is a no-op.
func (l *Latch) Release() {
	l.state.Store(int32(Idle))
}

func (l *Latch) Busy() bool {
	return l.State() == Busy
}

func (l *Latch) State() State {
	return State(l.state.Load())
}

package toaster

import (
	"sync"
	"sync/atomic"

	"github.com/vango-dev/toaster/pkg/toast"
)

// State is a toast's lifecycle state.
type State int32

const (
	StateVisible State = iota
	StateClearing
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StateVisible:
		return "visible"
	case StateClearing:
		return "clearing"
	case StateRemoved:
		return "removed"
	}
	return "unknown"
}

// coordinator drives one toast through visible -> clearing -> removed.
// Timers are never interrupted; a late timer finds the clear signal already
// set or the toast already removed and does nothing.
type coordinator struct {
	owner *Toaster
	toast toast.Toast
	state atomic.Int32

	mu          sync.Mutex
	unsubscribe func()
}

func newCoordinator(owner *Toaster, t toast.Toast) *coordinator {
	return &coordinator{owner: owner, toast: t}
}

// State returns the current lifecycle state.
func (c *coordinator) State() State {
	return State(c.state.Load())
}

// start subscribes to the clear signal and arms the expiry timer.
func (c *coordinator) start() {
	unsubscribe := c.toast.Clear.Subscribe(c.onClear)

	c.mu.Lock()
	c.unsubscribe = unsubscribe
	c.mu.Unlock()

	if c.State() != StateVisible {
		c.dropSubscription()
		return
	}

	if c.toast.Expires() {
		c.owner.clock.AfterFunc(c.toast.Expiry, func() {
			c.owner.dispatch(c.expire)
		})
	}

	// The signal may have flipped before the subscription existed.
	if c.toast.Clear.Peek() {
		c.onClear()
	}
}

// expire is the expiry timer body.
func (c *coordinator) expire() {
	if c.State() != StateVisible {
		return
	}
	if c.toast.Clear.Trigger(toast.ReasonExpired) {
		c.owner.logger.Debug("toast expired", "toast_id", c.toast.ID)
	}
}

// onClear reacts to the clear signal flip. Only the first call moves the
// toast to clearing and arms the exit timer.
func (c *coordinator) onClear() {
	if !c.state.CompareAndSwap(int32(StateVisible), int32(StateClearing)) {
		return
	}
	c.dropSubscription()

	reason := c.toast.Clear.Reason()
	owner := c.owner
	owner.logger.Debug("toast clearing",
		"toast_id", c.toast.ID,
		"reason", reason.String(),
	)
	owner.emit(Event{
		Kind:   EventClearing,
		Toast:  c.toast,
		Reason: reason,
		At:     owner.clock.Now(),
		Stats:  owner.Stats(),
	})

	id := c.toast.ID
	owner.clock.AfterFunc(owner.exitDuration, func() {
		owner.dispatch(func() { owner.Remove(id) })
	})
}

// retire marks the toast removed. Called by Remove with the registry locked.
func (c *coordinator) retire() {
	c.state.Store(int32(StateRemoved))
	c.dropSubscription()
}

func (c *coordinator) dropSubscription() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

package toast

import (
	"sync/atomic"

	"github.com/vango-dev/toaster/pkg/reactive"
)

// ClearReason records what started a toast's exit transition.
type ClearReason uint32

const (
	ReasonNone ClearReason = iota
	ReasonExpired
	ReasonDismissed
	ReasonCleared
)

func (r ClearReason) String() string {
	switch r {
	case ReasonExpired:
		return "expired"
	case ReasonDismissed:
		return "dismissed"
	case ReasonCleared:
		return "cleared"
	}
	return "none"
}

// ClearSignal is a write-once reactive flag. It starts false and can be
// flipped to true exactly once; the compare-and-set on reason decides the
// winner when expiry, dismissal and bulk clear race.
type ClearSignal struct {
	reason atomic.Uint32
	value  *reactive.Signal[bool]
}

// NewClearSignal returns an unset signal.
func NewClearSignal() *ClearSignal {
	return &ClearSignal{value: reactive.NewSignal(false)}
}

// Trigger flips the signal with the given reason. It reports whether this
// call performed the flip; later calls return false and change nothing.
// ReasonNone is recorded as ReasonDismissed.
func (c *ClearSignal) Trigger(reason ClearReason) bool {
	if reason == ReasonNone {
		reason = ReasonDismissed
	}
	if !c.reason.CompareAndSwap(uint32(ReasonNone), uint32(reason)) {
		return false
	}
	c.value.Set(true)
	return true
}

// Set is the write side of the reactive view. Only true is honored and it
// counts as a dismissal; false never resets a triggered signal.
func (c *ClearSignal) Set(v bool) {
	if v {
		c.Trigger(ReasonDismissed)
	}
}

// Get returns whether the signal is set and subscribes the current listener.
func (c *ClearSignal) Get() bool {
	return c.value.Get()
}

// Peek returns whether the signal is set without subscribing.
func (c *ClearSignal) Peek() bool {
	return c.reason.Load() != uint32(ReasonNone)
}

// Reason returns the cause recorded by the winning Trigger.
func (c *ClearSignal) Reason() ClearReason {
	return ClearReason(c.reason.Load())
}

// Subscribe calls fn once the signal flips. The returned func removes the
// subscription.
func (c *ClearSignal) Subscribe(fn func()) func() {
	return c.value.Subscribe(fn)
}

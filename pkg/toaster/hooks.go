package toaster

import (
	"time"

	"github.com/vango-dev/toaster/pkg/toast"
)

// EventKind is the lifecycle step a hook is told about.
type EventKind uint8

const (
	EventEnqueued EventKind = iota
	EventClearing
	EventRemoved
)

func (k EventKind) String() string {
	switch k {
	case EventEnqueued:
		return "enqueued"
	case EventClearing:
		return "clearing"
	case EventRemoved:
		return "removed"
	}
	return "unknown"
}

// Event describes one lifecycle step of one toast.
type Event struct {
	Kind  EventKind
	Toast toast.Toast

	// Reason is set for EventClearing and EventRemoved. A toast removed
	// without clearing first reports toast.ReasonNone.
	Reason toast.ClearReason

	// At is the registry clock's time of the step.
	At time.Time

	// Stats is the registry state right after the step.
	Stats Stats
}

// Hook observes toast lifecycle events. Enqueued and removed events are
// delivered while the registry is locked so they arrive in order; a hook
// must not call back into the Toaster.
type Hook interface {
	OnEvent(Event)
}

// HookFunc adapts a function to the Hook interface.
type HookFunc func(Event)

// OnEvent implements Hook.
func (f HookFunc) OnEvent(e Event) {
	f(e)
}

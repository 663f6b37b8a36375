package toaster

import (
	"log/slog"
	"sync"
	"time"

	"github.com/vango-dev/toaster/pkg/clock"
	"github.com/vango-dev/toaster/pkg/reactive"
	"github.com/vango-dev/toaster/pkg/toast"
)

// Stats are the registry counters.
type Stats struct {
	// Visible is the number of toasts not yet removed.
	Visible uint32 `json:"visible"`
	// Total is the number of toasts ever enqueued; the next ID is Total+1.
	Total uint64 `json:"total"`
}

// Toaster is the registry of visible toasts. It is safe for concurrent use;
// share one *Toaster across every caller.
type Toaster struct {
	// mu serializes enqueue and removal: it guards stats, coordinators and
	// the read-compute-publish cycle on toasts.
	mu           sync.Mutex
	stats        Stats
	coordinators map[toast.ID]*coordinator

	toasts *reactive.Signal[[]toast.Toast]

	clock        clock.Clock
	exitDuration time.Duration
	dispatch     func(func())
	logger       *slog.Logger
	hooks        []Hook
}

// New creates an empty registry.
func New(opts ...Option) *Toaster {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Clock == nil {
		o.Clock = clock.Real()
	}
	if o.Dispatch == nil {
		o.Dispatch = func(fn func()) { fn() }
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return &Toaster{
		coordinators: make(map[toast.ID]*coordinator),
		toasts:       reactive.NewSignal([]toast.Toast{}).WithEquals(sameIDs),
		clock:        o.Clock,
		exitDuration: o.ExitDuration,
		dispatch:     o.Dispatch,
		logger:       o.Logger,
		hooks:        o.Hooks,
	}
}

// Toast enqueues the toast described by b and returns its ID. IDs follow
// call order even under concurrent callers.
func (t *Toaster) Toast(b toast.Builder) toast.ID {
	var (
		rec toast.Toast
		c   *coordinator
	)

	reactive.Batch(func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		rec = b.Build(t.stats.Total + 1)
		rec.CreatedAt = t.clock.Now()

		t.toasts.Update(func(current []toast.Toast) []toast.Toast {
			next := make([]toast.Toast, 0, len(current)+1)
			next = append(next, current...)
			return append(next, rec)
		})
		t.stats.Visible++
		t.stats.Total++

		c = newCoordinator(t, rec)
		t.coordinators[rec.ID] = c

		t.emit(Event{Kind: EventEnqueued, Toast: rec, At: rec.CreatedAt, Stats: t.stats})
	})

	t.logger.Debug("toast enqueued",
		"toast_id", rec.ID,
		"level", rec.Level.String(),
		"position", rec.Position.String(),
		"expiry", rec.Expiry,
	)

	c.start()
	return rec.ID
}

// Info enqueues an info toast with default parameters.
func (t *Toaster) Info(message string) toast.ID {
	return t.Toast(toast.New(message).WithLevel(toast.Info))
}

// Success enqueues a success toast with default parameters.
func (t *Toaster) Success(message string) toast.ID {
	return t.Toast(toast.New(message).WithLevel(toast.Success))
}

// Warn enqueues a warn toast with default parameters.
func (t *Toaster) Warn(message string) toast.ID {
	return t.Toast(toast.New(message).WithLevel(toast.Warn))
}

// Error enqueues an error toast with default parameters.
func (t *Toaster) Error(message string) toast.ID {
	return t.Toast(toast.New(message).WithLevel(toast.Error))
}

// Remove drops the toast with id immediately, skipping any exit animation.
// Removing an unknown or already removed id does nothing.
func (t *Toaster) Remove(id toast.ID) {
	var (
		removed toast.Toast
		found   bool
	)

	reactive.Batch(func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		t.toasts.Update(func(current []toast.Toast) []toast.Toast {
			idx := indexOf(current, id)
			if idx < 0 {
				return current
			}
			removed, found = current[idx], true

			next := make([]toast.Toast, 0, len(current)-1)
			next = append(next, current[:idx]...)
			return append(next, current[idx+1:]...)
		})
		if !found {
			return
		}

		if t.stats.Visible > 0 {
			t.stats.Visible--
		}
		if c, ok := t.coordinators[id]; ok {
			c.retire()
			delete(t.coordinators, id)
		}

		t.emit(Event{
			Kind:   EventRemoved,
			Toast:  removed,
			Reason: removed.Clear.Reason(),
			At:     t.clock.Now(),
			Stats:  t.stats,
		})
	})

	if found {
		t.logger.Debug("toast removed",
			"toast_id", id,
			"reason", removed.Clear.Reason().String(),
		)
	}
}

// Clear starts the exit transition on every visible toast. Removal follows
// through each toast's own coordinator.
func (t *Toaster) Clear() {
	current := t.toasts.Peek()
	cleared := 0
	for _, rec := range current {
		if rec.Clear.Trigger(toast.ReasonCleared) {
			cleared++
		}
	}
	if len(current) > 0 {
		t.logger.Debug("toasts cleared", "count", cleared)
	}
}

// Dismiss is the user-dismissal path for id. It honors the toast's
// Dismissable flag and reports whether it started the exit transition.
func (t *Toaster) Dismiss(id toast.ID) bool {
	rec, ok := t.Get(id)
	if !ok {
		return false
	}
	return rec.Dismiss()
}

// Get returns the visible toast with id.
func (t *Toaster) Get(id toast.ID) (toast.Toast, bool) {
	current := t.toasts.Peek()
	if idx := indexOf(current, id); idx >= 0 {
		return current[idx], true
	}
	return toast.Toast{}, false
}

// Toasts returns the read-only reactive view of the visible toasts in
// enqueue order. Treat the returned slices as immutable.
func (t *Toaster) Toasts() reactive.ReadSignal[[]toast.Toast] {
	return t.toasts.ReadOnly()
}

// Project returns the ordered queue for pos. It reads the collection with
// Get, so a tracked caller re-renders when the collection changes.
func (t *Toaster) Project(pos toast.Position, mode Mode) []toast.Toast {
	return Project(t.toasts.Get(), pos, mode)
}

// IsEmpty reports whether nothing is queued at pos.
func (t *Toaster) IsEmpty(pos toast.Position) bool {
	return IsEmpty(t.toasts.Get(), pos)
}

// Stats returns a snapshot of the registry counters.
func (t *Toaster) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// State reports the lifecycle state of id. The second result is false for
// ids this registry never issued.
func (t *Toaster) State(id toast.ID) (State, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if c, ok := t.coordinators[id]; ok {
		return c.State(), true
	}
	if id > 0 && id <= t.stats.Total {
		return StateRemoved, true
	}
	return StateVisible, false
}

// ExitDuration returns the configured exit-animation wait.
func (t *Toaster) ExitDuration() time.Duration {
	return t.exitDuration
}

// emit delivers e to every hook. Callers hold t.mu for enqueue and removal.
func (t *Toaster) emit(e Event) {
	for _, h := range t.hooks {
		h.OnEvent(e)
	}
}

func indexOf(toasts []toast.Toast, id toast.ID) int {
	for i, rec := range toasts {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// sameIDs is the collection's equality: records are immutable, so equal ID
// sequences mean equal collections.
func sameIDs(a, b []toast.Toast) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

package toastertest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/vango-dev/toaster/pkg/clock"
	"github.com/vango-dev/toaster/pkg/toast"
	"github.com/vango-dev/toaster/pkg/toaster"
)

// DefaultStart is the fake clock's starting time.
var DefaultStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// HarnessBuilder allows fluent construction of test harnesses.
type HarnessBuilder struct {
	start time.Time
	opts  []toaster.Option
	hooks []toaster.Hook
}

// New creates a new harness builder.
func New() *HarnessBuilder {
	return &HarnessBuilder{start: DefaultStart}
}

// WithStart sets the fake clock's starting time.
func (b *HarnessBuilder) WithStart(start time.Time) *HarnessBuilder {
	b.start = start
	return b
}

// WithExitDuration sets the registry's exit transition length.
func (b *HarnessBuilder) WithExitDuration(d time.Duration) *HarnessBuilder {
	b.opts = append(b.opts, toaster.WithExitDuration(d))
	return b
}

// WithHooks adds hooks in front of the harness recorder.
func (b *HarnessBuilder) WithHooks(hooks ...toaster.Hook) *HarnessBuilder {
	b.hooks = append(b.hooks, hooks...)
	return b
}

// WithOption passes an arbitrary registry option through.
func (b *HarnessBuilder) WithOption(opt toaster.Option) *HarnessBuilder {
	b.opts = append(b.opts, opt)
	return b
}

// Build returns the harness.
func (b *HarnessBuilder) Build() *Harness {
	h := &Harness{
		Clock:    clock.NewFake(b.start),
		Recorder: &Recorder{},
	}

	hooks := append(append([]toaster.Hook{}, b.hooks...), h.Recorder)
	opts := append([]toaster.Option{
		toaster.WithClock(h.Clock),
		toaster.WithHooks(hooks...),
	}, b.opts...)
	h.Toaster = toaster.New(opts...)
	return h
}

// Harness is a Toaster on virtual time.
type Harness struct {
	Toaster  *toaster.Toaster
	Clock    *clock.Fake
	Recorder *Recorder
}

// Advance moves virtual time forward, firing due timers.
func (h *Harness) Advance(d time.Duration) {
	h.Clock.Advance(d)
}

// Context returns parent carrying the harness registry.
func (h *Harness) Context(parent context.Context) context.Context {
	return toaster.Provide(parent, h.Toaster)
}

// Recorder is a hook that keeps every event it sees.
type Recorder struct {
	mu     sync.Mutex
	events []toaster.Event
}

// OnEvent implements toaster.Hook.
func (r *Recorder) OnEvent(e toaster.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []toaster.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]toaster.Event(nil), r.events...)
}

// For returns the events recorded for one toast.
func (r *Recorder) For(id toast.ID) []toaster.Event {
	var out []toaster.Event
	for _, e := range r.Events() {
		if e.Toast.ID == id {
			out = append(out, e)
		}
	}
	return out
}

// Kinds returns the event kinds recorded for one toast, in order.
func (r *Recorder) Kinds(id toast.ID) []toaster.EventKind {
	events := r.For(id)
	out := make([]toaster.EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

// Reset drops every recorded event.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// ExpectIDs asserts the registry holds exactly ids, in insertion order.
func ExpectIDs(t testing.TB, reg *toaster.Toaster, ids ...toast.ID) {
	t.Helper()
	got := idsOf(reg.Toasts().Peek())
	if !equalIDs(got, ids) {
		t.Errorf("expected toasts %v, got %v", ids, got)
	}
}

// ExpectMessages asserts the registry holds toasts with exactly messages,
// in insertion order.
func ExpectMessages(t testing.TB, reg *toaster.Toaster, messages ...string) {
	t.Helper()
	toasts := reg.Toasts().Peek()
	got := make([]string, len(toasts))
	for i, rec := range toasts {
		got[i] = rec.Message
	}
	if len(got) != len(messages) {
		t.Errorf("expected messages %q, got %q", messages, got)
		return
	}
	for i := range got {
		if got[i] != messages[i] {
			t.Errorf("expected messages %q, got %q", messages, got)
			return
		}
	}
}

// ExpectEmpty asserts the registry holds no toasts.
func ExpectEmpty(t testing.TB, reg *toaster.Toaster) {
	t.Helper()
	if got := reg.Toasts().Peek(); len(got) != 0 {
		t.Errorf("expected no toasts, got %v", idsOf(got))
	}
}

// ExpectProjection asserts the order of one corner queue.
func ExpectProjection(t testing.TB, reg *toaster.Toaster, pos toast.Position, mode toaster.Mode, ids ...toast.ID) {
	t.Helper()
	got := idsOf(toaster.Project(reg.Toasts().Peek(), pos, mode))
	if !equalIDs(got, ids) {
		t.Errorf("expected %s (%s) to show %v, got %v", pos, mode, ids, got)
	}
}

// ExpectState asserts the lifecycle state of a toast.
func ExpectState(t testing.TB, reg *toaster.Toaster, id toast.ID, want toaster.State) {
	t.Helper()
	got, ok := reg.State(id)
	if !ok {
		t.Errorf("expected toast #%d to be %s, but it was never enqueued", id, want)
		return
	}
	if got != want {
		t.Errorf("expected toast #%d to be %s, got %s", id, want, got)
	}
}

func idsOf(toasts []toast.Toast) []toast.ID {
	out := make([]toast.ID, len(toasts))
	for i, rec := range toasts {
		out[i] = rec.ID
	}
	return out
}

func equalIDs(a, b []toast.ID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

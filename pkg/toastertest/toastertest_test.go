package toastertest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/vango-dev/toaster/pkg/toast"
	"github.com/vango-dev/toaster/pkg/toaster"
)

// fakeT records failures instead of failing the test.
type fakeT struct {
	testing.TB
	errors []string
}

func (f *fakeT) Helper() {}

func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func TestHarnessDrivesLifecycle(t *testing.T) {
	h := New().WithExitDuration(50 * time.Millisecond).Build()

	id := h.Toaster.Toast(toast.New("Saved").WithExpiry(time.Second))
	ExpectIDs(t, h.Toaster, id)
	ExpectState(t, h.Toaster, id, toaster.StateVisible)

	h.Advance(time.Second)
	ExpectState(t, h.Toaster, id, toaster.StateClearing)

	h.Advance(50 * time.Millisecond)
	ExpectEmpty(t, h.Toaster)
	ExpectState(t, h.Toaster, id, toaster.StateRemoved)

	kinds := h.Recorder.Kinds(id)
	want := []toaster.EventKind{toaster.EventEnqueued, toaster.EventClearing, toaster.EventRemoved}
	if fmt.Sprint(kinds) != fmt.Sprint(want) {
		t.Errorf("Kinds() = %v, want %v", kinds, want)
	}
	if got := h.Recorder.For(id)[2].At; !got.Equal(DefaultStart.Add(1050 * time.Millisecond)) {
		t.Errorf("removed at %v", got)
	}
}

func TestHarnessContext(t *testing.T) {
	h := New().Build()
	ctx := h.Context(context.Background())

	toaster.Expect(ctx).Warn("Low disk")
	ExpectMessages(t, h.Toaster, "Low disk")
}

func TestHarnessOptions(t *testing.T) {
	start := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	var seen int
	h := New().
		WithStart(start).
		WithHooks(toaster.HookFunc(func(toaster.Event) { seen++ })).
		WithOption(toaster.WithExitDuration(0)).
		Build()

	if !h.Clock.Now().Equal(start) {
		t.Errorf("clock starts at %v, want %v", h.Clock.Now(), start)
	}
	h.Toaster.Info("x")
	if seen != 1 || len(h.Recorder.Events()) != 1 {
		t.Errorf("hook saw %d events, recorder %d", seen, len(h.Recorder.Events()))
	}
	if h.Toaster.ExitDuration() != 0 {
		t.Errorf("ExitDuration() = %v", h.Toaster.ExitDuration())
	}

	h.Recorder.Reset()
	if len(h.Recorder.Events()) != 0 {
		t.Error("Reset() should drop events")
	}
}

func TestExpectProjection(t *testing.T) {
	h := New().Build()
	a := h.Toaster.Toast(toast.New("A").WithPosition(toast.TopLeft))
	h.Toaster.Toast(toast.New("B").WithPosition(toast.BottomLeft))
	c := h.Toaster.Toast(toast.New("C").WithPosition(toast.TopLeft))

	ExpectProjection(t, h.Toaster, toast.TopLeft, toaster.ModeStacked, c, a)
	ExpectProjection(t, h.Toaster, toast.TopLeft, toaster.ModeList, a, c)
}

func TestExpectationsReportFailures(t *testing.T) {
	h := New().Build()
	id := h.Toaster.Info("only")

	ft := &fakeT{}
	ExpectIDs(ft, h.Toaster, id, id+1)
	ExpectMessages(ft, h.Toaster, "other")
	ExpectEmpty(ft, h.Toaster)
	ExpectProjection(ft, h.Toaster, toast.TopRight, toaster.ModeStacked, id)
	ExpectState(ft, h.Toaster, id, toaster.StateRemoved)
	ExpectState(ft, h.Toaster, 99, toaster.StateVisible)

	if len(ft.errors) != 6 {
		t.Fatalf("expected 6 failures, got %d: %q", len(ft.errors), ft.errors)
	}
}

// Package toastertest provides helpers for testing code that enqueues
// toasts.
//
// A Harness wires a Toaster to a fake clock and an event recorder, so tests
// drive expiry and exit transitions without sleeping.
//
// # Quick Start
//
//	func TestSaveShowsToast(t *testing.T) {
//	    h := toastertest.New().Build()
//	    ctx := h.Context(context.Background())
//
//	    SaveDraft(ctx)
//
//	    toastertest.ExpectMessages(t, h.Toaster, "Draft saved")
//	    h.Advance(toast.DefaultExpiry + toaster.DefaultExitDuration)
//	    toastertest.ExpectEmpty(t, h.Toaster)
//	}
//
// # Fluent Harness Builder
//
//	h := toastertest.New().
//	    WithStart(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
//	    WithExitDuration(50 * time.Millisecond).
//	    WithHooks(myHook).
//	    Build()
package toastertest

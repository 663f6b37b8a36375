// Package toast defines a single transient notification: its content,
// presentation parameters, and the write-once clear signal that starts its
// exit transition.
//
// Toasts are built with a Builder and handed to a registry, which assigns
// the ID:
//
//	b := toast.New("Project deleted").
//	    WithLevel(toast.Success).
//	    WithExpiry(4 * time.Second).
//	    WithPosition(toast.TopRight)
//
//	id := registry.Toast(b)
//
// # Defaults
//
// A fresh Builder yields an Info toast at BottomLeft that is dismissable,
// expires after DefaultExpiry (2.5s), and shows a progress bar. Pass
// NoExpiry to WithExpiry for a toast that stays until cleared.
//
// # Clear Signal
//
// Every built Toast owns an independent ClearSignal. It flips from false to
// true exactly once; whichever of expiry, dismissal or bulk clear wins the
// flip is recorded as the Reason, and every later attempt is a no-op:
//
//	if t.Dismiss() {
//	    // this click started the exit transition
//	}
//
// Rendering code subscribes to the signal to play the exit animation:
//
//	stop := t.Clear.Subscribe(func() { startSlideOut(t.ID) })
package toast

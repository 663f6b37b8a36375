// Package toaster is the registry that owns every visible toast.
//
// A Toaster allocates toast IDs, keeps the insertion-ordered collection of
// visible toasts in a reactive signal, and runs one lifecycle coordinator
// per toast that moves it from visible, through clearing, to removed:
//
//	t := toaster.New()
//	id := t.Toast(toast.New("Saved").WithLevel(toast.Success))
//	t.Warn("Disk almost full")
//	t.Dismiss(id) // user click
//	t.Clear()     // start the exit transition on everything
//
// # Lifecycle
//
// A toast with an expiry triggers its own clear signal when the expiry
// elapses. Whatever flips the signal first (expiry, Dismiss, Clear) wins;
// the coordinator then waits the exit-animation duration and removes the
// toast. Remove is idempotent, so stale timers are harmless.
//
// # Rendering
//
// Toasts returns a read-only signal of the whole collection. Project turns
// it into the ordered queue for one corner:
//
//	stop := t.Toasts().Subscribe(func() {
//	    for _, pos := range toaster.Corners {
//	        drawCorner(pos, toaster.Project(t.Toasts().Peek(), pos, toaster.ModeStacked))
//	    }
//	})
//
// # Ambient Access
//
// Provide installs a registry into a context.Context once; Expect retrieves
// it and panics with error T001 when setup forgot to install one.
package toaster

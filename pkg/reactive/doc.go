// Package reactive provides the small reactive core the toaster publishes
// through: a Signal[T] value container whose readers can subscribe to
// changes.
//
// # Core Types
//
// Signal[T] is a reactive value container:
//
//	toasts := reactive.NewSignal([]string{})
//	value := toasts.Get()   // Read (subscribes current listener)
//	value = toasts.Peek()   // Read without subscribing
//	toasts.Set(next)        // Write (notifies subscribers)
//	toasts.Update(func(v []string) []string { return append(v, "hi") })
//
// Rendering code that is not running under a tracked listener subscribes
// explicitly:
//
//	stop := toasts.Subscribe(func() { redraw(toasts.Peek()) })
//	defer stop()
//
// # Batching
//
// Updates made inside Batch are collected and subscribers are notified once,
// after the outermost batch returns:
//
//	reactive.Batch(func() {
//	    a.Set(1)
//	    b.Set(2)
//	})
//
// # Thread Safety
//
// All primitives are safe for concurrent use. Tracking and batching state is
// per-goroutine.
package reactive

package reactive

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state for a goroutine.
type trackingContext struct {
	// currentListener is what's currently tracking dependencies.
	// nil means reads don't create subscriptions.
	currentListener Listener

	// batchDepth tracks nested Batch() calls.
	batchDepth int

	// pendingUpdates accumulates listeners to notify when the batch completes.
	pendingUpdates []Listener
}

func (c *trackingContext) idle() bool {
	return c.currentListener == nil && c.batchDepth == 0 && len(c.pendingUpdates) == 0
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID returns a unique identifier for the current goroutine,
// parsed from the "goroutine <id> " stack header.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// lookupTrackingContext returns the context for the current goroutine, or nil.
// Reads never allocate a context so untracked goroutines (timer callbacks)
// leave nothing behind.
func lookupTrackingContext() (uint64, *trackingContext) {
	gid := getGoroutineID()
	if ctx, ok := trackingContexts.Load(gid); ok {
		return gid, ctx.(*trackingContext)
	}
	return gid, nil
}

// acquireTrackingContext returns the context for the current goroutine,
// creating it if needed.
func acquireTrackingContext() (uint64, *trackingContext) {
	gid, ctx := lookupTrackingContext()
	if ctx == nil {
		ctx = &trackingContext{}
		trackingContexts.Store(gid, ctx)
	}
	return gid, ctx
}

// releaseTrackingContext drops the context once it no longer holds state,
// and re-registers it otherwise (a nested scope may have dropped it).
func releaseTrackingContext(gid uint64, ctx *trackingContext) {
	if ctx.idle() {
		trackingContexts.Delete(gid)
		return
	}
	trackingContexts.Store(gid, ctx)
}

func getCurrentListener() Listener {
	_, ctx := lookupTrackingContext()
	if ctx == nil {
		return nil
	}
	return ctx.currentListener
}

func getBatchDepth() int {
	_, ctx := lookupTrackingContext()
	if ctx == nil {
		return 0
	}
	return ctx.batchDepth
}

func queuePendingUpdate(l Listener) {
	_, ctx := acquireTrackingContext()
	ctx.pendingUpdates = append(ctx.pendingUpdates, l)
}

// WithListener runs fn with l as the current listener, so every Get inside
// fn subscribes l.
func WithListener(l Listener, fn func()) {
	gid, ctx := acquireTrackingContext()
	old := ctx.currentListener
	ctx.currentListener = l
	defer func() {
		ctx.currentListener = old
		releaseTrackingContext(gid, ctx)
	}()
	fn()
}

// Untracked runs fn without tracking signal reads as dependencies.
//
// For single signal reads, use Peek instead.
func Untracked(fn func()) {
	if getCurrentListener() == nil {
		fn()
		return
	}
	WithListener(nil, fn)
}

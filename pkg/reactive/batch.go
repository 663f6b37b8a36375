package reactive

// Batch groups multiple signal updates into a single notification phase.
// All signal updates within fn are collected, deduplicated, and then every
// affected listener is notified once when the batch completes.
//
// Batches can be nested. Notifications only fire when the outermost batch
// completes, after fn has returned, so fn may hold locks that subscribers
// would otherwise need.
func Batch(fn func()) {
	gid, ctx := acquireTrackingContext()
	ctx.batchDepth++

	defer func() {
		ctx.batchDepth--
		if ctx.batchDepth > 0 {
			return
		}
		updates := ctx.pendingUpdates
		ctx.pendingUpdates = nil
		releaseTrackingContext(gid, ctx)
		notifyUnique(updates)
	}()

	fn()
}

// notifyUnique deduplicates by listener ID and notifies in first-queued order.
func notifyUnique(updates []Listener) {
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	for _, listener := range updates {
		id := listener.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		listener.MarkDirty()
	}
}

// Package telemetry provides toaster lifecycle hooks that export
// Prometheus metrics and OpenTelemetry spans.
//
//	reg := toaster.New(
//	    toaster.WithHooks(
//	        telemetry.Prometheus(telemetry.WithNamespace("myapp")),
//	        telemetry.OpenTelemetry(),
//	    ),
//	)
//
// Metrics collected (namespace "toaster" by default):
//   - toaster_toasts_enqueued_total: Counter by level and position
//   - toaster_toasts_cleared_total: Counter by clear reason
//   - toaster_toasts_removed_total: Counter of removals
//   - toaster_toasts_visible: Gauge of toasts not yet removed
//   - toaster_toast_lifetime_seconds: Histogram from enqueue to removal
//
// Tracing records one span per toast, from enqueue to removal, with a
// "toast.clearing" event when its exit transition starts.
package telemetry

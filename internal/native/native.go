// Package native mirrors toasts into the operating system's notification
// center. Only Windows is supported; elsewhere the notifier does nothing.
package native

import (
	"log/slog"

	"github.com/vango-dev/toaster/pkg/toast"
	"github.com/vango-dev/toaster/pkg/toaster"
)

// DefaultAppID is the application id shown by the notification center.
const DefaultAppID = "Toaster"

// Notification is one OS notification.
type Notification struct {
	Title   string
	Message string
	Level   toast.Level

	// Sticky asks the notification center to keep the entry longer.
	Sticky bool
}

// Notifier shows OS notifications. Show must not block on the OS.
type Notifier interface {
	Show(n Notification) error
}

// Mirror is a toaster.Hook that forwards enqueued toasts to a Notifier.
type Mirror struct {
	notifier Notifier
	minLevel toast.Level
	logger   *slog.Logger
}

var _ toaster.Hook = (*Mirror)(nil)

// MirrorOption configures a Mirror.
type MirrorOption func(*Mirror)

// WithMinLevel skips toasts below level.
func WithMinLevel(level toast.Level) MirrorOption {
	return func(m *Mirror) {
		m.minLevel = level
	}
}

// WithLogger sets the logger used for delivery failures.
func WithLogger(logger *slog.Logger) MirrorOption {
	return func(m *Mirror) {
		m.logger = logger
	}
}

// NewMirror creates a hook forwarding toasts to n.
func NewMirror(n Notifier, opts ...MirrorOption) *Mirror {
	m := &Mirror{
		notifier: n,
		minLevel: toast.Info,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OnEvent implements toaster.Hook.
func (m *Mirror) OnEvent(e toaster.Event) {
	if e.Kind != toaster.EventEnqueued || e.Toast.Level < m.minLevel {
		return
	}

	n := Notification{
		Title:   Title(e.Toast.Level),
		Message: e.Toast.Message,
		Level:   e.Toast.Level,
		Sticky:  !e.Toast.Expires(),
	}
	if err := m.notifier.Show(n); err != nil {
		m.logger.Warn("native notification failed",
			"toast_id", e.Toast.ID,
			"error", err,
		)
	}
}

// Title returns the notification title for level.
func Title(level toast.Level) string {
	switch level {
	case toast.Success:
		return "Success"
	case toast.Warn:
		return "Warning"
	case toast.Error:
		return "Error"
	default:
		return "Info"
	}
}

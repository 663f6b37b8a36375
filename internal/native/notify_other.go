//go:build !windows

package native

// Supported reports whether notifications reach the OS on this platform.
const Supported = false

type nopNotifier struct{}

// NewNotifier returns a notifier that drops every notification.
func NewNotifier(appID string) Notifier {
	return nopNotifier{}
}

func (nopNotifier) Show(Notification) error { return nil }

//go:build windows

package native

import (
	"github.com/go-toast/toast"

	tst "github.com/vango-dev/toaster/pkg/toast"
)

// Supported reports whether notifications reach the OS on this platform.
const Supported = true

type windowsNotifier struct {
	appID string
}

// NewNotifier creates a notifier for the Windows notification center.
func NewNotifier(appID string) Notifier {
	if appID == "" {
		appID = DefaultAppID
	}
	return &windowsNotifier{appID: appID}
}

// Show pushes n asynchronously; Push shells out to PowerShell.
func (w *windowsNotifier) Show(n Notification) error {
	notification := toast.Notification{
		AppID:    w.appID,
		Title:    n.Title,
		Message:  n.Message,
		Audio:    toast.Silent,
		Duration: toast.Short,
	}
	if n.Level >= tst.Warn {
		notification.Audio = toast.Default
	}
	if n.Sticky {
		notification.Duration = toast.Long
	}

	go func() {
		_ = notification.Push()
	}()
	return nil
}

package native

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vango-dev/toaster/pkg/clock"
	"github.com/vango-dev/toaster/pkg/toast"
	"github.com/vango-dev/toaster/pkg/toaster"
)

var toastEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	shown []Notification
	err   error
}

func (r *recordingNotifier) Show(n Notification) error {
	r.shown = append(r.shown, n)
	return r.err
}

func TestMirrorForwardsEnqueuedToasts(t *testing.T) {
	rec := &recordingNotifier{}
	reg := toaster.New(
		toaster.WithClock(clock.NewFake(toastEpoch)),
		toaster.WithHooks(NewMirror(rec)),
	)

	reg.Success("Saved")
	id := reg.Toast(toast.New("Disk full").WithLevel(toast.Error).WithExpiry(toast.NoExpiry))
	reg.Remove(id)

	require.Len(t, rec.shown, 2)
	assert.Equal(t, Notification{Title: "Success", Message: "Saved", Level: toast.Success}, rec.shown[0])
	assert.Equal(t, Notification{Title: "Error", Message: "Disk full", Level: toast.Error, Sticky: true}, rec.shown[1])
}

func TestMirrorMinLevel(t *testing.T) {
	rec := &recordingNotifier{}
	reg := toaster.New(toaster.WithClock(clock.NewFake(toastEpoch)), toaster.WithHooks(NewMirror(rec, WithMinLevel(toast.Warn))))

	reg.Info("quiet")
	reg.Success("quiet")
	reg.Warn("loud")

	require.Len(t, rec.shown, 1)
	assert.Equal(t, "Warning", rec.shown[0].Title)
}

func TestMirrorLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	rec := &recordingNotifier{err: errors.New("no session")}
	m := NewMirror(rec, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	m.OnEvent(toaster.Event{Kind: toaster.EventEnqueued, Toast: toast.New("x").Build(4)})

	assert.Contains(t, buf.String(), "native notification failed")
	assert.Contains(t, buf.String(), "toast_id=4")
}

func TestNewNotifier(t *testing.T) {
	n := NewNotifier("")
	require.NotNil(t, n)
	if !Supported {
		assert.NoError(t, n.Show(Notification{Title: "Info", Message: "dropped"}))
	}
}

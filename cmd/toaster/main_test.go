package main

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/toaster/internal/config"
	"github.com/vango-dev/toaster/internal/errors"
	"github.com/vango-dev/toaster/internal/logging"
	"github.com/vango-dev/toaster/pkg/clock"
	"github.com/vango-dev/toaster/pkg/telemetry"
	"github.com/vango-dev/toaster/pkg/toast"
	"github.com/vango-dev/toaster/pkg/toaster"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionShort(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestVersionLong(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf, false)
	assert.Contains(t, buf.String(), "Version:    "+version)
	assert.Contains(t, buf.String(), "OS/Arch:")
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, err := execute(t, "demo", "--bogus")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.New("T030")))
}

func TestConfigCommandPrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"position": "top-right"}`), 0644))

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"position": "top-right"`)
	assert.Contains(t, out, `"exitDuration": "200ms"`)
}

func TestConfigCommandMissingFile(t *testing.T) {
	_, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "nope.json"))
	assert.True(t, stderrors.Is(err, errors.New("T022")))
}

func TestInitConfig(t *testing.T) {
	dir := t.TempDir()

	path, err := initConfig(dir, false)
	require.NoError(t, err)
	assert.True(t, config.Exists(dir))

	_, err = initConfig(dir, false)
	assert.True(t, stderrors.Is(err, errors.New("T030")))

	again, err := initConfig(dir, true)
	require.NoError(t, err)
	assert.Equal(t, path, again)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}

func TestFormatCorner(t *testing.T) {
	assert.Equal(t, "·", formatCorner(nil, nil))

	toasts := []toast.Toast{
		toast.New("Welcome").Build(1),
		toast.New("Sync paused").WithExpiry(toast.NoExpiry).WithDismissable(false).Build(2),
	}
	got := formatCorner(toasts, func(id toast.ID) bool { return id == 1 })
	assert.Equal(t, "#1 [info] Welcome (leaving)  #2 [info] Sync paused ∞ (pinned)", got)
}

func TestPrintMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := telemetry.Prometheus(telemetry.WithRegistry(registry))
	m.OnEvent(toaster.Event{
		Kind:  toaster.EventEnqueued,
		Toast: toast.New("x").WithLevel(toast.Warn).Build(1),
		Stats: toaster.Stats{Visible: 1, Total: 1},
	})

	var buf bytes.Buffer
	require.NoError(t, printMetrics(&buf, registry))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "── metrics\n"))
	assert.Contains(t, out, `toaster_toasts_enqueued_total{level="warn",position="bottom-left"} 1`)
	assert.Contains(t, out, "toaster_toasts_visible 1")
}

type eventLog struct {
	mu    sync.Mutex
	kinds []toaster.EventKind
}

func (l *eventLog) OnEvent(e toaster.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.kinds = append(l.kinds, e.Kind)
}

func TestDemoRunsScriptToCompletion(t *testing.T) {
	cfg := config.New()
	cfg.Expiry = "10ms"
	cfg.ExitDuration = "5ms"
	cfg.Mode = "list"

	var out, logs bytes.Buffer
	events := &eventLog{}

	d := newDemo(cfg, &out)
	d.logger = logging.NewWithWriter(logging.Config{Level: "info"}, &logs)
	d.clock = clock.Real()
	d.hooks = []toaster.Hook{events}
	d.script = []step{
		{0, func(ctx context.Context) { toaster.Expect(ctx).Info("short") }},
		{time.Millisecond, func(ctx context.Context) {
			toaster.Expect(ctx).Toast(cfg.Builder("pinned").WithExpiry(toast.NoExpiry).WithPosition(toast.TopRight))
		}},
		{30 * time.Millisecond, func(ctx context.Context) { toaster.Expect(ctx).Clear() }},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.run(ctx))
	require.NoError(t, ctx.Err(), "demo should finish before the timeout")

	assert.Contains(t, out.String(), "#1 [info] short")
	assert.Contains(t, out.String(), "#2 [info] pinned ∞")
	assert.Contains(t, out.String(), "visible 0 · total 2")
	assert.Contains(t, logs.String(), "demo finished")

	events.mu.Lock()
	defer events.mu.Unlock()
	assert.Len(t, events.kinds, 6)
}

func TestDemoScriptUsesConfig(t *testing.T) {
	cfg := config.New()
	script := demoScript(cfg)
	require.NotEmpty(t, script)

	for i := 1; i < len(script); i++ {
		assert.Less(t, script[i-1].at, script[i].at)
	}
}

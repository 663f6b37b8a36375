package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/vango-dev/toaster/internal/config"
	"github.com/vango-dev/toaster/internal/errors"
	"github.com/vango-dev/toaster/internal/logging"
	"github.com/vango-dev/toaster/internal/native"
	"github.com/vango-dev/toaster/pkg/clock"
	"github.com/vango-dev/toaster/pkg/telemetry"
	"github.com/vango-dev/toaster/pkg/toast"
	"github.com/vango-dev/toaster/pkg/toaster"
)

func demoCmd() *cobra.Command {
	var (
		path        string
		mode        string
		withNative  bool
		withMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted toast sequence in the terminal",
		Long: `Run a scripted sequence of toasts across all four corners and
print the corner queues every time they change.

The script covers every level, a user dismissal, a toast that never
expires, and a bulk clear. The command exits once every toast is gone.

Examples:
  toaster demo
  toaster demo --mode=list
  toaster demo --metrics
  toaster demo --native`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(path)
			if err != nil {
				return err
			}
			if mode != "" {
				cfg.Mode = mode
				if err := cfg.Validate(); err != nil {
					return errors.New("T030").
						WithDetail("--mode must be stacked or list").
						Wrap(err)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			d := newDemo(cfg, cmd.OutOrStdout())
			d.logger = logging.WithComponent(logging.New(cfg.Log), "demo")

			var registry *prometheus.Registry
			if withMetrics {
				registry = prometheus.NewRegistry()
				d.hooks = append(d.hooks, telemetry.Prometheus(telemetry.WithRegistry(registry)))
			}
			if withNative {
				if !native.Supported {
					d.logger.Warn("native notifications are not supported on this platform")
				}
				d.hooks = append(d.hooks, native.NewMirror(
					native.NewNotifier(native.DefaultAppID),
					native.WithLogger(d.logger),
				))
			}

			if err := d.run(ctx); err != nil {
				return err
			}
			if registry != nil {
				return printMetrics(d.out, registry)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "Path to toaster.json (default ./toaster.json when present)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Projection mode: stacked or list (default from config)")
	cmd.Flags().BoolVar(&withNative, "native", false, "Mirror toasts to the OS notification center")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "Print Prometheus metrics on exit")

	return cmd
}

// step is one scripted action, run on the demo loop at its offset.
type step struct {
	at  time.Duration
	run func(ctx context.Context)
}

type demo struct {
	cfg    *config.Config
	out    io.Writer
	logger *slog.Logger
	clock  clock.Clock
	hooks  []toaster.Hook
	script []step

	frames int
}

func newDemo(cfg *config.Config, out io.Writer) *demo {
	return &demo{
		cfg:    cfg,
		out:    out,
		logger: slog.Default(),
		clock:  clock.Real(),
		hooks:  []toaster.Hook{telemetry.OpenTelemetry()},
		script: demoScript(cfg),
	}
}

// demoScript enqueues through the registry installed in ctx, the way a
// component deep in a view tree would.
func demoScript(cfg *config.Config) []step {
	var saved toast.ID

	return []step{
		{0, func(ctx context.Context) {
			toaster.Expect(ctx).Toast(cfg.Builder("Welcome back").WithPosition(toast.TopLeft))
		}},
		{300 * time.Millisecond, func(ctx context.Context) {
			saved = toaster.Expect(ctx).Toast(cfg.Builder("Draft saved").
				WithLevel(toast.Success).
				WithPosition(toast.TopRight))
		}},
		{600 * time.Millisecond, func(ctx context.Context) {
			toaster.Expect(ctx).Toast(cfg.Builder("Disk almost full").
				WithLevel(toast.Warn).
				WithPosition(toast.BottomRight).
				WithExpiry(4 * time.Second))
		}},
		{900 * time.Millisecond, func(ctx context.Context) {
			toaster.Expect(ctx).Toast(cfg.Builder("Upload failed").
				WithLevel(toast.Error).
				WithDismissable(false))
		}},
		{1200 * time.Millisecond, func(ctx context.Context) {
			toaster.Expect(ctx).Toast(cfg.Builder("Sync paused").
				WithPosition(toast.TopLeft).
				WithExpiry(toast.NoExpiry))
		}},
		{1500 * time.Millisecond, func(ctx context.Context) {
			toaster.Expect(ctx).Dismiss(saved)
		}},
		{3000 * time.Millisecond, func(ctx context.Context) {
			toaster.Expect(ctx).Clear()
		}},
	}
}

// run drives the script on a single loop goroutine. Timer callbacks are
// dispatched onto the loop so every registry mutation and every frame
// happens on it.
func (d *demo) run(ctx context.Context) error {
	loop := make(chan func(), 64)

	opts := append(d.cfg.ToasterOptions(),
		toaster.WithClock(d.clock),
		toaster.WithLogger(d.logger),
		toaster.WithHooks(d.hooks...),
		toaster.WithDispatcher(func(fn func()) { loop <- fn }),
	)
	reg := toaster.New(opts...)
	ctx = toaster.Provide(ctx, reg)
	mode := d.cfg.ProjectionMode()

	unsubscribe := reg.Toasts().Subscribe(func() {
		d.render(reg, mode)
	})
	defer unsubscribe()

	remaining := len(d.script)
	for _, s := range d.script {
		s := s
		d.clock.AfterFunc(s.at, func() {
			loop <- func() {
				s.run(ctx)
				remaining--
			}
		})
	}

	d.logger.Info("demo started", "steps", remaining, "mode", mode.String())
	for remaining > 0 || reg.Stats().Visible > 0 {
		select {
		case <-ctx.Done():
			d.logger.Info("demo interrupted")
			return nil
		case fn := <-loop:
			fn()
		}
	}

	stats := reg.Stats()
	d.logger.Info("demo finished", "total", stats.Total, "frames", d.frames)
	return nil
}

func (d *demo) render(reg *toaster.Toaster, mode toaster.Mode) {
	d.frames++
	stats := reg.Stats()

	fmt.Fprintf(d.out, "── frame %d · visible %d · total %d\n", d.frames, stats.Visible, stats.Total)
	for _, pos := range toaster.Corners {
		fmt.Fprintf(d.out, "  %-13s %s\n", pos, formatCorner(reg.Project(pos, mode), func(id toast.ID) bool {
			state, _ := reg.State(id)
			return state == toaster.StateClearing
		}))
	}
}

// formatCorner renders one corner queue on a single line.
func formatCorner(toasts []toast.Toast, clearing func(toast.ID) bool) string {
	if len(toasts) == 0 {
		return "·"
	}

	parts := make([]string, len(toasts))
	for i, t := range toasts {
		var b strings.Builder
		fmt.Fprintf(&b, "#%d [%s] %s", t.ID, t.Level, t.Message)
		if !t.Expires() {
			b.WriteString(" ∞")
		}
		if !t.Dismissable {
			b.WriteString(" (pinned)")
		}
		if clearing != nil && clearing(t.ID) {
			b.WriteString(" (leaving)")
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, "  ")
}

// printMetrics writes counter and gauge samples from g.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, f := range families {
		for _, m := range f.GetMetric() {
			value, ok := sampleValue(f.GetType(), m)
			if !ok {
				continue
			}
			lines = append(lines, fmt.Sprintf("  %s%s %g", f.GetName(), formatLabels(m.GetLabel()), value))
		}
	}
	sort.Strings(lines)

	fmt.Fprintln(w, "── metrics")
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}

func sampleValue(kind dto.MetricType, m *dto.Metric) (float64, bool) {
	switch kind {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue(), true
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue(), true
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount()), true
	}
	return 0, false
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprintf("%s=%q", l.GetName(), l.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}

package telemetry

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vango-dev/toaster/pkg/toaster"
)

// MetricsConfig configures the Prometheus hook.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "toaster").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for toast lifetime in seconds.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus hook.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the lifetime histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "toaster",
		Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 300},
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics is a toaster.Hook that records lifecycle metrics.
type Metrics struct {
	enqueued *prometheus.CounterVec
	cleared  *prometheus.CounterVec
	removed  prometheus.Counter
	visible  prometheus.Gauge
	lifetime prometheus.Histogram
}

var _ toaster.Hook = (*Metrics)(nil)

// Prometheus creates a hook that records toast metrics. Calling it twice
// against the same registry reuses the collectors registered first, so
// several registries can share one set of series.
func Prometheus(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}

	reg := config.Registry
	return &Metrics{
		enqueued: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_enqueued_total",
			Help:        "Total number of toasts enqueued",
			ConstLabels: config.ConstLabels,
		}, []string{"level", "position"})),

		cleared: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_cleared_total",
			Help:        "Total number of toasts that started clearing, by reason",
			ConstLabels: config.ConstLabels,
		}, []string{"reason"})),

		removed: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_removed_total",
			Help:        "Total number of toasts removed",
			ConstLabels: config.ConstLabels,
		})),

		visible: register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_visible",
			Help:        "Number of toasts not yet removed",
			ConstLabels: config.ConstLabels,
		})),

		lifetime: register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toast_lifetime_seconds",
			Help:        "Time from enqueue to removal in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		})),
	}
}

// OnEvent implements toaster.Hook.
func (m *Metrics) OnEvent(e toaster.Event) {
	switch e.Kind {
	case toaster.EventEnqueued:
		m.enqueued.WithLabelValues(e.Toast.Level.String(), e.Toast.Position.String()).Inc()
		m.visible.Set(float64(e.Stats.Visible))

	case toaster.EventClearing:
		m.cleared.WithLabelValues(e.Reason.String()).Inc()

	case toaster.EventRemoved:
		m.removed.Inc()
		m.visible.Set(float64(e.Stats.Visible))
		if !e.Toast.CreatedAt.IsZero() {
			m.lifetime.Observe(e.At.Sub(e.Toast.CreatedAt).Seconds())
		}
	}
}

// register registers c, or returns the collector already registered under
// the same descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

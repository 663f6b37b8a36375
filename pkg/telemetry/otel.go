package telemetry

import (
	"context"
	"fmt"
	"sync"

	"github.com/vango-dev/toaster/pkg/toast"
	"github.com/vango-dev/toaster/pkg/toaster"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for toaster spans.
const defaultTracerName = "toaster"

// OTelConfig configures the OpenTelemetry hook.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "toaster").
	TracerName string

	// Tracer overrides the tracer resolved from the global provider.
	Tracer trace.Tracer

	// IncludeMessage records the toast message as a span attribute.
	// Messages may contain user data - disabled by default.
	IncludeMessage bool

	// AttributeExtractor adds custom attributes to every toast span.
	AttributeExtractor func(t toast.Toast) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry hook.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracer sets the tracer directly.
func WithTracer(tracer trace.Tracer) OTelOption {
	return func(c *OTelConfig) {
		c.Tracer = tracer
	}
}

// WithIncludeMessage enables recording the toast message.
func WithIncludeMessage(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeMessage = include
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(t toast.Toast) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// Tracing is a toaster.Hook that keeps one span open per visible toast.
type Tracing struct {
	config OTelConfig
	tracer trace.Tracer

	mu    sync.Mutex
	spans map[toast.ID]trace.Span
}

var _ toaster.Hook = (*Tracing)(nil)

// OpenTelemetry creates a tracing hook. The tracer comes from the global
// OpenTelemetry provider unless WithTracer is given; configure the provider
// in main() before creating the registry.
func OpenTelemetry(opts ...OTelOption) *Tracing {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	tracer := config.Tracer
	if tracer == nil {
		tracer = otel.Tracer(config.TracerName)
	}

	return &Tracing{
		config: config,
		tracer: tracer,
		spans:  make(map[toast.ID]trace.Span),
	}
}

// OnEvent implements toaster.Hook.
func (t *Tracing) OnEvent(e toaster.Event) {
	switch e.Kind {
	case toaster.EventEnqueued:
		t.start(e)

	case toaster.EventClearing:
		if span := t.SpanFor(e.Toast.ID); span != nil {
			span.AddEvent("toast.clearing",
				trace.WithAttributes(attribute.String("toast.clear_reason", e.Reason.String())),
				trace.WithTimestamp(e.At),
			)
		}

	case toaster.EventRemoved:
		t.mu.Lock()
		span, ok := t.spans[e.Toast.ID]
		delete(t.spans, e.Toast.ID)
		t.mu.Unlock()
		if !ok {
			return
		}

		span.SetAttributes(attribute.String("toast.clear_reason", e.Reason.String()))
		span.SetStatus(codes.Ok, "")
		span.End(trace.WithTimestamp(e.At))
	}
}

func (t *Tracing) start(e toaster.Event) {
	rec := e.Toast
	attrs := []attribute.KeyValue{
		attribute.Int64("toast.id", int64(rec.ID)),
		attribute.String("toast.level", rec.Level.String()),
		attribute.String("toast.position", rec.Position.String()),
		attribute.Bool("toast.dismissable", rec.Dismissable),
		attribute.Bool("toast.expires", rec.Expires()),
	}
	if rec.Expires() {
		attrs = append(attrs, attribute.Int64("toast.expiry_ms", rec.Expiry.Milliseconds()))
	}
	if t.config.IncludeMessage {
		attrs = append(attrs, attribute.String("toast.message", rec.Message))
	}
	if t.config.AttributeExtractor != nil {
		attrs = append(attrs, t.config.AttributeExtractor(rec)...)
	}

	_, span := t.tracer.Start(
		context.Background(),
		fmt.Sprintf("toast %s", rec.Level),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
		trace.WithTimestamp(e.At),
	)

	t.mu.Lock()
	t.spans[rec.ID] = span
	t.mu.Unlock()
}

// SpanFor returns the open span of a visible toast, or nil.
func (t *Tracing) SpanFor(id toast.ID) trace.Span {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.spans[id]
}

// ContextFor returns parent carrying the toast's span, for propagating the
// trace into work started on behalf of the toast.
func (t *Tracing) ContextFor(parent context.Context, id toast.ID) context.Context {
	if span := t.SpanFor(id); span != nil {
		return trace.ContextWithSpan(parent, span)
	}
	return parent
}

package telemetry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vango-dev/toaster/pkg/clock"
	"github.com/vango-dev/toaster/pkg/toast"
	"github.com/vango-dev/toaster/pkg/toaster"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type recordingSpan struct {
	noop.Span

	mu     sync.Mutex
	name   string
	start  time.Time
	attrs  []attribute.KeyValue
	events []string
	status codes.Code
	end    time.Time
	ended  bool
}

func (s *recordingSpan) AddEvent(name string, _ ...trace.EventOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, name)
}

func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, kv...)
}

func (s *recordingSpan) SetStatus(code codes.Code, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = code
}

func (s *recordingSpan) End(opts ...trace.SpanEndOption) {
	cfg := trace.NewSpanEndConfig(opts...)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended = true
	s.end = cfg.Timestamp()
}

func (s *recordingSpan) attr(key attribute.Key) (attribute.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.attrs) - 1; i >= 0; i-- {
		if s.attrs[i].Key == key {
			return s.attrs[i].Value, true
		}
	}
	return attribute.Value{}, false
}

type recordingTracer struct {
	noop.Tracer

	mu    sync.Mutex
	spans []*recordingSpan
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	s := &recordingSpan{name: name, start: cfg.Timestamp(), attrs: cfg.Attributes()}
	r.mu.Lock()
	r.spans = append(r.spans, s)
	r.mu.Unlock()
	return trace.ContextWithSpan(ctx, s), s
}

func TestOpenTelemetrySpanPerToast(t *testing.T) {
	c := clock.NewFake(epoch)
	tracer := &recordingTracer{}
	tr := OpenTelemetry(WithTracer(tracer))
	reg := toaster.New(toaster.WithClock(c), toaster.WithHooks(tr))

	id := reg.Toast(toast.New("hello").WithLevel(toast.Warn).WithExpiry(100 * time.Millisecond))

	require.Len(t, tracer.spans, 1)
	span := tracer.spans[0]
	assert.Equal(t, "toast warn", span.name)
	assert.Equal(t, epoch, span.start)
	assert.Same(t, span, tr.SpanFor(id))

	v, ok := span.attr("toast.id")
	require.True(t, ok)
	assert.Equal(t, int64(id), v.AsInt64())
	v, _ = span.attr("toast.expiry_ms")
	assert.Equal(t, int64(100), v.AsInt64())
	_, ok = span.attr("toast.message")
	assert.False(t, ok)

	c.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"toast.clearing"}, span.events)
	assert.False(t, span.ended)

	c.Advance(toaster.DefaultExitDuration)
	assert.True(t, span.ended)
	assert.Equal(t, codes.Ok, span.status)
	assert.Equal(t, epoch.Add(300*time.Millisecond), span.end)
	v, _ = span.attr("toast.clear_reason")
	assert.Equal(t, "expired", v.AsString())
	assert.Nil(t, tr.SpanFor(id))
}

func TestOpenTelemetryOptions(t *testing.T) {
	tracer := &recordingTracer{}
	tr := OpenTelemetry(
		WithTracer(tracer),
		WithIncludeMessage(true),
		WithAttributeExtractor(func(t toast.Toast) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("app.area", "billing")}
		}),
	)

	rec := toast.New("paid").WithExpiry(toast.NoExpiry).Build(7)
	tr.OnEvent(toaster.Event{Kind: toaster.EventEnqueued, Toast: rec, At: epoch})

	span := tracer.spans[0]
	v, ok := span.attr("toast.message")
	require.True(t, ok)
	assert.Equal(t, "paid", v.AsString())
	v, _ = span.attr("app.area")
	assert.Equal(t, "billing", v.AsString())
	v, _ = span.attr("toast.expires")
	assert.False(t, v.AsBool())
	_, ok = span.attr("toast.expiry_ms")
	assert.False(t, ok)
}

func TestOpenTelemetryContextFor(t *testing.T) {
	tracer := &recordingTracer{}
	tr := OpenTelemetry(WithTracer(tracer))
	parent := context.Background()

	assert.Equal(t, parent, tr.ContextFor(parent, 1))

	tr.OnEvent(toaster.Event{Kind: toaster.EventEnqueued, Toast: toast.New("x").Build(1), At: epoch})
	ctx := tr.ContextFor(parent, 1)
	assert.Same(t, tracer.spans[0], trace.SpanFromContext(ctx))
}

func TestOpenTelemetryIgnoresUnknownToasts(t *testing.T) {
	tr := OpenTelemetry(WithTracer(&recordingTracer{}))
	assert.NotPanics(t, func() {
		tr.OnEvent(toaster.Event{Kind: toaster.EventClearing, Toast: toast.New("x").Build(9)})
		tr.OnEvent(toaster.Event{Kind: toaster.EventRemoved, Toast: toast.New("x").Build(9)})
	})
}

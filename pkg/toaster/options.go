package toaster

import (
	"log/slog"
	"time"

	"github.com/vango-dev/toaster/pkg/clock"
)

// DefaultExitDuration is the length of the exit animation a clearing toast
// is given before it is removed.
const DefaultExitDuration = 200 * time.Millisecond

// Options configures a Toaster.
type Options struct {
	// Clock schedules expiry and exit timers (default: clock.Real()).
	Clock clock.Clock

	// ExitDuration is the wait between a toast starting to clear and its
	// removal (default: DefaultExitDuration).
	ExitDuration time.Duration

	// Logger is the structured logger (default: slog.Default()).
	Logger *slog.Logger

	// Hooks observe lifecycle events.
	Hooks []Hook

	// Dispatch runs timer callbacks. Hosts with a single UI loop pass a
	// function that queues onto it. The default runs callbacks inline.
	Dispatch func(func())
}

// Option configures a Toaster.
type Option func(*Options)

// WithClock sets the clock used for expiry and exit timers.
func WithClock(c clock.Clock) Option {
	return func(o *Options) {
		o.Clock = c
	}
}

// WithExitDuration sets the exit-animation wait. Negative values are
// treated as zero.
func WithExitDuration(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.ExitDuration = d
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithHooks appends lifecycle hooks.
func WithHooks(hooks ...Hook) Option {
	return func(o *Options) {
		o.Hooks = append(o.Hooks, hooks...)
	}
}

// WithDispatcher sets the function timer callbacks are funneled through.
func WithDispatcher(dispatch func(func())) Option {
	return func(o *Options) {
		o.Dispatch = dispatch
	}
}

func defaultOptions() Options {
	return Options{
		Clock:        clock.Real(),
		ExitDuration: DefaultExitDuration,
		Dispatch:     func(fn func()) { fn() },
	}
}

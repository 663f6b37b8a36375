package toast

import "time"

// Builder collects toast parameters. Builders are values: every With
// method returns a modified copy and never touches the receiver.
type Builder struct {
	message string

	level       Level
	dismissable bool
	expiry      time.Duration
	progress    bool
	position    Position
}

// New returns a builder for message with the default parameters: Info,
// dismissable, DefaultExpiry, progress bar on, BottomLeft.
func New(message string) Builder {
	return Builder{
		message:     message,
		level:       Info,
		dismissable: true,
		expiry:      DefaultExpiry,
		progress:    true,
		position:    BottomLeft,
	}
}

// WithLevel sets the level of the toast.
func (b Builder) WithLevel(level Level) Builder {
	b.level = level
	return b
}

// WithDismissable sets whether a click may clear the toast early.
func (b Builder) WithDismissable(dismissable bool) Builder {
	b.dismissable = dismissable
	return b
}

// WithExpiry sets how long the toast stays before clearing itself.
// NoExpiry (or any negative duration) keeps it until cleared; zero expires
// on the next tick.
func (b Builder) WithExpiry(expiry time.Duration) Builder {
	if expiry < 0 {
		expiry = NoExpiry
	}
	b.expiry = expiry
	return b
}

// WithProgress shows or hides the countdown indicator.
func (b Builder) WithProgress(progress bool) Builder {
	b.progress = progress
	return b
}

// WithPosition sets the corner the toast is queued in.
func (b Builder) WithPosition(position Position) Builder {
	b.position = position
	return b
}

// Message returns the message the builder was created with.
func (b Builder) Message() string {
	return b.message
}

// Build produces the toast with the given ID. Each call allocates a fresh
// clear signal, so two toasts built from one builder never share one.
func (b Builder) Build(id ID) Toast {
	return Toast{
		ID:          id,
		Message:     b.message,
		Level:       b.level,
		Dismissable: b.dismissable,
		Expiry:      b.expiry,
		Progress:    b.progress,
		Position:    b.position,
		Clear:       NewClearSignal(),
	}
}

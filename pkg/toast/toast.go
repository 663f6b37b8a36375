package toast

import (
	"fmt"
	"time"
)

// ID identifies a toast within one registry. IDs start at 1, increase
// monotonically, and are never reused.
type ID = uint64

// Level is the presentational severity of a toast.
type Level uint8

const (
	Info Level = iota
	Success
	Warn
	Error
)

var levelNames = [...]string{
	Info:    "info",
	Success: "success",
	Warn:    "warn",
	Error:   "error",
}

// String returns the lowercase level name.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("level(%d)", uint8(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if int(l) >= len(levelNames) {
		return nil, fmt.Errorf("toast: invalid level %d", uint8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses "info", "success", "warn" (or "warning") and "error".
func ParseLevel(s string) (Level, error) {
	switch s {
	case "info":
		return Info, nil
	case "success":
		return Success, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	}
	return Info, fmt.Errorf("toast: unknown level %q", s)
}

// Position is the screen corner a toast is queued in.
type Position uint8

const (
	TopLeft Position = iota
	TopRight
	BottomRight
	BottomLeft
)

var positionNames = [...]string{
	TopLeft:     "top-left",
	TopRight:    "top-right",
	BottomRight: "bottom-right",
	BottomLeft:  "bottom-left",
}

// String returns the kebab-case corner name.
func (p Position) String() string {
	if int(p) < len(positionNames) {
		return positionNames[p]
	}
	return fmt.Sprintf("position(%d)", uint8(p))
}

// IsTop reports whether the corner is anchored at the top of the screen.
func (p Position) IsTop() bool {
	return p == TopLeft || p == TopRight
}

// IsLeft reports whether the corner is on the left edge, which is the edge
// the toast slides in from.
func (p Position) IsLeft() bool {
	return p == TopLeft || p == BottomLeft
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	if int(p) >= len(positionNames) {
		return nil, fmt.Errorf("toast: invalid position %d", uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePosition parses the kebab-case corner names returned by String.
func ParsePosition(s string) (Position, error) {
	for i, name := range positionNames {
		if name == s {
			return Position(i), nil
		}
	}
	return BottomLeft, fmt.Errorf("toast: unknown position %q", s)
}

// NoExpiry disables self-expiry. Any negative duration has the same meaning.
const NoExpiry time.Duration = -1

// DefaultExpiry is the expiry a new Builder starts with.
const DefaultExpiry = 2500 * time.Millisecond

// Toast is one notification. Every field is fixed at build time except the
// shared Clear signal; copies of a Toast share the same signal.
type Toast struct {
	ID      ID     `json:"id"`
	Message string `json:"message"`

	Level       Level         `json:"level"`
	Dismissable bool          `json:"dismissable"`
	Expiry      time.Duration `json:"expiry"`
	Progress    bool          `json:"progress"`
	Position    Position      `json:"position"`

	// CreatedAt is stamped by the registry at enqueue.
	CreatedAt time.Time `json:"createdAt"`

	Clear *ClearSignal `json:"-"`
}

// Expires reports whether the toast clears itself after Expiry.
func (t Toast) Expires() bool {
	return t.Expiry >= 0
}

// ShowsProgress reports whether a countdown indicator should be drawn.
// A progress bar without an expiry is treated as no progress bar.
func (t Toast) ShowsProgress() bool {
	return t.Progress && t.Expires()
}

// Dismiss is the user-interaction path: it triggers the clear signal unless
// the toast is not dismissable. It reports whether this call started the
// exit transition.
func (t Toast) Dismiss() bool {
	if !t.Dismissable || t.Clear == nil {
		return false
	}
	return t.Clear.Trigger(ReasonDismissed)
}

// Clearing reports whether the exit transition has started.
func (t Toast) Clearing() bool {
	return t.Clear != nil && t.Clear.Peek()
}

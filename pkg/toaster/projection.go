package toaster

import (
	"fmt"

	"github.com/vango-dev/toaster/pkg/toast"
)

// Mode selects how a corner queue is ordered for presentation.
type Mode uint8

const (
	// ModeStacked keeps the newest toast nearest the screen edge: top
	// corners are reversed, bottom corners keep insertion order.
	ModeStacked Mode = iota

	// ModeList keeps insertion order in every corner.
	ModeList
)

func (m Mode) String() string {
	if m == ModeList {
		return "list"
	}
	return "stacked"
}

// ParseMode parses "stacked" or "list". The empty string is ModeStacked.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "stacked":
		return ModeStacked, nil
	case "list":
		return ModeList, nil
	}
	return ModeStacked, fmt.Errorf("toaster: unknown mode %q", s)
}

// Corners lists the four positions in the order containers are rendered.
var Corners = [...]toast.Position{
	toast.TopLeft,
	toast.TopRight,
	toast.BottomRight,
	toast.BottomLeft,
}

// Project returns the toasts queued at pos, ordered for mode. The input is
// never modified.
func Project(toasts []toast.Toast, pos toast.Position, mode Mode) []toast.Toast {
	out := make([]toast.Toast, 0, len(toasts))
	for _, t := range toasts {
		if t.Position == pos {
			out = append(out, t)
		}
	}

	if mode == ModeStacked && pos.IsTop() {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// IsEmpty reports whether no toast is queued at pos.
func IsEmpty(toasts []toast.Toast, pos toast.Position) bool {
	for _, t := range toasts {
		if t.Position == pos {
			return false
		}
	}
	return true
}

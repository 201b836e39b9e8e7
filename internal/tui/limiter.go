package tui

import (
	"errors"

	"github.com/nikbrunner/bmcar/internal/screen"
	"github.com/nikbrunner/bmcar/internal/tui/layout"
)

var errNoTerminalSize = errors.New("terminal size not known yet")

// TerminalLimiter answers list limits from the current terminal height.
type TerminalLimiter struct {
	height int
	cfg    layout.PaneConfig
}

// NewTerminalLimiter creates a limiter that knows no size yet.
func NewTerminalLimiter(cfg layout.PaneConfig) *TerminalLimiter {
	return &TerminalLimiter{cfg: cfg}
}

// SetHeight records the terminal height.
func (t *TerminalLimiter) SetHeight(height int) {
	t.height = height
}

// ContentLimit implements screen.ContentLimiter.
func (t *TerminalLimiter) ContentLimit(screen.ListKind) (int, error) {
	if t.height <= 0 {
		return 0, errNoTerminalSize
	}
	return layout.ListCapacity(t.height, t.cfg), nil
}

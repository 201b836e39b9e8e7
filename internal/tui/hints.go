package tui

import (
	"strings"

	"github.com/nikbrunner/bmcar/internal/screen"
)

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "l")
	Desc string // Short description (e.g., "move", "open")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, h/l)
	Action []Hint // Action hints (y, r)
	System []Hint // System hints (?, q)
}

// All returns all hints flattened in display order: Nav + Action + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.System...)
	return result
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "j/k:move h:back l:open"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// getContextualHints returns the hints for the current screen.
func (a App) getContextualHints() HintSet {
	if a.showHelp {
		return HintSet{System: []Hint{{"?/esc", "close"}}}
	}

	top := a.stack.Top()
	if top == nil {
		return HintSet{System: []Hint{{"q", "quit"}}}
	}

	hints := HintSet{
		Nav:    []Hint{{"j/k", "move"}},
		System: []Hint{{"r", "reload"}, {"?", "help"}, {"q", "quit"}},
	}

	switch top.State().Level {
	case screen.CategoryBrowsing:
		hints.Nav = append(hints.Nav, Hint{"l", "open"})
	case screen.BookmarkBrowsing:
		hints.Nav = append(hints.Nav, Hint{"h", "back"}, Hint{"l", "show on map"})
		if _, ok := a.mapPane.Focused(); ok {
			hints.Action = append(hints.Action, Hint{"y", "copy coords"})
		}
	}

	return hints
}

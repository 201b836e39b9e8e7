package layout

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleWidth returns the display width of a string, excluding ANSI codes
// and counting wide runes as two cells.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// TruncateText truncates text to maxWidth display cells with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", text != ""
	}

	if runewidth.StringWidth(text) <= maxWidth {
		return text, false
	}

	if runewidth.StringWidth(cfg.Ellipsis) >= maxWidth {
		// Not enough room for any text, just return truncated ellipsis
		return runewidth.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}

	return runewidth.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// TruncateFromLeft keeps the end of text, which for a breadcrumb is the
// most specific part.
func TruncateFromLeft(text string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := runewidth.StringWidth(cfg.Ellipsis)
	if ellipsisWidth >= maxWidth {
		return runewidth.Truncate(cfg.Ellipsis, maxWidth, "")
	}

	runes := []rune(text)
	width := ellipsisWidth
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if width+w > maxWidth {
			break
		}
		width += w
		start--
	}
	return cfg.Ellipsis + string(runes[start:])
}

// TruncateANSIAware truncates styled text to maxWidth display cells,
// preserving escape sequences.
func TruncateANSIAware(styledText string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(styledText) <= maxWidth {
		return styledText
	}
	return ansi.Truncate(styledText, maxWidth, cfg.Ellipsis)
}

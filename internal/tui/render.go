package tui

import (
	"strings"

	"github.com/nikbrunner/bmcar/internal/surface"
	"github.com/nikbrunner/bmcar/internal/tui/layout"
)

// ListRenderer draws a surface template into the list pane.
type ListRenderer struct {
	Styles  Styles
	Text    layout.TextConfig
	Width   int
	Height  int // 0 = unlimited
	Cursor  int
	Empty   string
	RowSize int
}

var _ surface.Renderer = ListRenderer{}

// Render implements surface.Renderer.
func (r ListRenderer) Render(t surface.Template) string {
	var lines []string

	title := t.Header.Title
	prefix := ""
	if t.Header.StartAction == surface.HeaderBack {
		prefix = "‹ "
	}
	lines = append(lines, r.Styles.Title.Render(r.fit(prefix+title, r.Width)), "")

	rows := t.List.Rows
	if len(rows) == 0 {
		lines = append(lines, r.Styles.Empty.Render(r.fit(r.Empty, r.Width)))
		return strings.Join(lines, "\n")
	}

	start, end := 0, len(rows)
	if r.Height > 0 && r.RowSize > 0 {
		visible := (r.Height - len(lines)) / r.RowSize
		if visible < 1 {
			visible = 1
		}
		start = layout.CalculateViewportOffset(r.Cursor, len(rows), visible)
		end = min(start+visible, len(rows))
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(rows[i], i == r.Cursor)...)
	}

	return strings.Join(lines, "\n")
}

func (r ListRenderer) renderRow(row surface.Row, selected bool) []string {
	width := r.Width

	marker := "  "
	if selected {
		marker = "▸ "
	}

	var head strings.Builder
	head.WriteString(marker)
	used := layout.VisibleWidth(marker)
	if row.Image != nil && row.Image.Rendered != "" {
		head.WriteString(row.Image.Rendered)
		head.WriteString(" ")
		used += layout.VisibleWidth(row.Image.Rendered) + 1
	}

	suffix := ""
	if row.Browsable {
		suffix = " ›"
	}
	titleWidth := width - used - layout.VisibleWidth(suffix)

	style := r.Styles.Item
	if selected {
		style = r.Styles.ItemSelected
	}
	head.WriteString(style.Render(r.fit(row.Title, titleWidth) + suffix))

	lines := []string{head.String()}
	for _, text := range row.Texts {
		lines = append(lines, "    "+r.renderText(text, width-4))
	}
	return lines
}

// renderText styles each span and stops once the width is used up.
func (r ListRenderer) renderText(t surface.Text, width int) string {
	var b strings.Builder
	remaining := width
	for _, span := range t {
		if remaining <= 0 {
			break
		}
		text, truncated := layout.TruncateText(span.Text, remaining, r.Text)
		remaining -= layout.VisibleWidth(text)

		style := r.Styles.Secondary
		if span.Style == surface.StyleDistance {
			style = r.Styles.Distance
		}
		b.WriteString(style.Render(text))
		if truncated {
			break
		}
	}
	return b.String()
}

func (r ListRenderer) fit(s string, width int) string {
	out, _ := layout.TruncateText(s, width, r.Text)
	return out
}

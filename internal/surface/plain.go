package surface

import (
	"fmt"
	"io"
	"strings"
)

// PlainRenderer renders templates as plain text, one row block per item.
//
//	< Header
//	> Browsable row
//	    secondary line
//	  [img] Bookmark row
//	    secondary line
type PlainRenderer struct {
	// Empty is printed when the list has no rows.
	Empty string
}

// Render implements Renderer.
func (p PlainRenderer) Render(t Template) string {
	var b strings.Builder
	p.write(&b, t)
	return b.String()
}

// Write renders t to w.
func (p PlainRenderer) Write(w io.Writer, t Template) error {
	_, err := io.WriteString(w, p.Render(t))
	return err
}

func (p PlainRenderer) write(b *strings.Builder, t Template) {
	if t.Header.StartAction == HeaderBack {
		b.WriteString("< ")
	}
	b.WriteString(t.Header.Title)
	b.WriteString("\n")

	if t.List.Len() == 0 && p.Empty != "" {
		fmt.Fprintf(b, "  (%s)\n", p.Empty)
		return
	}

	for _, row := range t.List.Rows {
		marker := "  "
		if row.Browsable {
			marker = "> "
		}
		b.WriteString(marker)
		if row.Image != nil && row.Image.Alt != "" {
			fmt.Fprintf(b, "[%s] ", row.Image.Alt)
		}
		b.WriteString(row.Title)
		b.WriteString("\n")

		for _, text := range row.Texts {
			b.WriteString("    ")
			b.WriteString(plainLine(text))
			b.WriteString("\n")
		}
	}
}

// plainLine writes distance spans in angle brackets so they stay visible
// without colour.
func plainLine(t Text) string {
	var b strings.Builder
	for _, span := range t {
		if span.Style == StyleDistance {
			fmt.Fprintf(&b, "<%s>", span.Text)
			continue
		}
		b.WriteString(span.Text)
	}
	return b.String()
}

package tui_test

import (
	"testing"

	"github.com/nikbrunner/bmcar/internal/surface"
	"github.com/nikbrunner/bmcar/internal/tui"
	"github.com/nikbrunner/bmcar/internal/tui/layout"
	"gotest.tools/v3/assert"
)

func testRenderer(width, cursor int) tui.ListRenderer {
	return tui.ListRenderer{
		Styles: tui.DefaultStyles(),
		Text:   layout.DefaultConfig().Text,
		Width:  width,
		Cursor: cursor,
		Empty:  "No bookmarks",
	}
}

func bookmarkTemplate() surface.Template {
	return surface.Template{
		Header: surface.NewHeader("Food"),
		List: surface.ItemList{Rows: []surface.Row{
			surface.NewRow(surface.NewRowParams{
				Title: "Cafe Luna",
				Texts: []surface.Text{
					surface.PlainText("12 Main St"),
					surface.DistanceText("350 m").Append(" • Cafe"),
				},
				Image: &surface.Image{Rendered: "[C]", Alt: "C"},
			}),
			surface.NewRow(surface.NewRowParams{Title: "Noodle Bar"}),
		}},
	}
}

func TestListRenderer_Bookmarks(t *testing.T) {
	got := layout.StripANSI(testRenderer(40, 1).Render(bookmarkTemplate()))

	want := "‹ Food\n" +
		"\n" +
		"  [C] Cafe Luna\n" +
		"    12 Main St\n" +
		"    350 m • Cafe\n" +
		"▸ Noodle Bar"
	assert.Equal(t, got, want)
}

func TestListRenderer_BrowsableTruncated(t *testing.T) {
	tmpl := surface.Template{
		Header: surface.NewHeader("Bookmarks"),
		List: surface.ItemList{Rows: []surface.Row{
			surface.NewRow(surface.NewRowParams{
				Title:     "Very long collection name",
				Texts:     []surface.Text{surface.PlainText("")},
				Browsable: true,
			}),
		}},
	}

	got := layout.StripANSI(testRenderer(12, 5).Render(tmpl))

	assert.Equal(t, got, "‹ Bookmarks\n\n  Very ... ›\n    ")
}

func TestListRenderer_Empty(t *testing.T) {
	tmpl := surface.Template{Header: surface.NewHeader("Food")}

	got := layout.StripANSI(testRenderer(40, 0).Render(tmpl))

	assert.Equal(t, got, "‹ Food\n\nNo bookmarks")
}

func TestListRenderer_ScrollsToCursor(t *testing.T) {
	r := testRenderer(40, 1)
	r.Height = 5 // header (2) + one row of three lines
	r.RowSize = 3

	got := layout.StripANSI(r.Render(bookmarkTemplate()))

	assert.Equal(t, got, "‹ Food\n\n▸ Noodle Bar")
}

func TestListRenderer_SecondaryTruncated(t *testing.T) {
	got := layout.StripANSI(testRenderer(14, 1).Render(bookmarkTemplate()))

	// Secondary lines get the width minus their indent
	assert.Equal(t, got, "‹ Food\n"+
		"\n"+
		"  [C] Cafe ...\n"+
		"    12 Main St\n"+
		"    350 m •...\n"+
		"▸ Noodle Bar")
}

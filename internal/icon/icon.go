// Package icon rasterises bookmark icons into coloured terminal glyphs.
package icon

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/nikbrunner/bmcar/internal/surface"
)

// DefaultColor is used for unknown palette names.
const DefaultColor = "red"

// palette maps predefined bookmark colour names to hex values.
var palette = map[string]string{
	"red":        "#E51B23",
	"pink":       "#FF4182",
	"purple":     "#9B24B2",
	"deeppurple": "#6639BF",
	"blue":       "#0066CC",
	"lightblue":  "#249CF2",
	"cyan":       "#14BECD",
	"teal":       "#00A58C",
	"green":      "#3C8C3C",
	"lime":       "#93BF39",
	"yellow":     "#FFC800",
	"orange":     "#FF9600",
	"deeporange": "#F06432",
	"brown":      "#804633",
	"gray":       "#737373",
	"bluegray":   "#597380",
}

// symbols maps icon types to a single glyph drawn inside the circle.
var symbols = map[string]string{
	"food":          "F",
	"hotel":         "H",
	"shop":          "S",
	"sights":        "*",
	"museum":        "M",
	"park":          "P",
	"parking":       "p",
	"gas":           "G",
	"transport":     "T",
	"bar":           "B",
	"swim":          "~",
	"water":         "w",
	"mountain":      "^",
	"viewpoint":     "V",
	"medicine":      "+",
	"entertainment": "E",
	"sport":         "s",
	"animals":       "A",
	"building":      "#",
	"exchange":      "$",
}

// Color returns the hex colour for a palette name.
func Color(name string) string {
	if hex, ok := palette[normalize(name)]; ok {
		return hex
	}
	return palette[DefaultColor]
}

// Symbol returns the glyph for an icon type; plain circles use "o".
func Symbol(iconType string) string {
	if s, ok := symbols[normalize(iconType)]; ok {
		return s
	}
	return "o"
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// Renderer draws icons as a symbol on a coloured background.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderIcon implements the screen icon renderer.
func (r *Renderer) RenderIcon(ic model.Icon, style surface.IconStyle) surface.Image {
	symbol := Symbol(ic.Type)

	width := style.CircleSize
	if width < 1 {
		width = 1
	}

	s := lipgloss.NewStyle().
		Background(lipgloss.Color(Color(ic.Color))).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(style.Bold).
		Width(width).
		Align(lipgloss.Center)

	return surface.Image{
		Rendered: s.Render(symbol),
		Alt:      symbol,
	}
}

package icon_test

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/nikbrunner/bmcar/internal/icon"
	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/nikbrunner/bmcar/internal/surface"
)

func TestColor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"red", "#E51B23"},
		{"DeepPurple", "#6639BF"},
		{"light_blue", "#249CF2"},
		{"unknown", "#E51B23"},
		{"", "#E51B23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := icon.Color(tt.name); got != tt.want {
				t.Errorf("Color(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestSymbol(t *testing.T) {
	if got := icon.Symbol("Food"); got != "F" {
		t.Errorf("Symbol(Food) = %q", got)
	}
	if got := icon.Symbol(""); got != "o" {
		t.Errorf("Symbol(\"\") = %q", got)
	}
}

func TestRenderer_RenderIcon(t *testing.T) {
	r := icon.NewRenderer()

	img := r.RenderIcon(model.Icon{Color: "blue", Type: "museum"}, surface.IconStyle{CircleSize: 3})

	if img.Alt != "M" {
		t.Errorf("Alt = %q, want M", img.Alt)
	}
	if got := ansi.Strip(img.Rendered); got != " M " {
		t.Errorf("rendered text = %q, want %q", got, " M ")
	}
}

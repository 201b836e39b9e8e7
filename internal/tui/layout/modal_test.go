package layout

import "testing"

func TestOverlayWidth(t *testing.T) {
	cfg := DefaultConfig().Modal

	tests := []struct {
		name          string
		terminalWidth int
		contentWidth  int
		want          int
	}{
		{"short content uses min", 120, 10, 36},
		{"content plus padding", 120, 40, 44},
		{"wide content clamps to max", 200, 90, 60},
		{"narrow terminal keeps margin", 30, 40, 26},
		{"tiny terminal clamps to 1", 4, 40, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverlayWidth(tt.terminalWidth, tt.contentWidth, cfg)
			if got != tt.want {
				t.Errorf("OverlayWidth(%d, %d) = %d, want %d",
					tt.terminalWidth, tt.contentWidth, got, tt.want)
			}
		})
	}
}

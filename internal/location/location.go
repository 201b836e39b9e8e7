// Package location provides last-known device positions.
package location

import "github.com/nikbrunner/bmcar/internal/geo"

// Static is a fixed location, or none when Pos is nil.
type Static struct {
	Pos *geo.Position
}

// NewStatic returns a Static at pos. A nil pos means "no fix".
func NewStatic(pos *geo.Position) Static {
	return Static{Pos: pos}
}

// CurrentLocation implements the screen locator.
func (s Static) CurrentLocation() (geo.Position, bool) {
	if s.Pos == nil {
		return geo.Position{}, false
	}
	return *s.Pos, true
}

package screen

import (
	"github.com/nikbrunner/bmcar/internal/geo"
	"github.com/nikbrunner/bmcar/internal/locale"
	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/nikbrunner/bmcar/internal/surface"
)

// FeatureSeparator joins the distance and the feature label on one line.
const FeatureSeparator = " • "

// Description is the text content of a bookmark row.
type Description struct {
	Primary   string
	Secondary []surface.Text
}

// Formatter synthesises row text from a bookmark and the current location.
type Formatter struct {
	locale *locale.Localizer
	units  locale.Units
}

// NewFormatter creates a Formatter. A nil localizer means English.
func NewFormatter(l *locale.Localizer, units locale.Units) *Formatter {
	if l == nil {
		l = locale.New("en")
	}
	return &Formatter{locale: l, units: units}
}

// Describe returns the bookmark's title and secondary lines: the address when
// present, then the distance from here followed by the feature label.
//
// Without a location neither distance nor feature is shown, even when the
// bookmark has a feature label.
func (f *Formatter) Describe(b model.Bookmark, here *geo.Position) Description {
	d := Description{
		Primary:   b.Name,
		Secondary: []surface.Text{},
	}

	if b.Address != "" {
		d.Secondary = append(d.Secondary, surface.PlainText(b.Address))
	}

	if here == nil {
		return d
	}

	line := surface.DistanceText(f.locale.Distance(geo.Distance(*here, b.Position()), f.units))
	if b.Feature != "" {
		line = line.Append(FeatureSeparator + b.Feature)
	}
	d.Secondary = append(d.Secondary, line)

	return d
}

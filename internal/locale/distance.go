package locale

import (
	"fmt"
	"math"
	"strings"
)

// Units selects the measurement system for distances.
type Units int

const (
	Metric Units = iota
	Imperial
)

const (
	metresPerMile = 1609.344
	feetPerMetre  = 3.280839895
)

// ParseUnits maps a config value to Units. Anything but "imperial" is metric.
func ParseUnits(s string) Units {
	if strings.EqualFold(strings.TrimSpace(s), "imperial") {
		return Imperial
	}
	return Metric
}

// String implements fmt.Stringer.
func (u Units) String() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

// Distance formats a distance in metres for display.
//
// Metric: whole metres below 1 km, one decimal below 10 km, whole km above.
// Imperial: whole feet below 0.1 mi, one decimal below 10 mi, whole miles above.
func (l *Localizer) Distance(metres float64, units Units) string {
	if math.IsNaN(metres) || metres < 0 {
		metres = 0
	}

	if units == Imperial {
		miles := metres / metresPerMile
		if miles < 0.1 {
			return l.printer.Sprintf("%d ft", int(math.Round(metres*feetPerMetre)))
		}
		return l.large(miles, "mi")
	}

	if m := math.Round(metres); m < 1000 {
		return l.printer.Sprintf("%d m", int(m))
	}
	return l.large(metres/1000, "km")
}

func (l *Localizer) large(v float64, unit string) string {
	if tenths := math.Round(v*10) / 10; tenths < 10 {
		return l.printer.Sprintf(fmt.Sprintf("%%.1f %s", unit), tenths)
	}
	return l.printer.Sprintf(fmt.Sprintf("%%d %s", unit), int(math.Round(v)))
}

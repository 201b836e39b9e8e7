package screen_test

import (
	"strings"
	"testing"

	"github.com/nikbrunner/bmcar/internal/geo"
	"github.com/nikbrunner/bmcar/internal/locale"
	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/nikbrunner/bmcar/internal/screen"
	"github.com/nikbrunner/bmcar/internal/surface"
)

func lines(texts []surface.Text) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = t.String()
	}
	return out
}

func TestFormatter_Describe(t *testing.T) {
	f := screen.NewFormatter(locale.New("en"), locale.Metric)
	here := posPtr(52.52, 13.405)

	tests := []struct {
		name     string
		bookmark model.Bookmark
		here     *geo.Position
		want     []string
	}{
		{
			name:     "address distance and feature",
			bookmark: model.Bookmark{Name: "Cafe Luna", Address: "1 Main St", Feature: "Cafe", Lat: 52.52, Lon: 13.405},
			here:     here,
			want:     []string{"1 Main St", "0 m • Cafe"},
		},
		{
			name:     "no address",
			bookmark: model.Bookmark{Name: "Noodle Bar", Feature: "Restaurant", Lat: 52.53, Lon: 13.405},
			here:     here,
			want:     []string{"1.1 km • Restaurant"},
		},
		{
			name:     "no feature means no separator",
			bookmark: model.Bookmark{Name: "Bakery", Address: "3 Side St", Lat: 52.52, Lon: 13.42},
			here:     here,
			want:     []string{"3 Side St", "1.0 km"},
		},
		{
			name:     "no location hides distance and feature",
			bookmark: model.Bookmark{Name: "Cafe Luna", Address: "1 Main St", Feature: "Cafe"},
			here:     nil,
			want:     []string{"1 Main St"},
		},
		{
			name:     "nothing to show",
			bookmark: model.Bookmark{Name: "Bare", Feature: "Cafe"},
			here:     nil,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := f.Describe(tt.bookmark, tt.here)

			if d.Primary != tt.bookmark.Name {
				t.Errorf("Primary = %q, want %q", d.Primary, tt.bookmark.Name)
			}
			got := lines(d.Secondary)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("Secondary = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatter_NoLocationNeverHasDistanceSpan(t *testing.T) {
	f := screen.NewFormatter(nil, locale.Metric)

	for _, b := range sampleStore().Bookmarks {
		for _, line := range f.Describe(b, nil).Secondary {
			if line.HasStyle(surface.StyleDistance) {
				t.Errorf("bookmark %s: unexpected distance span in %q", b.ID, line.String())
			}
		}
	}
}

func TestFormatter_DistanceLineShape(t *testing.T) {
	f := screen.NewFormatter(nil, locale.Metric)
	here := posPtr(52.52, 13.405)

	with := f.Describe(model.Bookmark{Feature: "Museum", Lat: 52.52, Lon: 13.405}, here)
	last := with.Secondary[len(with.Secondary)-1]
	if len(last) != 2 || last[0].Style != surface.StyleDistance || last[1].Text != screen.FeatureSeparator+"Museum" {
		t.Errorf("unexpected distance line %#v", last)
	}
	if last.String() != last[0].Text+" • Museum" {
		t.Errorf("distance line = %q", last.String())
	}

	without := f.Describe(model.Bookmark{Lat: 52.52, Lon: 13.405}, here)
	line := without.Secondary[0]
	if len(line) != 1 || strings.Contains(line.String(), "•") {
		t.Errorf("expected bare distance, got %q", line.String())
	}
}

func TestFormatter_ImperialUnits(t *testing.T) {
	f := screen.NewFormatter(locale.New("en"), locale.Imperial)

	d := f.Describe(model.Bookmark{Lat: 0, Lon: 0}, posPtr(0, 0))
	if got := d.Secondary[0].String(); got != "0 ft" {
		t.Errorf("expected 0 ft, got %q", got)
	}
}

package screen

import (
	"io"
	"log/slog"

	"github.com/nikbrunner/bmcar/internal/geo"
	"github.com/nikbrunner/bmcar/internal/locale"
	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/nikbrunner/bmcar/internal/surface"
)

// Store is the read side of the bookmark data store.
type Store interface {
	ListCollections() []model.Collection
	Collection(id string) (model.Collection, bool)
	MemberCount(collectionID string) int
	BookmarkIDAt(collectionID string, index int) (string, bool)
	LookupBookmark(collectionID, bookmarkID string) (model.Bookmark, bool)
}

// MapSurface recentres the map on a bookmark.
type MapSurface interface {
	FocusBookmark(collectionID, bookmarkID string)
}

// Locator reports the last known device location.
type Locator interface {
	CurrentLocation() (geo.Position, bool)
}

// Navigator receives screens pushed by row clicks.
type Navigator interface {
	Push(s *Screen)
}

// IconRenderer rasterises a bookmark icon into a row image.
type IconRenderer interface {
	RenderIcon(icon model.Icon, style surface.IconStyle) surface.Image
}

// Deps are the collaborators a Screen reads from and delegates to.
// Store, Map and Nav are required; the rest have defaults.
type Deps struct {
	Store   Store
	Map     MapSurface
	Nav     Navigator
	Locator Locator        // nil = location never available
	Limiter ContentLimiter // nil = DefaultListLimit
	Icons   IconRenderer   // nil = rows without images
	Locale  *locale.Localizer
	Units   locale.Units
	Logger  *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Locale == nil {
		d.Locale = locale.New("en")
	}
	if d.Logger == nil {
		d.Logger = discardLogger()
	}
	return d
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

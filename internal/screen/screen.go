package screen

import (
	"log/slog"

	"github.com/nikbrunner/bmcar/internal/geo"
	"github.com/nikbrunner/bmcar/internal/locale"
	"github.com/nikbrunner/bmcar/internal/surface"
)

// Screen renders one browsing level.
type Screen struct {
	deps      Deps
	state     State
	limit     int
	assembler *Assembler
	disposed  bool
}

// New creates the root screen listing collections.
func New(deps Deps) *Screen {
	return newScreen(deps.withDefaults(), Categories())
}

func newScreen(deps Deps, state State) *Screen {
	s := &Screen{
		deps:  deps,
		state: state,
		limit: MaxListItems(deps.Limiter, ListKindList, deps.Logger),
	}
	s.assembler = NewAssembler(AssemblerParams{
		Store:     deps.Store,
		Formatter: NewFormatter(deps.Locale, deps.Units),
		Icons:     deps.Icons,
		Logger:    deps.Logger,
		OnOpen:    s.Open,
		OnFocus:   s.focus,
	})
	return s
}

// State returns the browsing state. It never changes.
func (s *Screen) State() State {
	return s.state
}

// Limit returns the list limit fixed at construction.
func (s *Screen) Limit() int {
	return s.limit
}

// Title returns the header title for the current state.
func (s *Screen) Title() string {
	if s.state.Level == CategoryBrowsing {
		return s.deps.Locale.Label(locale.LabelBookmarks)
	}
	c, ok := s.deps.Store.Collection(s.state.CollectionID)
	if !ok {
		return ""
	}
	return c.Name
}

// Render builds the template for the current state. It reads the store and
// location afresh on every call.
func (s *Screen) Render() surface.Template {
	return surface.Template{
		Header: surface.NewHeader(s.Title()),
		List:   surface.ItemList{Rows: s.rows()},
	}
}

func (s *Screen) rows() []surface.Row {
	if s.state.Level == CategoryBrowsing {
		visible := VisibleCategories(s.deps.Store.ListCollections())
		return s.assembler.CategoryRows(visible, s.limit)
	}

	id := s.state.CollectionID
	return s.assembler.BookmarkRows(id, s.deps.Store.MemberCount(id), s.limit, s.currentLocation())
}

func (s *Screen) currentLocation() *geo.Position {
	if s.deps.Locator == nil {
		return nil
	}
	pos, ok := s.deps.Locator.CurrentLocation()
	if !ok || !pos.Valid() {
		return nil
	}
	return &pos
}

// Open pushes a screen browsing the given collection. It does nothing once
// the screen has been disposed.
func (s *Screen) Open(collectionID string) {
	if s.disposed {
		s.deps.Logger.Debug("ignoring open on disposed screen", slog.String("collection", collectionID))
		return
	}
	s.deps.Nav.Push(newScreen(s.deps, Bookmarks(collectionID)))
}

func (s *Screen) focus(collectionID, bookmarkID string) {
	if s.disposed {
		s.deps.Logger.Debug("ignoring focus on disposed screen", slog.String("bookmark", bookmarkID))
		return
	}
	s.deps.Map.FocusBookmark(collectionID, bookmarkID)
}

// Dispose marks the screen as discarded. Pending row clicks become no-ops.
func (s *Screen) Dispose() {
	s.disposed = true
}

// Disposed reports whether the screen has been discarded.
func (s *Screen) Disposed() bool {
	return s.disposed
}

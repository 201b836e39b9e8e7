package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nikbrunner/bmcar/internal/geo"
	"github.com/nikbrunner/bmcar/internal/locale"
	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/nikbrunner/bmcar/internal/screen"
	"github.com/nikbrunner/bmcar/internal/tui/layout"
)

// MapPane stands in for the map: it remembers the focused bookmark and
// describes it next to the list.
type MapPane struct {
	store   screen.Store
	locator screen.Locator
	locale  *locale.Localizer
	units   locale.Units
	logger  *slog.Logger

	collectionID string
	bookmarkID   string
}

// MapPaneParams holds parameters for creating a MapPane.
type MapPaneParams struct {
	Store   screen.Store
	Locator screen.Locator // optional
	Locale  *locale.Localizer
	Units   locale.Units
	Logger  *slog.Logger
}

// NewMapPane creates a MapPane with nothing focused.
func NewMapPane(params MapPaneParams) *MapPane {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}
	loc := params.Locale
	if loc == nil {
		loc = locale.New("en")
	}
	return &MapPane{
		store:   params.Store,
		locator: params.Locator,
		locale:  loc,
		units:   params.Units,
		logger:  logger,
	}
}

// FocusBookmark implements screen.MapSurface.
func (m *MapPane) FocusBookmark(collectionID, bookmarkID string) {
	m.collectionID = collectionID
	m.bookmarkID = bookmarkID
	m.logger.Info("focus bookmark",
		slog.String("collection", collectionID), slog.String("bookmark", bookmarkID))
}

// Focused returns the focused bookmark if it still exists.
func (m *MapPane) Focused() (model.Bookmark, bool) {
	if m.bookmarkID == "" {
		return model.Bookmark{}, false
	}
	return m.store.LookupBookmark(m.collectionID, m.bookmarkID)
}

// Clear drops the focus.
func (m *MapPane) Clear() {
	m.collectionID = ""
	m.bookmarkID = ""
}

// Coordinates formats the focused position for the clipboard.
func (m *MapPane) Coordinates() (string, bool) {
	b, ok := m.Focused()
	if !ok {
		return "", false
	}
	return formatCoordinates(b.Position()), true
}

func formatCoordinates(p geo.Position) string {
	return fmt.Sprintf("%.5f, %.5f", p.Lat, p.Lon)
}

// View renders the pane content for the given inner width.
func (m *MapPane) View(width int, styles Styles, textCfg layout.TextConfig) string {
	fit := func(s string) string {
		out, _ := layout.TruncateText(s, width, textCfg)
		return out
	}

	b, ok := m.Focused()
	if !ok {
		return styles.Empty.Render(fit(m.locale.Label(locale.LabelNoFocus)))
	}

	lines := []string{
		styles.Title.Render(fit(b.Name)),
		"",
	}
	if b.Address != "" {
		lines = append(lines, styles.Item.Render(fit(b.Address)))
	}
	if b.Feature != "" {
		lines = append(lines, styles.Secondary.Render(fit(b.Feature)))
	}
	lines = append(lines, styles.Coordinates.Render(fit(formatCoordinates(b.Position()))))

	if m.locator != nil {
		if here, ok := m.locator.CurrentLocation(); ok && here.Valid() {
			d := m.locale.Distance(geo.Distance(here, b.Position()), m.units)
			lines = append(lines, styles.Distance.Render(fit(d)))
		}
	}

	return strings.Join(lines, "\n")
}

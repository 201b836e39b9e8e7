package screen

import (
	"log/slog"

	"github.com/nikbrunner/bmcar/internal/geo"
	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/nikbrunner/bmcar/internal/surface"
)

// BookmarkIconStyle are the rasterisation parameters for bookmark row images.
var BookmarkIconStyle = surface.IconStyle{CircleSize: 3, Bold: true}

// Assembler builds the truncated, click-bound rows for both browsing levels.
type Assembler struct {
	store     Store
	formatter *Formatter
	icons     IconRenderer
	logger    *slog.Logger

	onOpen  func(collectionID string)
	onFocus func(collectionID, bookmarkID string)
}

// AssemblerParams holds parameters for creating an Assembler.
type AssemblerParams struct {
	Store     Store
	Formatter *Formatter
	Icons     IconRenderer // optional
	Logger    *slog.Logger

	// OnOpen is bound to category rows, OnFocus to bookmark rows.
	OnOpen  func(collectionID string)
	OnFocus func(collectionID, bookmarkID string)
}

// NewAssembler creates an Assembler.
func NewAssembler(params AssemblerParams) *Assembler {
	formatter := params.Formatter
	if formatter == nil {
		formatter = NewFormatter(nil, 0)
	}
	logger := params.Logger
	if logger == nil {
		logger = discardLogger()
	}
	return &Assembler{
		store:     params.Store,
		formatter: formatter,
		icons:     params.Icons,
		logger:    logger,
		onOpen:    params.OnOpen,
		onFocus:   params.OnFocus,
	}
}

// CategoryRows builds one browsable row per collection, keeping at most limit
// rows. Every row carries exactly one secondary line, the description.
func (a *Assembler) CategoryRows(collections []model.Collection, limit int) []surface.Row {
	n := truncated(len(collections), limit)
	rows := make([]surface.Row, 0, n)

	for _, c := range collections[:n] {
		id := c.ID
		rows = append(rows, surface.NewRow(surface.NewRowParams{
			Title:     c.Name,
			Texts:     []surface.Text{surface.PlainText(c.Description)},
			Browsable: true,
			Action:    surface.Action{Kind: surface.ActionOpenCollection, CollectionID: id},
			OnClick: func() {
				if a.onOpen != nil {
					a.onOpen(id)
				}
			},
		}))
	}
	return rows
}

// BookmarkRows builds rows for the first min(total, limit) bookmarks of a
// collection, resolved by position. Positions that no longer resolve are
// skipped.
func (a *Assembler) BookmarkRows(collectionID string, total, limit int, here *geo.Position) []surface.Row {
	n := truncated(total, limit)
	rows := make([]surface.Row, 0, n)

	for i := 0; i < n; i++ {
		bookmarkID, ok := a.store.BookmarkIDAt(collectionID, i)
		if !ok {
			a.logger.Debug("skipping unresolved bookmark position",
				slog.String("collection", collectionID), slog.Int("index", i))
			continue
		}
		b, ok := a.store.LookupBookmark(collectionID, bookmarkID)
		if !ok {
			a.logger.Debug("skipping missing bookmark",
				slog.String("collection", collectionID), slog.String("bookmark", bookmarkID))
			continue
		}

		rows = append(rows, a.bookmarkRow(collectionID, b, here))
	}
	return rows
}

func (a *Assembler) bookmarkRow(collectionID string, b model.Bookmark, here *geo.Position) surface.Row {
	desc := a.formatter.Describe(b, here)

	var image *surface.Image
	if a.icons != nil {
		img := a.icons.RenderIcon(b.Icon, BookmarkIconStyle)
		image = &img
	}

	bookmarkID := b.ID
	return surface.NewRow(surface.NewRowParams{
		Title: desc.Primary,
		Texts: desc.Secondary,
		Image: image,
		Action: surface.Action{
			Kind:         surface.ActionFocusBookmark,
			CollectionID: collectionID,
			BookmarkID:   bookmarkID,
		},
		OnClick: func() {
			if a.onFocus != nil {
				a.onFocus(collectionID, bookmarkID)
			}
		},
	})
}

// truncated returns min(count, limit), never negative.
func truncated(count, limit int) int {
	n := min(count, limit)
	if n < 0 {
		return 0
	}
	return n
}

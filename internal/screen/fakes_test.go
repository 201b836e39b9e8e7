package screen_test

import (
	"errors"

	"github.com/nikbrunner/bmcar/internal/geo"
	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/nikbrunner/bmcar/internal/screen"
	"github.com/nikbrunner/bmcar/internal/surface"
)

// flakyStore wraps a model.Store and fails position resolution for chosen indexes.
type flakyStore struct {
	*model.Store
	failAt map[int]bool
}

func (f *flakyStore) BookmarkIDAt(collectionID string, index int) (string, bool) {
	if f.failAt[index] {
		return "", false
	}
	return f.Store.BookmarkIDAt(collectionID, index)
}

type focusCall struct {
	collectionID string
	bookmarkID   string
}

type recordingMap struct {
	calls []focusCall
}

func (m *recordingMap) FocusBookmark(collectionID, bookmarkID string) {
	m.calls = append(m.calls, focusCall{collectionID, bookmarkID})
}

type recordingNav struct {
	pushed []*screen.Screen
}

func (n *recordingNav) Push(s *screen.Screen) {
	n.pushed = append(n.pushed, s)
}

type fixedLocator struct {
	pos *geo.Position
}

func (l fixedLocator) CurrentLocation() (geo.Position, bool) {
	if l.pos == nil {
		return geo.Position{}, false
	}
	return *l.pos, true
}

type letterIcons struct{}

func (letterIcons) RenderIcon(icon model.Icon, _ surface.IconStyle) surface.Image {
	return surface.Image{Rendered: "(" + icon.Type + ")", Alt: icon.Type}
}

type failingLimiter struct{}

func (failingLimiter) ContentLimit(screen.ListKind) (int, error) {
	return 0, errors.New("constraint service unavailable")
}

func posPtr(lat, lon float64) *geo.Position {
	return &geo.Position{Lat: lat, Lon: lon}
}

// sampleStore has three browsable collections and one empty and one hidden.
func sampleStore() *model.Store {
	return &model.Store{
		Collections: []model.Collection{
			{ID: "food", Name: "Food", Description: "Places to eat", Visible: true},
			{ID: "empty", Name: "Empty", Description: "Nothing here", Visible: true},
			{ID: "trips", Name: "Trips", Description: "", Visible: true},
			{ID: "hidden", Name: "Hidden", Description: "Secret", Visible: false},
			{ID: "work", Name: "Work", Description: "Offices", Visible: true},
		},
		Bookmarks: []model.Bookmark{
			{ID: "b1", CollectionID: "food", Name: "Cafe Luna", Address: "1 Main St", Feature: "Cafe",
				Icon: model.Icon{Color: "red", Type: "food"}, Lat: 52.5200, Lon: 13.4050},
			{ID: "b2", CollectionID: "food", Name: "Noodle Bar", Feature: "Restaurant",
				Icon: model.Icon{Color: "orange", Type: "food"}, Lat: 52.5300, Lon: 13.4050},
			{ID: "b3", CollectionID: "food", Name: "Bakery", Address: "3 Side St",
				Icon: model.Icon{Color: "yellow", Type: "shop"}, Lat: 52.5200, Lon: 13.4200},
			{ID: "t1", CollectionID: "trips", Name: "Lake", Lat: 53.0, Lon: 13.0},
			{ID: "h1", CollectionID: "hidden", Name: "Hideout", Lat: 0, Lon: 0},
			{ID: "w1", CollectionID: "work", Name: "Office", Lat: 52.0, Lon: 13.0},
		},
	}
}

package model

import (
	"time"

	"github.com/nikbrunner/bmcar/internal/geo"
)

// Icon references a predefined bookmark colour and icon type.
type Icon struct {
	Color string `json:"color"` // palette name, e.g. "red"
	Type  string `json:"type"`  // icon type, e.g. "food"; empty = plain circle
}

// Bookmark is a saved point of interest.
type Bookmark struct {
	ID           string    `json:"id"`
	CollectionID string    `json:"collectionId"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Feature      string    `json:"feature"` // readable category, e.g. "Cafe"
	Icon         Icon      `json:"icon"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Position returns the bookmark's coordinates.
func (b Bookmark) Position() geo.Position {
	return geo.Position{Lat: b.Lat, Lon: b.Lon}
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	CollectionID string
	Name         string
	Address      string
	Feature      string
	Icon         Icon
	Position     geo.Position
}

// NewBookmark creates a Bookmark with generated UUID and timestamp.
func NewBookmark(params NewBookmarkParams) Bookmark {
	return Bookmark{
		ID:           generateUUID(),
		CollectionID: params.CollectionID,
		Name:         params.Name,
		Address:      params.Address,
		Feature:      params.Feature,
		Icon:         params.Icon,
		Lat:          params.Position.Lat,
		Lon:          params.Position.Lon,
		CreatedAt:    time.Now(),
	}
}

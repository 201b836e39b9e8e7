package importer

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikbrunner/bmcar/internal/geo"
	"github.com/nikbrunner/bmcar/internal/model"
)

// stylePrefix is how map exports encode the icon colour in styleUrl,
// e.g. "#placemark-blue".
const stylePrefix = "#placemark-"

type kmlFile struct {
	Document kmlDocument `xml:"Document"`
}

type kmlDocument struct {
	Name        string         `xml:"name"`
	Description string         `xml:"description"`
	Visibility  *string        `xml:"visibility"`
	Extended    kmlExtended    `xml:"ExtendedData"`
	Placemarks  []kmlPlacemark `xml:"Placemark"`
	Folders     []kmlFolder    `xml:"Folder"`
}

type kmlFolder struct {
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Folders    []kmlFolder    `xml:"Folder"`
}

type kmlPlacemark struct {
	Name        string      `xml:"name"`
	Description string      `xml:"description"`
	Address     string      `xml:"address"`
	StyleURL    string      `xml:"styleUrl"`
	Point       kmlPoint    `xml:"Point"`
	Extended    kmlExtended `xml:"ExtendedData"`
}

type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

type kmlExtended struct {
	Data []kmlData `xml:"Data"`
}

type kmlData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

func (e kmlExtended) value(name string) (string, bool) {
	for _, d := range e.Data {
		if strings.EqualFold(d.Name, name) {
			return strings.TrimSpace(d.Value), true
		}
	}
	return "", false
}

// ParseKML parses a KML bookmark export and returns one collection with its
// bookmarks in document order. Placemarks without valid coordinates are
// skipped.
func ParseKML(r io.Reader) (model.Collection, []model.Bookmark, error) {
	var f kmlFile
	if err := xml.NewDecoder(r).Decode(&f); err != nil {
		return model.Collection{}, nil, fmt.Errorf("decode kml: %w", err)
	}

	doc := f.Document
	name := strings.TrimSpace(doc.Name)
	if name == "" {
		name = "Imported"
	}

	// The KML <visibility> element wins over the ExtendedData entry.
	hidden := false
	if doc.Visibility != nil {
		hidden = isHidden(*doc.Visibility)
	} else if v, ok := doc.Extended.value("visibility"); ok {
		hidden = isHidden(v)
	}

	collection := model.NewCollection(model.NewCollectionParams{
		Name:        name,
		Description: strings.TrimSpace(doc.Description),
		Hidden:      hidden,
	})

	var bookmarks []model.Bookmark
	var walk func(placemarks []kmlPlacemark, folders []kmlFolder)
	walk = func(placemarks []kmlPlacemark, folders []kmlFolder) {
		for _, p := range placemarks {
			pos, ok := parseCoordinates(p.Point.Coordinates)
			if !ok {
				continue
			}
			bookmarks = append(bookmarks, model.NewBookmark(model.NewBookmarkParams{
				CollectionID: collection.ID,
				Name:         strings.TrimSpace(p.Name),
				Address:      placemarkAddress(p),
				Feature:      placemarkFeature(p),
				Icon:         placemarkIcon(p),
				Position:     pos,
			}))
		}
		for _, sub := range folders {
			walk(sub.Placemarks, sub.Folders)
		}
	}
	walk(doc.Placemarks, doc.Folders)

	return collection, bookmarks, nil
}

func isHidden(v string) bool {
	v = strings.TrimSpace(v)
	return v == "0" || strings.EqualFold(v, "false")
}

// parseCoordinates reads a KML "lon,lat[,alt]" tuple.
func parseCoordinates(s string) (geo.Position, bool) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) < 2 {
		return geo.Position{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Position{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Position{}, false
	}
	pos := geo.Position{Lat: lat, Lon: lon}
	return pos, pos.Valid()
}

func placemarkAddress(p kmlPlacemark) string {
	if a := strings.TrimSpace(p.Address); a != "" {
		return a
	}
	return strings.TrimSpace(p.Description)
}

func placemarkFeature(p kmlPlacemark) string {
	if v, ok := p.Extended.value("feature"); ok {
		return v
	}
	v, _ := p.Extended.value("type")
	return v
}

func placemarkIcon(p kmlPlacemark) model.Icon {
	var icon model.Icon
	if style := strings.TrimSpace(p.StyleURL); strings.HasPrefix(style, stylePrefix) {
		icon.Color = strings.TrimPrefix(style, stylePrefix)
	}
	icon.Type, _ = p.Extended.value("icon")
	return icon
}

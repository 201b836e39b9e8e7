package exporter

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/nikbrunner/bmcar/internal/model"
)

const kmlNamespace = "http://www.opengis.net/kml/2.2"

type kmlFile struct {
	XMLName  xml.Name    `xml:"kml"`
	Xmlns    string      `xml:"xmlns,attr"`
	Document kmlDocument `xml:"Document"`
}

type kmlDocument struct {
	Name        string         `xml:"name"`
	Description string         `xml:"description,omitempty"`
	Visibility  string         `xml:"visibility"`
	Placemarks  []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name     string       `xml:"name"`
	Address  string       `xml:"address,omitempty"`
	StyleURL string       `xml:"styleUrl,omitempty"`
	Point    kmlPoint     `xml:"Point"`
	Extended *kmlExtended `xml:"ExtendedData,omitempty"`
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

// DefaultExportPath returns the default export file path for a collection.
// Format: ~/Downloads/<collection>-YYYY-MM-DD.kml
func DefaultExportPath(collectionName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s-%s.kml", slug(collectionName), time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportKML writes a collection and its bookmarks as a KML document that
// the importer reads back.
func ExportKML(w io.Writer, c model.Collection, bookmarks []model.Bookmark) error {
	doc := kmlDocument{
		Name:        c.Name,
		Description: c.Description,
		Visibility:  visibility(c.Visible),
		Placemarks:  make([]kmlPlacemark, 0, len(bookmarks)),
	}

	for _, b := range bookmarks {
		p := kmlPlacemark{
			Name:    b.Name,
			Address: b.Address,
			Point:   kmlPoint{Coordinates: coordinates(b.Lat, b.Lon)},
		}
		if b.Icon.Color != "" {
			p.StyleURL = "#placemark-" + b.Icon.Color
		}

		var data []kmlData
		if b.Feature != "" {
			data = append(data, kmlData{Name: "feature", Value: b.Feature})
		}
		if b.Icon.Type != "" {
			data = append(data, kmlData{Name: "icon", Value: b.Icon.Type})
		}
		if len(data) > 0 {
			p.Extended = &kmlExtended{Data: data}
		}

		doc.Placemarks = append(doc.Placemarks, p)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write kml header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(kmlFile{Xmlns: kmlNamespace, Document: doc}); err != nil {
		return fmt.Errorf("encode kml: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write kml: %w", err)
	}
	return nil
}

func visibility(visible bool) string {
	if visible {
		return "1"
	}
	return "0"
}

// coordinates formats a KML "lon,lat" tuple.
func coordinates(lat, lon float64) string {
	return strconv.FormatFloat(lon, 'f', -1, 64) + "," + strconv.FormatFloat(lat, 'f', -1, 64)
}

// slug turns a collection name into a file-name friendly string.
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "bookmarks"
	}
	return s
}

// Package locale provides localised labels and number formatting for the
// browsing surface.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Label keys understood by Localizer.Label.
const (
	LabelBookmarks = "Bookmarks"
	LabelEmpty     = "No bookmarks"
	LabelNoFocus   = "Select a bookmark to show it on the map"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.German,
	language.French,
}

var translations = map[language.Tag]map[string]string{
	language.German: {
		LabelBookmarks: "Lesezeichen",
		LabelEmpty:     "Keine Lesezeichen",
		LabelNoFocus:   "Lesezeichen auswählen, um es auf der Karte zu zeigen",
	},
	language.French: {
		LabelBookmarks: "Signets",
		LabelEmpty:     "Aucun signet",
		LabelNoFocus:   "Choisissez un signet pour l'afficher sur la carte",
	},
}

var (
	matcher = language.NewMatcher(supported)
	cat     = buildCatalog()
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			// Keys and messages are static; SetString only fails on malformed tags.
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

// Localizer formats labels and distances for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for the closest supported match of the given
// BCP 47 language name. Unknown or malformed names fall back to English.
func New(name string) *Localizer {
	tag := language.English
	if parsed, err := language.Parse(name); err == nil {
		_, idx, _ := matcher.Match(parsed)
		tag = supported[idx]
	}
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Tag returns the language in use.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Label returns the translation of key, or key itself when untranslated.
func (l *Localizer) Label(key string) string {
	return l.printer.Sprintf(key)
}

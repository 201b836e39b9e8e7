package search

import (
	"strings"

	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Collection     model.Collection
	MatchedIndexes []int
	Score          int
}

// collectionNames implements fuzzy.Source for a collection slice.
type collectionNames []model.Collection

func (cn collectionNames) String(i int) string {
	return cn[i].Name
}

func (cn collectionNames) Len() int {
	return len(cn)
}

// FuzzySearchCollections searches collections by name using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchCollections(collections []model.Collection, query string) []SearchResult {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, collectionNames(collections))

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Collection:     collections[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// Resolve picks the collection a query unambiguously names: a
// case-insensitive exact name match, or the only fuzzy result.
// Otherwise it returns the fuzzy results for the caller to choose from.
func Resolve(collections []model.Collection, query string) (*model.Collection, []SearchResult) {
	for i := range collections {
		if strings.EqualFold(collections[i].Name, query) {
			return &collections[i], nil
		}
	}

	results := FuzzySearchCollections(collections, query)
	if len(results) == 1 {
		c := results[0].Collection
		return &c, nil
	}
	return nil, results
}

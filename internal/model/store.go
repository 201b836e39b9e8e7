package model

// Store holds all collections and bookmarks.
// Bookmarks keep insertion order, which is their position within a collection.
type Store struct {
	Collections []Collection `json:"collections"`
	Bookmarks   []Bookmark   `json:"bookmarks"`
}

// NewStore creates an empty Store with initialized slices.
func NewStore() *Store {
	return &Store{
		Collections: []Collection{},
		Bookmarks:   []Bookmark{},
	}
}

// ListCollections returns all collections in store order with MemberCount filled in.
func (s *Store) ListCollections() []Collection {
	counts := make(map[string]int, len(s.Collections))
	for _, b := range s.Bookmarks {
		counts[b.CollectionID]++
	}

	result := make([]Collection, len(s.Collections))
	for i, c := range s.Collections {
		c.MemberCount = counts[c.ID]
		result[i] = c
	}
	return result
}

// Collection returns the collection with the given ID and its member count.
func (s *Store) Collection(id string) (Collection, bool) {
	c := s.GetCollectionByID(id)
	if c == nil {
		return Collection{}, false
	}
	found := *c
	found.MemberCount = s.MemberCount(id)
	return found, true
}

// MemberCount returns the number of bookmarks in a collection.
func (s *Store) MemberCount(collectionID string) int {
	n := 0
	for _, b := range s.Bookmarks {
		if b.CollectionID == collectionID {
			n++
		}
	}
	return n
}

// BookmarkIDAt resolves the index-th bookmark of a collection to its ID.
func (s *Store) BookmarkIDAt(collectionID string, index int) (string, bool) {
	if index < 0 {
		return "", false
	}
	for _, b := range s.Bookmarks {
		if b.CollectionID != collectionID {
			continue
		}
		if index == 0 {
			return b.ID, true
		}
		index--
	}
	return "", false
}

// LookupBookmark finds a bookmark by ID within a collection.
func (s *Store) LookupBookmark(collectionID, bookmarkID string) (Bookmark, bool) {
	b := s.GetBookmarkByID(bookmarkID)
	if b == nil || b.CollectionID != collectionID {
		return Bookmark{}, false
	}
	return *b, true
}

// GetBookmarksInCollection returns the bookmarks of a collection in position order.
func (s *Store) GetBookmarksInCollection(collectionID string) []Bookmark {
	var result []Bookmark
	for _, b := range s.Bookmarks {
		if b.CollectionID == collectionID {
			result = append(result, b)
		}
	}
	return result
}

// GetCollectionByID finds a collection by ID, returns nil if not found.
func (s *Store) GetCollectionByID(id string) *Collection {
	for i := range s.Collections {
		if s.Collections[i].ID == id {
			return &s.Collections[i]
		}
	}
	return nil
}

// GetCollectionByName finds a collection by exact name, returns nil if not found.
func (s *Store) GetCollectionByName(name string) *Collection {
	for i := range s.Collections {
		if s.Collections[i].Name == name {
			return &s.Collections[i]
		}
	}
	return nil
}

// GetBookmarkByID finds a bookmark by ID, returns nil if not found.
func (s *Store) GetBookmarkByID(id string) *Bookmark {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == id {
			return &s.Bookmarks[i]
		}
	}
	return nil
}

// ImportCollection adds a collection and its bookmarks to the store.
// A collection with the same name is reused and its previous members are
// replaced. Returns the number of bookmarks added and whether an existing
// collection was replaced.
func (s *Store) ImportCollection(c Collection, bookmarks []Bookmark) (added int, replaced bool) {
	targetID := c.ID
	if existing := s.GetCollectionByName(c.Name); existing != nil {
		targetID = existing.ID
		existing.Description = c.Description
		existing.Visible = c.Visible
		replaced = true

		kept := s.Bookmarks[:0]
		for _, b := range s.Bookmarks {
			if b.CollectionID != targetID {
				kept = append(kept, b)
			}
		}
		s.Bookmarks = kept
	} else {
		c.MemberCount = 0
		s.Collections = append(s.Collections, c)
	}

	for _, b := range bookmarks {
		b.CollectionID = targetID
		s.Bookmarks = append(s.Bookmarks, b)
		added++
	}
	return added, replaced
}

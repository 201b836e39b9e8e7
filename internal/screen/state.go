package screen

// Level is the browsing level a screen shows.
type Level int

const (
	CategoryBrowsing Level = iota
	BookmarkBrowsing
)

// String implements fmt.Stringer.
func (l Level) String() string {
	if l == BookmarkBrowsing {
		return "bookmarks"
	}
	return "categories"
}

// State identifies what a screen shows. CollectionID is set only for
// BookmarkBrowsing.
type State struct {
	Level        Level
	CollectionID string
}

// Categories is the root browsing state.
func Categories() State {
	return State{Level: CategoryBrowsing}
}

// Bookmarks is the state for browsing one collection.
func Bookmarks(collectionID string) State {
	return State{Level: BookmarkBrowsing, CollectionID: collectionID}
}

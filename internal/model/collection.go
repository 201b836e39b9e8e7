package model

// Collection is a named group of bookmarks (a bookmark list).
type Collection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Visible     bool   `json:"visible"`

	// MemberCount is derived from the store on read and never persisted.
	MemberCount int `json:"-"`
}

// NewCollectionParams holds parameters for creating a new Collection.
type NewCollectionParams struct {
	Name        string
	Description string
	Hidden      bool
}

// NewCollection creates a visible Collection with generated UUID.
func NewCollection(params NewCollectionParams) Collection {
	return Collection{
		ID:          generateUUID(),
		Name:        params.Name,
		Description: params.Description,
		Visible:     !params.Hidden,
	}
}

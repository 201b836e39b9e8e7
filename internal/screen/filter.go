package screen

import "github.com/nikbrunner/bmcar/internal/model"

// VisibleCategories returns the collections that can be browsed: visible and
// with at least one member. Input order is preserved.
func VisibleCategories(all []model.Collection) []model.Collection {
	result := make([]model.Collection, 0, len(all))
	for _, c := range all {
		if c.MemberCount == 0 || !c.Visible {
			continue
		}
		result = append(result, c)
	}
	return result
}

package models

// Ingredient is a single stock-keeping unit of the stand. Length is only
// meaningful for Bread and Sausage ingredients, where it feeds the
// bread/sausage compatibility warning when composing a menu item.
type Ingredient struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Length   *string `json:"length,omitempty"`
}

// HasLength reports whether the ingredient carries a length attribute.
func (i Ingredient) HasLength() bool {
	return i.Length != nil && *i.Length != ""
}

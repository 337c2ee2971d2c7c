package models

// MenuItem is a sellable hot dog composed from ingredient references. Bread
// and sausage are required at creation time; toppings and sauces may repeat
// and keep their stored order. Referential integrity is not enforced after an
// ingredient is deleted; the catalog's deletion cascade removes dependents
// instead.
type MenuItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	BreadID    string   `json:"bread_id"`
	SausageID  string   `json:"sausage_id"`
	ToppingIDs []string `json:"topping_ids"`
	SauceIDs   []string `json:"sauce_ids"`
	SideID     *string  `json:"side_id,omitempty"`
}

// AllIngredientIDs returns every ingredient reference of the item in the
// canonical order: bread, sausage, toppings, sauces, then the side if present.
func (m MenuItem) AllIngredientIDs() []string {
	ids := make([]string, 0, 2+len(m.ToppingIDs)+len(m.SauceIDs)+1)
	ids = append(ids, m.BreadID, m.SausageID)
	ids = append(ids, m.ToppingIDs...)
	ids = append(ids, m.SauceIDs...)
	if m.HasSide() {
		ids = append(ids, *m.SideID)
	}
	return ids
}

// HasSide reports whether the item bundles a side dish.
func (m MenuItem) HasSide() bool {
	return m.SideID != nil && *m.SideID != ""
}

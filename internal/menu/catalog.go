// Package menu holds the catalog of sellable items and the ingredient
// dependency queries used by deletion-safety checks and the simulation.
package menu

import "github.com/hotdogccs/hotdogsim/internal/models"

// Catalog stores menu items in insertion order. The stable order matters: the
// simulation picks items by index from Items(), so two runs over the same
// catalog and random stream select the same items.
type Catalog struct {
	order []string
	items map[string]models.MenuItem
}

func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string]models.MenuItem)}
}

// Add inserts or replaces an item. A replaced item keeps its original
// position in the catalog order.
func (c *Catalog) Add(item models.MenuItem) {
	if _, ok := c.items[item.ID]; !ok {
		c.order = append(c.order, item.ID)
	}
	c.items[item.ID] = item
}

// Remove deletes the item with the given id, if present.
func (c *Catalog) Remove(id string) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Get returns the item with the given id.
func (c *Catalog) Get(id string) (models.MenuItem, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Items returns every item in insertion order.
func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Len returns the number of items on the menu.
func (c *Catalog) Len() int {
	return len(c.order)
}

// IngredientsOf returns every ingredient reference of an item: bread,
// sausage, toppings, sauces, then the side if present.
func (c *Catalog) IngredientsOf(item models.MenuItem) []string {
	return item.AllIngredientIDs()
}

// ItemsUsing returns every item that references the ingredient, in catalog
// order. Callers use this as the query phase of the deletion cascade.
func (c *Catalog) ItemsUsing(ingredientID string) []models.MenuItem {
	var out []models.MenuItem
	for _, id := range c.order {
		item := c.items[id]
		for _, ingID := range item.AllIngredientIDs() {
			if ingID == ingredientID {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

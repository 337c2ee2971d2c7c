// Package factories generates a plausible starting catalog for demo runs.
package factories

import (
	"fmt"
	"math/rand"

	"github.com/hotdogccs/hotdogsim/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

var ingredientNames = map[string][]string{
	models.CategoryBread:   {"Classic Bun", "Brioche Bun", "Pretzel Bun", "Baguette Roll"},
	models.CategorySausage: {"Frankfurter", "Bratwurst", "Chorizo", "Veggie Sausage"},
	models.CategoryTopping: {"Crispy Onions", "Jalapeños", "Pickles", "Coleslaw", "Grated Cheese"},
	models.CategorySauce:   {"Ketchup", "Mustard", "Garlic Mayo", "BBQ Sauce", "Sriracha"},
	models.CategorySide:    {"Fries", "Onion Rings", "Potato Wedges", "Corn on the Cob"},
}

var lengths = []string{"small", "medium", "large"}

type SeedFactory struct{}

// CreateIngredients builds one ingredient per known name of the category.
// Bread and sausage ingredients get a random length.
func (f *SeedFactory) CreateIngredients(category string) []models.Ingredient {
	names := ingredientNames[category]
	out := make([]models.Ingredient, 0, len(names))
	for _, name := range names {
		ing := models.Ingredient{
			ID:       cuid.New(),
			Name:     name,
			Category: category,
			Type:     fake.RandomStringElement([]string{"normal", "premium"}),
		}
		if category == models.CategoryBread || category == models.CategorySausage {
			length := lengths[rand.Intn(len(lengths))]
			ing.Length = &length
		}
		out = append(out, ing)
	}
	return out
}

// CreateMenuItem composes a random hot dog from the given ingredient pool.
// It returns an error when the pool lacks a bread or a sausage.
func (f *SeedFactory) CreateMenuItem(pool []models.Ingredient) (models.MenuItem, error) {
	byCategory := make(map[string][]models.Ingredient)
	for _, ing := range pool {
		byCategory[ing.Category] = append(byCategory[ing.Category], ing)
	}
	breads := byCategory[models.CategoryBread]
	sausages := byCategory[models.CategorySausage]
	if len(breads) == 0 || len(sausages) == 0 {
		return models.MenuItem{}, fmt.Errorf("ingredient pool needs at least one bread and one sausage")
	}

	item := models.MenuItem{
		ID:        cuid.New(),
		Name:      fmt.Sprintf("%s Dog", fake.Lorem().Word()),
		BreadID:   breads[rand.Intn(len(breads))].ID,
		SausageID: sausages[rand.Intn(len(sausages))].ID,
	}
	for _, topping := range byCategory[models.CategoryTopping] {
		if rand.Float64() < 0.4 {
			item.ToppingIDs = append(item.ToppingIDs, topping.ID)
		}
	}
	for _, sauce := range byCategory[models.CategorySauce] {
		if rand.Float64() < 0.4 {
			item.SauceIDs = append(item.SauceIDs, sauce.ID)
		}
	}
	if sides := byCategory[models.CategorySide]; len(sides) > 0 && rand.Float64() < 0.5 {
		sideID := sides[rand.Intn(len(sides))].ID
		item.SideID = &sideID
	}
	return item, nil
}

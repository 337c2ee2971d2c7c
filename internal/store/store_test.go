package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hotdogccs/hotdogsim/internal/models"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data.json"), nil)
}

func ingredient(id, name, category string) models.Ingredient {
	return models.Ingredient{ID: id, Name: name, Category: category, Type: "normal"}
}

func TestAddIngredientPersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := New(path, nil)

	if err := s.AddIngredient(ingredient("b1", "Classic Bun", models.CategoryBread), 12); err != nil {
		t.Fatal(err)
	}
	if err := s.AddIngredient(ingredient("s1", "Frankfurter", models.CategorySausage), 8); err != nil {
		t.Fatal(err)
	}
	if err := s.AddMenuItem(models.MenuItem{ID: "m1", Name: "Classic Dog", BreadID: "b1", SausageID: "s1"}); err != nil {
		t.Fatal(err)
	}

	reloaded := New(path, nil)
	if err := reloaded.LoadLocal(); err != nil {
		t.Fatal(err)
	}
	ingredients := reloaded.Ingredients()
	if len(ingredients) != 2 || ingredients[0].ID != "b1" || ingredients[1].ID != "s1" {
		t.Fatalf("reloaded ingredients: %v", ingredients)
	}
	if got := reloaded.Ledger().Quantity("b1"); got != 12 {
		t.Errorf("b1 quantity: got %d, want 12", got)
	}
	if got := reloaded.Ledger().Quantity("s1"); got != 8 {
		t.Errorf("s1 quantity: got %d, want 8", got)
	}
	items := reloaded.MenuItems()
	if len(items) != 1 || items[0].Name != "Classic Dog" {
		t.Fatalf("reloaded menu: %v", items)
	}
}

func TestAddIngredientRejectsDuplicateID(t *testing.T) {
	s := tempStore(t)
	if err := s.AddIngredient(ingredient("b1", "Classic Bun", models.CategoryBread), 5); err != nil {
		t.Fatal(err)
	}
	err := s.AddIngredient(ingredient("b1", "Other Bun", models.CategoryBread), 5)
	if !errors.Is(err, ErrIngredientExists) {
		t.Fatalf("got %v, want ErrIngredientExists", err)
	}
}

func TestAddMenuItemValidatesReferences(t *testing.T) {
	s := tempStore(t)
	if err := s.AddIngredient(ingredient("b1", "Classic Bun", models.CategoryBread), 5); err != nil {
		t.Fatal(err)
	}
	err := s.AddMenuItem(models.MenuItem{ID: "m1", Name: "Ghost Dog", BreadID: "b1", SausageID: "missing"})
	if !errors.Is(err, ErrMissingReference) {
		t.Fatalf("got %v, want ErrMissingReference", err)
	}
	if len(s.MenuItems()) != 0 {
		t.Fatal("rejected item must not land in the catalog")
	}
}

func TestRemoveIngredientCascadesToMenuItems(t *testing.T) {
	s := tempStore(t)
	for _, ing := range []models.Ingredient{
		ingredient("b1", "Classic Bun", models.CategoryBread),
		ingredient("b2", "Brioche Bun", models.CategoryBread),
		ingredient("s1", "Frankfurter", models.CategorySausage),
	} {
		if err := s.AddIngredient(ing, 5); err != nil {
			t.Fatal(err)
		}
	}
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(s.AddMenuItem(models.MenuItem{ID: "m1", Name: "Classic Dog", BreadID: "b1", SausageID: "s1"}))
	must(s.AddMenuItem(models.MenuItem{ID: "m2", Name: "Brioche Dog", BreadID: "b2", SausageID: "s1"}))

	// Query phase first: the interactive layer shows these before deleting.
	affected := s.ItemsUsing("b1")
	if len(affected) != 1 || affected[0].ID != "m1" {
		t.Fatalf("items using b1: %v", affected)
	}

	removed, err := s.RemoveIngredient("b1")
	if err != nil {
		t.Fatal(err)
	}
	if len(removed) != 1 || removed[0].ID != "m1" {
		t.Fatalf("cascade removed: %v", removed)
	}
	if _, ok := s.Ingredient("b1"); ok {
		t.Fatal("ingredient still present after removal")
	}
	if s.Ledger().Tracked("b1") {
		t.Fatal("ledger entry should be dropped with the ingredient")
	}
	items := s.MenuItems()
	if len(items) != 1 || items[0].ID != "m2" {
		t.Fatalf("surviving menu: %v", items)
	}

	if _, err := s.RemoveIngredient("b1"); !errors.Is(err, ErrIngredientNotFound) {
		t.Fatalf("second removal: got %v, want ErrIngredientNotFound", err)
	}
}

func TestIngredientNameFallsBackToUnknown(t *testing.T) {
	s := tempStore(t)
	if got := s.IngredientName("dangling"); got != UnknownName {
		t.Fatalf("got %q, want %q", got, UnknownName)
	}
}

func TestMergeRemoteDefaultsUntrackedQuantities(t *testing.T) {
	s := tempStore(t)
	s.MergeRemote(RemoteDocument{
		Ingredients: []models.Ingredient{
			ingredient("b1", "Classic Bun", models.CategoryBread),
			ingredient("s1", "Frankfurter", models.CategorySausage),
		},
		Inventory: map[string]int{"s1": 0},
	}, 50)

	if got := s.Ledger().Quantity("b1"); got != 50 {
		t.Errorf("untracked remote ingredient: got %d, want default 50", got)
	}
	// An explicit remote zero stays zero, it does not get re-defaulted.
	if got := s.Ledger().Quantity("s1"); got != 0 {
		t.Errorf("explicit remote zero: got %d, want 0", got)
	}
	if !s.Ledger().Tracked("s1") {
		t.Error("explicit remote zero should still be tracked")
	}
}

func TestLocalOverridesRemote(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	local := New(path, nil)
	if err := local.AddIngredient(ingredient("b1", "Local Bun", models.CategoryBread), 7); err != nil {
		t.Fatal(err)
	}

	s := New(path, nil)
	s.MergeRemote(RemoteDocument{
		Ingredients: []models.Ingredient{
			ingredient("b1", "Remote Bun", models.CategoryBread),
			ingredient("r1", "Remote Relish", models.CategoryTopping),
		},
		Inventory: map[string]int{"b1": 99},
	}, 50)
	if err := s.LoadLocal(); err != nil {
		t.Fatal(err)
	}

	ing, ok := s.Ingredient("b1")
	if !ok || ing.Name != "Local Bun" {
		t.Fatalf("local ingredient should win: %+v", ing)
	}
	if got := s.Ledger().Quantity("b1"); got != 7 {
		t.Errorf("local quantity should win: got %d, want 7", got)
	}
	if got := s.Ledger().Quantity("r1"); got != 50 {
		t.Errorf("remote-only ingredient keeps the default: got %d, want 50", got)
	}
}

func TestLoadLocalMissingFileIsFine(t *testing.T) {
	s := tempStore(t)
	if err := s.LoadLocal(); err != nil {
		t.Fatalf("missing data file should not be an error: %v", err)
	}
	if len(s.Ingredients()) != 0 || len(s.History()) != 0 {
		t.Fatal("store should start empty")
	}
}

func TestAppendSalesRecordIsDurable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := New(path, nil)
	rec := models.SalesRecord{
		Date:                   "2024-06-01 18:00:00",
		TotalClients:           12,
		ClientsChangedOpinion:  2,
		ClientsCouldNotBuy:     3,
		TotalHotdogsSold:       9,
		BestSellingItem:        "Classic Dog",
		ItemsCausingLoss:       []string{"Chili Dog"},
		IngredientsCausingLoss: []string{"Jalapeños"},
	}
	if err := s.AppendSalesRecord(rec); err != nil {
		t.Fatal(err)
	}

	reloaded := New(path, nil)
	if err := reloaded.LoadLocal(); err != nil {
		t.Fatal(err)
	}
	history := reloaded.History()
	if len(history) != 1 {
		t.Fatalf("got %d records, want 1", len(history))
	}
	if history[0].BestSellingItem != "Classic Dog" || history[0].TotalClients != 12 {
		t.Fatalf("reloaded record differs: %+v", history[0])
	}
	if history[0].IngredientsCausingLoss[0] != "Jalapeños" {
		t.Fatalf("loss list lost: %+v", history[0])
	}
}

func TestHistoryReturnsACopy(t *testing.T) {
	s := tempStore(t)
	if err := s.AppendSalesRecord(models.SalesRecord{Date: "2024-06-01 18:00:00"}); err != nil {
		t.Fatal(err)
	}
	h := s.History()
	h[0].Date = "tampered"
	if s.History()[0].Date != "2024-06-01 18:00:00" {
		t.Fatal("mutating the returned history must not touch the store")
	}
}

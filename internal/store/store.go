// Package store owns the process-wide stand data: the ingredient set, the
// menu catalog, the inventory ledger and the sales history. Components are
// handed only the capability they need (a read-only catalog view, the ledger,
// the history sink) instead of a shared global.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/hotdogccs/hotdogsim/internal/inventory"
	"github.com/hotdogccs/hotdogsim/internal/menu"
	"github.com/hotdogccs/hotdogsim/internal/models"
	"go.uber.org/zap"
)

// UnknownName is reported for dangling ingredient references.
const UnknownName = "Unknown"

var (
	ErrIngredientExists   = errors.New("ingredient already exists")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrMissingReference   = errors.New("menu item references a missing ingredient")
)

// Store is the single owner of all stand state. Persistence is a flat JSON
// document written synchronously after every mutation, so a crash never loses
// more than the mutation in flight.
type Store struct {
	path string
	log  *zap.Logger

	ingredientOrder []string
	ingredients     map[string]models.Ingredient
	catalog         *menu.Catalog
	ledger          *inventory.Ledger
	history         []models.SalesRecord
}

// document is the on-disk shape of the local data file.
type document struct {
	Ingredients  []models.Ingredient  `json:"ingredients"`
	MenuItems    []models.MenuItem    `json:"menu_items"`
	Inventory    map[string]int       `json:"inventory"`
	SalesHistory []models.SalesRecord `json:"sales_history"`
}

func New(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		path:        path,
		log:         log,
		ingredients: make(map[string]models.Ingredient),
		catalog:     menu.NewCatalog(),
	}
	s.ledger = inventory.NewLedger(nil, s.resolveName)
	return s
}

func (s *Store) resolveName(id string) (string, bool) {
	ing, ok := s.ingredients[id]
	if !ok {
		return "", false
	}
	return ing.Name, true
}

// Ledger returns the mutable inventory ledger handle.
func (s *Store) Ledger() *inventory.Ledger {
	return s.ledger
}

// Catalog returns the menu catalog.
func (s *Store) Catalog() *menu.Catalog {
	return s.catalog
}

// Ingredients returns every ingredient in insertion order.
func (s *Store) Ingredients() []models.Ingredient {
	out := make([]models.Ingredient, 0, len(s.ingredientOrder))
	for _, id := range s.ingredientOrder {
		out = append(out, s.ingredients[id])
	}
	return out
}

// Ingredient returns the ingredient with the given id.
func (s *Store) Ingredient(id string) (models.Ingredient, bool) {
	ing, ok := s.ingredients[id]
	return ing, ok
}

// IngredientName resolves an id for display, degrading to "Unknown" for
// dangling references instead of failing.
func (s *Store) IngredientName(id string) string {
	if ing, ok := s.ingredients[id]; ok {
		return ing.Name
	}
	return UnknownName
}

// IngredientsByCategory returns ingredients of one category in insertion
// order. The simulation draws extra sides from this ordering.
func (s *Store) IngredientsByCategory(category string) []models.Ingredient {
	var out []models.Ingredient
	for _, id := range s.ingredientOrder {
		if ing := s.ingredients[id]; ing.Category == category {
			out = append(out, ing)
		}
	}
	return out
}

// TypesInCategory returns the distinct ingredient types within a category,
// sorted alphabetically.
func (s *Store) TypesInCategory(category string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, ing := range s.IngredientsByCategory(category) {
		if !seen[ing.Type] {
			seen[ing.Type] = true
			out = append(out, ing.Type)
		}
	}
	sort.Strings(out)
	return out
}

// IngredientsByCategoryAndType filters a category down to one type.
func (s *Store) IngredientsByCategoryAndType(category, typeName string) []models.Ingredient {
	var out []models.Ingredient
	for _, ing := range s.IngredientsByCategory(category) {
		if ing.Type == typeName {
			out = append(out, ing)
		}
	}
	return out
}

// AddIngredient registers a new ingredient with its starting stock and
// persists the store.
func (s *Store) AddIngredient(ing models.Ingredient, quantity int) error {
	if _, ok := s.ingredients[ing.ID]; ok {
		return fmt.Errorf("%w: %s", ErrIngredientExists, ing.ID)
	}
	s.putIngredient(ing)
	s.ledger.SetQuantity(ing.ID, quantity)
	return s.Save()
}

func (s *Store) putIngredient(ing models.Ingredient) {
	if _, ok := s.ingredients[ing.ID]; !ok {
		s.ingredientOrder = append(s.ingredientOrder, ing.ID)
	}
	s.ingredients[ing.ID] = ing
}

// ItemsUsing returns the menu items referencing an ingredient. This is the
// query phase of the two-phase deletion cascade; callers surface the result
// for confirmation before invoking RemoveIngredient.
func (s *Store) ItemsUsing(ingredientID string) []models.MenuItem {
	return s.catalog.ItemsUsing(ingredientID)
}

// RemoveIngredient deletes an ingredient, its stock entry, and every menu
// item that references it. It returns the cascaded menu items. The cascade is
// unconditional: confirmation belongs to the interactive layer.
func (s *Store) RemoveIngredient(id string) ([]models.MenuItem, error) {
	if _, ok := s.ingredients[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrIngredientNotFound, id)
	}
	removed := s.catalog.ItemsUsing(id)
	for _, item := range removed {
		s.catalog.Remove(item.ID)
	}
	delete(s.ingredients, id)
	for i, existing := range s.ingredientOrder {
		if existing == id {
			s.ingredientOrder = append(s.ingredientOrder[:i], s.ingredientOrder[i+1:]...)
			break
		}
	}
	s.ledger.Remove(id)
	if err := s.Save(); err != nil {
		return removed, err
	}
	return removed, nil
}

// AddMenuItem registers a new menu item and persists the store. Bread and
// sausage must reference existing ingredients for the item to be sellable.
func (s *Store) AddMenuItem(item models.MenuItem) error {
	if _, ok := s.ingredients[item.BreadID]; !ok {
		return fmt.Errorf("%w: bread %s", ErrMissingReference, item.BreadID)
	}
	if _, ok := s.ingredients[item.SausageID]; !ok {
		return fmt.Errorf("%w: sausage %s", ErrMissingReference, item.SausageID)
	}
	s.catalog.Add(item)
	return s.Save()
}

// RemoveMenuItem deletes a single menu item and persists the store.
func (s *Store) RemoveMenuItem(id string) error {
	if _, ok := s.catalog.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrMenuItemNotFound, id)
	}
	s.catalog.Remove(id)
	return s.Save()
}

// MenuItems returns the catalog contents in insertion order.
func (s *Store) MenuItems() []models.MenuItem {
	return s.catalog.Items()
}

// History returns a copy of the sales history, oldest first.
func (s *Store) History() []models.SalesRecord {
	out := make([]models.SalesRecord, len(s.history))
	copy(out, s.history)
	return out
}

// AppendSalesRecord appends one day record and persists it before returning,
// so a record handed to the store is durable once the call succeeds.
func (s *Store) AppendSalesRecord(rec models.SalesRecord) error {
	s.history = append(s.history, rec)
	return s.Save()
}

// Save writes the full document to the local data file.
func (s *Store) Save() error {
	doc := document{
		Ingredients:  s.Ingredients(),
		MenuItems:    s.catalog.Items(),
		Inventory:    s.ledger.Snapshot(),
		SalesHistory: s.history,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// LoadLocal merges the local data file into the store. Local entries override
// whatever a remote load contributed. A missing file is not an error; the
// store simply starts empty.
func (s *Store) LoadLocal() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Info("no local data file", zap.String("path", s.path))
			return nil
		}
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}
	for _, ing := range doc.Ingredients {
		s.putIngredient(ing)
	}
	for _, item := range doc.MenuItems {
		s.catalog.Add(item)
	}
	for id, q := range doc.Inventory {
		s.ledger.SetQuantity(id, q)
	}
	s.history = append(s.history, doc.SalesHistory...)
	s.log.Info("local data loaded",
		zap.String("path", s.path),
		zap.Int("ingredients", len(doc.Ingredients)),
		zap.Int("menu_items", len(doc.MenuItems)),
		zap.Int("sales_days", len(doc.SalesHistory)))
	return nil
}

// MergeRemote folds one remote payload into the store. Ingredients first seen
// here start with the default quantity; explicit remote inventory values then
// overwrite it. Remote payloads never carry sales history.
func (s *Store) MergeRemote(doc RemoteDocument, defaultQuantity int) {
	for _, ing := range doc.Ingredients {
		s.putIngredient(ing)
		if !s.ledger.Tracked(ing.ID) {
			s.ledger.SetQuantity(ing.ID, defaultQuantity)
		}
	}
	for _, item := range doc.MenuItems {
		s.catalog.Add(item)
	}
	for id, q := range doc.Inventory {
		s.ledger.SetQuantity(id, q)
	}
}

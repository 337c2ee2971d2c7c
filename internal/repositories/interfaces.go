package repositories

import (
	"context"

	"github.com/hotdogccs/hotdogsim/internal/models"
)

type IngredientRepository interface {
	BulkCreate(ctx context.Context, ingredients []*models.Ingredient) error
	Create(ctx context.Context, ingredient *models.Ingredient) error
	GetAll(ctx context.Context) (map[string]*models.Ingredient, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type MenuItemRepository interface {
	BulkCreate(ctx context.Context, items []*models.MenuItem) error
	Create(ctx context.Context, item *models.MenuItem) error
	GetAll(ctx context.Context) (map[string]*models.MenuItem, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type SalesRecordRepository interface {
	BulkCreate(ctx context.Context, records []*models.SalesRecord) error
	Create(ctx context.Context, record *models.SalesRecord) error
	GetAll(ctx context.Context) ([]*models.SalesRecord, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

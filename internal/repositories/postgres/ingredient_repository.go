package postgres

import (
	"context"

	"github.com/hotdogccs/hotdogsim/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IngredientRepository struct {
	pool *pgxpool.Pool
}

func NewIngredientRepository(pool *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{pool: pool}
}

func (r *IngredientRepository) BulkCreate(ctx context.Context, ingredients []*models.Ingredient) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"ingredients"},
		[]string{"id", "name", "category", "type", "length"},
		pgx.CopyFromSlice(len(ingredients), func(i int) ([]interface{}, error) {
			return []interface{}{
				ingredients[i].ID,
				ingredients[i].Name,
				ingredients[i].Category,
				ingredients[i].Type,
				ingredients[i].Length,
			}, nil
		}),
	)
	return err
}

func (r *IngredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	query := `
        INSERT INTO ingredients (id, name, category, type, length)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.pool.Exec(ctx, query,
		ingredient.ID,
		ingredient.Name,
		ingredient.Category,
		ingredient.Type,
		ingredient.Length,
	)
	return err
}

func (r *IngredientRepository) GetAll(ctx context.Context) (map[string]*models.Ingredient, error) {
	query := `SELECT id, name, category, type, length FROM ingredients`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := make(map[string]*models.Ingredient)
	for rows.Next() {
		ingredient := &models.Ingredient{}
		if err := rows.Scan(
			&ingredient.ID,
			&ingredient.Name,
			&ingredient.Category,
			&ingredient.Type,
			&ingredient.Length,
		); err != nil {
			return nil, err
		}
		ingredients[ingredient.ID] = ingredient
	}
	return ingredients, rows.Err()
}

func (r *IngredientRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ingredients`).Scan(&count)
	return count, err
}

func (r *IngredientRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ingredients`)
	return err
}

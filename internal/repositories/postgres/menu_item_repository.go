package postgres

import (
	"context"

	"github.com/hotdogccs/hotdogsim/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

func (r *MenuItemRepository) BulkCreate(ctx context.Context, items []*models.MenuItem) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"menu_items"},
		[]string{"id", "name", "bread_id", "sausage_id", "topping_ids", "sauce_ids", "side_id"},
		pgx.CopyFromSlice(len(items), func(i int) ([]interface{}, error) {
			return []interface{}{
				items[i].ID,
				items[i].Name,
				items[i].BreadID,
				items[i].SausageID,
				items[i].ToppingIDs,
				items[i].SauceIDs,
				items[i].SideID,
			}, nil
		}),
	)
	return err
}

func (r *MenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
        INSERT INTO menu_items (
            id, name, bread_id, sausage_id, topping_ids, sauce_ids, side_id
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7
        )
    `
	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Name,
		item.BreadID,
		item.SausageID,
		item.ToppingIDs,
		item.SauceIDs,
		item.SideID,
	)
	return err
}

func (r *MenuItemRepository) GetAll(ctx context.Context) (map[string]*models.MenuItem, error) {
	query := `
        SELECT id, name, bread_id, sausage_id, topping_ids, sauce_ids, side_id
        FROM menu_items
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string]*models.MenuItem)
	for rows.Next() {
		item := &models.MenuItem{}
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.BreadID,
			&item.SausageID,
			&item.ToppingIDs,
			&item.SauceIDs,
			&item.SideID,
		); err != nil {
			return nil, err
		}
		items[item.ID] = item
	}
	return items, rows.Err()
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count)
	return count, err
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM menu_items`)
	return err
}

package postgres

import (
	"context"

	"github.com/hotdogccs/hotdogsim/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SalesRecordRepository struct {
	pool *pgxpool.Pool
}

func NewSalesRecordRepository(pool *pgxpool.Pool) *SalesRecordRepository {
	return &SalesRecordRepository{pool: pool}
}

func (r *SalesRecordRepository) BulkCreate(ctx context.Context, records []*models.SalesRecord) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"sales_records"},
		[]string{
			"date", "total_clients", "clients_changed_opinion",
			"clients_could_not_buy", "total_hotdogs_sold", "total_sides_sold",
			"best_selling_item", "items_causing_loss", "ingredients_causing_loss",
		},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			return []interface{}{
				records[i].Date,
				records[i].TotalClients,
				records[i].ClientsChangedOpinion,
				records[i].ClientsCouldNotBuy,
				records[i].TotalHotdogsSold,
				records[i].TotalSidesSold,
				records[i].BestSellingItem,
				records[i].ItemsCausingLoss,
				records[i].IngredientsCausingLoss,
			}, nil
		}),
	)
	return err
}

func (r *SalesRecordRepository) Create(ctx context.Context, record *models.SalesRecord) error {
	query := `
        INSERT INTO sales_records (
            date, total_clients, clients_changed_opinion, clients_could_not_buy,
            total_hotdogs_sold, total_sides_sold, best_selling_item,
            items_causing_loss, ingredients_causing_loss
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9
        )
    `
	_, err := r.pool.Exec(ctx, query,
		record.Date,
		record.TotalClients,
		record.ClientsChangedOpinion,
		record.ClientsCouldNotBuy,
		record.TotalHotdogsSold,
		record.TotalSidesSold,
		record.BestSellingItem,
		record.ItemsCausingLoss,
		record.IngredientsCausingLoss,
	)
	return err
}

func (r *SalesRecordRepository) GetAll(ctx context.Context) ([]*models.SalesRecord, error) {
	query := `
        SELECT date, total_clients, clients_changed_opinion, clients_could_not_buy,
               total_hotdogs_sold, total_sides_sold, best_selling_item,
               items_causing_loss, ingredients_causing_loss
        FROM sales_records
        ORDER BY date
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.SalesRecord
	for rows.Next() {
		record := &models.SalesRecord{}
		if err := rows.Scan(
			&record.Date,
			&record.TotalClients,
			&record.ClientsChangedOpinion,
			&record.ClientsCouldNotBuy,
			&record.TotalHotdogsSold,
			&record.TotalSidesSold,
			&record.BestSellingItem,
			&record.ItemsCausingLoss,
			&record.IngredientsCausingLoss,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *SalesRecordRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales_records`).Scan(&count)
	return count, err
}

func (r *SalesRecordRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sales_records`)
	return err
}

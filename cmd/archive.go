package cmd

import (
	"context"
	"fmt"

	"github.com/hotdogccs/hotdogsim/internal/models"
	"github.com/hotdogccs/hotdogsim/internal/repositories/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Mirror the store into the configured Postgres database",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if !a.cfg.Database.Enabled || a.cfg.Database.URL == "" {
			return fmt.Errorf("database archiving is not configured (set database.enabled and database.url)")
		}

		ctx := context.Background()
		pool, err := pgxpool.New(ctx, a.cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		ingredients := asPointers(a.store.Ingredients())
		items := asPointers(a.store.MenuItems())
		records := asPointers(a.store.History())

		ingredientRepo := postgres.NewIngredientRepository(pool)
		if err := ingredientRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing ingredients: %w", err)
		}
		if err := ingredientRepo.BulkCreate(ctx, ingredients); err != nil {
			return fmt.Errorf("archiving ingredients: %w", err)
		}

		menuRepo := postgres.NewMenuItemRepository(pool)
		if err := menuRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing menu items: %w", err)
		}
		if err := menuRepo.BulkCreate(ctx, items); err != nil {
			return fmt.Errorf("archiving menu items: %w", err)
		}

		recordRepo := postgres.NewSalesRecordRepository(pool)
		if err := recordRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing sales records: %w", err)
		}
		if err := recordRepo.BulkCreate(ctx, records); err != nil {
			return fmt.Errorf("archiving sales records: %w", err)
		}

		fmt.Printf("Archived %d ingredients, %d menu items, %d sales records.\n",
			len(ingredients), len(items), len(records))
		return nil
	},
}

func asPointers[T models.Ingredient | models.MenuItem | models.SalesRecord](values []T) []*T {
	out := make([]*T, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}

package cmd

import (
	"fmt"

	"github.com/hotdogccs/hotdogsim/internal/factories"
	"github.com/hotdogccs/hotdogsim/internal/models"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the store with a generated catalog, menu and stock",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		itemCount, _ := cmd.Flags().GetInt("items")
		quantity, _ := cmd.Flags().GetInt("quantity")
		if quantity <= 0 {
			quantity = a.cfg.DefaultQuantity
		}

		factory := &factories.SeedFactory{}
		var pool []models.Ingredient
		for _, category := range models.Categories {
			for _, ing := range factory.CreateIngredients(category) {
				if err := a.store.AddIngredient(ing, quantity); err != nil {
					return fmt.Errorf("seeding ingredient %s: %w", ing.Name, err)
				}
				pool = append(pool, ing)
			}
		}
		fmt.Printf("Seeded %d ingredients with quantity %d each.\n", len(pool), quantity)

		for i := 0; i < itemCount; i++ {
			item, err := factory.CreateMenuItem(pool)
			if err != nil {
				return err
			}
			if err := a.store.AddMenuItem(item); err != nil {
				return fmt.Errorf("seeding menu item %s: %w", item.Name, err)
			}
			fmt.Printf("Seeded menu item: %s\n", item.Name)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("items", 3, "number of menu items to generate")
	seedCmd.Flags().Int("quantity", 0, "stock per ingredient (defaults to the configured default quantity)")
	rootCmd.AddCommand(seedCmd)
}

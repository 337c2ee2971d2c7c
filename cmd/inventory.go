package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hotdogccs/hotdogsim/internal/models"
	"github.com/spf13/cobra"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inspect and adjust stock quantities",
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show stock per ingredient, grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		category, _ := cmd.Flags().GetString("category")
		categories := models.Categories
		if category != "" {
			categories = []string{category}
		}
		for _, cat := range categories {
			ingredients := a.store.IngredientsByCategory(cat)
			if len(ingredients) == 0 {
				continue
			}
			fmt.Println(cat)
			for _, ing := range ingredients {
				qty := a.store.Ledger().Quantity(ing.ID)
				marker := "ok"
				if qty == 0 {
					marker = "OUT"
				} else if qty <= 10 {
					marker = "low"
				}
				fmt.Printf("  %-30s %5d  %s\n", ing.Name, qty, marker)
			}
		}
		return nil
	},
}

var inventorySearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Find ingredients by name substring and show their stock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		term := strings.ToLower(args[0])
		found := 0
		for _, ing := range a.store.Ingredients() {
			if !strings.Contains(strings.ToLower(ing.Name), term) {
				continue
			}
			fmt.Printf("%-30s %5d  id=%s\n", ing.Name, a.store.Ledger().Quantity(ing.ID), ing.ID)
			found++
		}
		if found == 0 {
			fmt.Printf("No ingredients match %q.\n", args[0])
		}
		return nil
	},
}

var inventorySetCmd = &cobra.Command{
	Use:   "set <ingredient-id> <quantity>",
	Short: "Set the stock of an ingredient",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(args[1])
		if err != nil || quantity < 0 {
			return fmt.Errorf("quantity must be a non-negative integer")
		}
		if _, ok := a.store.Ingredient(args[0]); !ok {
			return fmt.Errorf("no ingredient with id %s", args[0])
		}
		a.store.Ledger().SetQuantity(args[0], quantity)
		if err := a.store.Save(); err != nil {
			return err
		}
		fmt.Printf("Quantity of %s set to %d\n", a.store.IngredientName(args[0]), quantity)
		return nil
	},
}

var inventoryAdjustCmd = &cobra.Command{
	Use:   "adjust <ingredient-id> <delta>",
	Short: "Add to or subtract from an ingredient's stock (clamped at zero)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("delta must be an integer")
		}
		if _, ok := a.store.Ingredient(args[0]); !ok {
			return fmt.Errorf("no ingredient with id %s", args[0])
		}
		a.store.Ledger().Adjust(args[0], delta)
		if err := a.store.Save(); err != nil {
			return err
		}
		fmt.Printf("Quantity of %s is now %d\n", a.store.IngredientName(args[0]), a.store.Ledger().Quantity(args[0]))
		return nil
	},
}

func init() {
	inventoryListCmd.Flags().String("category", "", "filter by category")
	inventoryCmd.AddCommand(inventoryListCmd, inventorySearchCmd, inventorySetCmd, inventoryAdjustCmd)
	rootCmd.AddCommand(inventoryCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/hotdogccs/hotdogsim/internal/models"
	"github.com/lucsky/cuid"
	"github.com/spf13/cobra"
)

var ingredientCmd = &cobra.Command{
	Use:   "ingredient",
	Short: "Manage the ingredient catalog",
}

var ingredientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingredients, optionally filtered by category and type",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		category, _ := cmd.Flags().GetString("category")
		typeName, _ := cmd.Flags().GetString("type")

		categories := models.Categories
		if category != "" {
			categories = []string{category}
		}
		if category != "" && typeName == "" {
			if types := a.store.TypesInCategory(category); len(types) > 0 {
				fmt.Printf("types in %s: %s\n", category, strings.Join(types, ", "))
			}
		}
		for _, cat := range categories {
			ingredients := a.store.IngredientsByCategory(cat)
			if typeName != "" {
				ingredients = a.store.IngredientsByCategoryAndType(cat, typeName)
			}
			if len(ingredients) == 0 {
				continue
			}
			fmt.Printf("%s (%d)\n", cat, len(ingredients))
			for _, ing := range ingredients {
				line := fmt.Sprintf("  %s [%s]", ing.Name, ing.Type)
				if ing.HasLength() {
					line += fmt.Sprintf(" (length: %s)", *ing.Length)
				}
				fmt.Printf("%s  qty=%d  id=%s\n", line, a.store.Ledger().Quantity(ing.ID), ing.ID)
			}
		}
		return nil
	},
}

var ingredientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new ingredient",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		category, _ := cmd.Flags().GetString("category")
		typeName, _ := cmd.Flags().GetString("type")
		length, _ := cmd.Flags().GetString("length")
		quantity, _ := cmd.Flags().GetInt("quantity")

		valid := false
		for _, cat := range models.Categories {
			if cat == category {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown category %q (want one of %v)", category, models.Categories)
		}

		ing := models.Ingredient{
			ID:       cuid.New(),
			Name:     name,
			Category: category,
			Type:     typeName,
		}
		if length != "" {
			ing.Length = &length
		}
		if err := a.store.AddIngredient(ing, quantity); err != nil {
			return err
		}
		fmt.Printf("Added %q (%s) with quantity %d, id %s\n", name, category, quantity, ing.ID)
		return nil
	},
}

var ingredientDeleteCmd = &cobra.Command{
	Use:   "delete <ingredient-id>",
	Short: "Delete an ingredient, cascading to menu items that use it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		id := args[0]
		confirmed, _ := cmd.Flags().GetBool("yes")

		if _, ok := a.store.Ingredient(id); !ok {
			return fmt.Errorf("no ingredient with id %s", id)
		}
		// Query phase of the two-phase cascade: surface affected items and
		// require explicit confirmation before anything is deleted.
		affected := a.store.ItemsUsing(id)
		if len(affected) > 0 && !confirmed {
			fmt.Printf("Deleting this ingredient also deletes %d menu item(s):\n", len(affected))
			for _, item := range affected {
				fmt.Printf("  - %s\n", item.Name)
			}
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		removed, err := a.store.RemoveIngredient(id)
		if err != nil {
			return err
		}
		for _, item := range removed {
			fmt.Printf("Deleted menu item: %s\n", item.Name)
		}
		fmt.Println("Ingredient deleted.")
		return nil
	},
}

func init() {
	ingredientListCmd.Flags().String("category", "", "filter by category")
	ingredientListCmd.Flags().String("type", "", "filter by type within a category")

	ingredientAddCmd.Flags().String("name", "", "ingredient name")
	ingredientAddCmd.Flags().String("category", "", "one of Bread, Sausage, Topping, Sauce, Side")
	ingredientAddCmd.Flags().String("type", "normal", "type within the category")
	ingredientAddCmd.Flags().String("length", "", "length, for Bread and Sausage")
	ingredientAddCmd.Flags().Int("quantity", 0, "initial stock quantity")
	_ = ingredientAddCmd.MarkFlagRequired("name")
	_ = ingredientAddCmd.MarkFlagRequired("category")

	ingredientDeleteCmd.Flags().Bool("yes", false, "confirm the deletion cascade")

	ingredientCmd.AddCommand(ingredientListCmd, ingredientAddCmd, ingredientDeleteCmd)
	rootCmd.AddCommand(ingredientCmd)
}

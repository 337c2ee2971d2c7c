package cmd

import (
	"fmt"

	"github.com/hotdogccs/hotdogsim/internal/inventory"
	"github.com/hotdogccs/hotdogsim/internal/models"
	"github.com/lucsky/cuid"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage the hot dog menu",
}

var menuListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every menu item with its composition",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		items := a.store.MenuItems()
		if len(items) == 0 {
			fmt.Println("No menu items yet.")
			return nil
		}
		for _, item := range items {
			fmt.Printf("%s (id %s)\n", item.Name, item.ID)
			fmt.Printf("  bread:   %s\n", a.store.IngredientName(item.BreadID))
			fmt.Printf("  sausage: %s\n", a.store.IngredientName(item.SausageID))
			for _, id := range item.ToppingIDs {
				fmt.Printf("  topping: %s\n", a.store.IngredientName(id))
			}
			for _, id := range item.SauceIDs {
				fmt.Printf("  sauce:   %s\n", a.store.IngredientName(id))
			}
			if item.HasSide() {
				fmt.Printf("  side:    %s\n", a.store.IngredientName(*item.SideID))
			}
		}
		return nil
	},
}

var menuAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Compose a new menu item from existing ingredients",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		breadID, _ := cmd.Flags().GetString("bread")
		sausageID, _ := cmd.Flags().GetString("sausage")
		toppingIDs, _ := cmd.Flags().GetStringSlice("topping")
		sauceIDs, _ := cmd.Flags().GetStringSlice("sauce")
		sideID, _ := cmd.Flags().GetString("side")
		force, _ := cmd.Flags().GetBool("force")

		bread, ok := a.store.Ingredient(breadID)
		if !ok {
			return fmt.Errorf("no ingredient with id %s", breadID)
		}
		sausage, ok := a.store.Ingredient(sausageID)
		if !ok {
			return fmt.Errorf("no ingredient with id %s", sausageID)
		}
		if bread.HasLength() && sausage.HasLength() && *bread.Length != *sausage.Length {
			fmt.Printf("Warning: length mismatch (bread %s, sausage %s)\n", *bread.Length, *sausage.Length)
			if !force {
				return fmt.Errorf("re-run with --force to add the item anyway")
			}
		}

		item := models.MenuItem{
			ID:         cuid.New(),
			Name:       name,
			BreadID:    breadID,
			SausageID:  sausageID,
			ToppingIDs: toppingIDs,
			SauceIDs:   sauceIDs,
		}
		if sideID != "" {
			item.SideID = &sideID
		}
		if err := a.store.AddMenuItem(item); err != nil {
			return err
		}

		// The item lands on the menu even when ingredients are out of
		// stock; flag those so the operator knows to restock.
		var zeroStock []string
		for _, id := range item.AllIngredientIDs() {
			if a.store.Ledger().Quantity(id) == 0 {
				zeroStock = append(zeroStock, a.store.IngredientName(id))
			}
		}
		fmt.Printf("Added %q to the menu, id %s\n", name, item.ID)
		if len(zeroStock) > 0 {
			fmt.Println("Note: out of stock until restocked:")
			for _, n := range zeroStock {
				fmt.Printf("  - %s\n", n)
			}
		}
		return nil
	},
}

var menuDeleteCmd = &cobra.Command{
	Use:   "delete <item-id>",
	Short: "Remove a menu item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.store.RemoveMenuItem(args[0]); err != nil {
			return err
		}
		fmt.Println("Menu item deleted.")
		return nil
	},
}

var menuCheckCmd = &cobra.Command{
	Use:   "check <item-id>",
	Short: "Check whether one unit of a menu item can be sold right now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		item, ok := a.store.Catalog().Get(args[0])
		if !ok {
			return fmt.Errorf("no menu item with id %s", args[0])
		}
		req := inventory.RequirementsForItem(item.AllIngredientIDs())
		if ok, shortages := a.store.Ledger().CheckAll(req); !ok {
			fmt.Printf("%s CANNOT be sold, missing ingredients:\n", item.Name)
			for _, s := range shortages {
				fmt.Printf("  - %s: need %d, have %d\n", s.Name, s.Required, s.Available)
			}
		} else {
			fmt.Printf("%s can be sold, all ingredients available.\n", item.Name)
		}
		return nil
	},
}

func init() {
	menuAddCmd.Flags().String("name", "", "menu item name")
	menuAddCmd.Flags().String("bread", "", "bread ingredient id")
	menuAddCmd.Flags().String("sausage", "", "sausage ingredient id")
	menuAddCmd.Flags().StringSlice("topping", nil, "topping ingredient id (repeatable)")
	menuAddCmd.Flags().StringSlice("sauce", nil, "sauce ingredient id (repeatable)")
	menuAddCmd.Flags().String("side", "", "side ingredient id")
	menuAddCmd.Flags().Bool("force", false, "add despite a bread/sausage length mismatch")
	_ = menuAddCmd.MarkFlagRequired("name")
	_ = menuAddCmd.MarkFlagRequired("bread")
	_ = menuAddCmd.MarkFlagRequired("sausage")

	menuCmd.AddCommand(menuListCmd, menuAddCmd, menuDeleteCmd, menuCheckCmd)
	rootCmd.AddCommand(menuCmd)
}

package cmd

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hotdogccs/hotdogsim/internal/logger"
	"github.com/hotdogccs/hotdogsim/internal/output"
	"github.com/hotdogccs/hotdogsim/internal/simulator"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one or more randomized sales days",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		seed, _ := cmd.Flags().GetInt64("seed")
		days, _ := cmd.Flags().GetInt("days")
		if !cmd.Flags().Changed("seed") {
			seed = a.cfg.Seed
		}

		sink, err := output.ForConfig(a.cfg)
		if err != nil {
			return fmt.Errorf("setting up record sink: %w", err)
		}
		defer sink.Close()

		sim := simulator.New(simulator.Params{
			Menu:         a.store.Catalog(),
			Ingredients:  a.store,
			Ledger:       a.store.Ledger(),
			History:      a.store,
			Rand:         rand.New(rand.NewSource(seed)),
			Logger:       logger.Named(a.log, "simulator"),
			ShowProgress: true,
		})

		for day := 0; day < days; day++ {
			result, err := sim.SimulateDay()
			if err != nil {
				if errors.Is(err, simulator.ErrNoMenu) {
					fmt.Println("Cannot simulate: add menu items first.")
					return nil
				}
				return err
			}
			printDayReport(result)
			if err := sink.WriteRecord(result.Record); err != nil {
				a.log.Warn(fmt.Sprintf("record sink write failed: %v", err))
			}
		}
		return nil
	},
}

func printDayReport(result *simulator.DayResult) {
	rec := result.Record
	fmt.Println("=== END OF DAY REPORT ===")
	fmt.Printf("Total clients:            %d\n", rec.TotalClients)
	fmt.Printf("Changed opinion:          %d\n", rec.ClientsChangedOpinion)
	fmt.Printf("Could not buy:            %d\n", rec.ClientsCouldNotBuy)
	fmt.Printf("Served:                   %d\n", result.ClientsServed)
	fmt.Printf("Hot dogs sold:            %d\n", rec.TotalHotdogsSold)
	fmt.Printf("Sides sold:               %d\n", rec.TotalSidesSold)
	fmt.Printf("Average per served client: %.2f\n", result.AvgPerServed)
	if rec.BestSellingItem != "" {
		fmt.Printf("Best seller:              %s\n", rec.BestSellingItem)
	} else {
		fmt.Println("Best seller:              none")
	}
	if len(result.ItemSales) > 0 {
		fmt.Println("Sales by item:")
		for _, nc := range result.ItemSales {
			fmt.Printf("  %-30s %d\n", nc.Name, nc.Count)
		}
	}
	if len(rec.ItemsCausingLoss) > 0 {
		fmt.Println("Items that cost sales:")
		for _, name := range rec.ItemsCausingLoss {
			fmt.Printf("  - %s\n", name)
		}
	}
	if len(rec.IngredientsCausingLoss) > 0 {
		fmt.Println("Ingredients that ran short:")
		for _, name := range rec.IngredientsCausingLoss {
			fmt.Printf("  - %s\n", name)
		}
	}
}

func init() {
	simulateCmd.Flags().Int64("seed", 0, "random seed (defaults to the configured seed)")
	simulateCmd.Flags().Int("days", 1, "number of sales days to simulate")
	rootCmd.AddCommand(simulateCmd)
}

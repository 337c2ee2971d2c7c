package cmd

import (
	"fmt"

	"github.com/hotdogccs/hotdogsim/internal/models"
	"github.com/hotdogccs/hotdogsim/internal/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show trend statistics over the recorded sales history",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		agg := stats.NewAggregator(a.store.History())
		if ok, missing := agg.Available(); !ok {
			fmt.Printf("Need %d more sales day(s) before statistics are available.\n", missing)
			return nil
		}

		clients := agg.Clients()
		fmt.Println("=== CLIENTS PER DAY ===")
		fmt.Printf("%-20s %8s %8s %8s %8s\n", "date", "total", "changed", "lost", "served")
		for i, date := range clients.Dates {
			fmt.Printf("%-20s %8d %8d %8d %8d\n",
				date, clients.Total[i], clients.ChangedOpinion[i], clients.CouldNotBuy[i], clients.Served[i])
		}

		sales := agg.Sales()
		fmt.Println("\n=== SALES PER DAY ===")
		fmt.Printf("%-20s %8s %8s %10s\n", "date", "hotdogs", "sides", "avg/client")
		for i, date := range sales.Dates {
			fmt.Printf("%-20s %8d %8d %10.2f\n",
				date, sales.HotdogsSold[i], sales.SidesSold[i], sales.AvgPerServed[i])
		}

		printCounts("\n=== DAYS AS BEST SELLER ===", agg.BestSellers())
		printCounts("\n=== ITEMS CAUSING CLIENT LOSS ===", agg.LossItems())
		printCounts("\n=== INGREDIENTS CAUSING CLIENT LOSS ===", agg.LossIngredients())
		return nil
	},
}

func printCounts(header string, counts []models.NameCount) {
	fmt.Println(header)
	if len(counts) == 0 {
		fmt.Println("  (no data)")
		return
	}
	for _, nc := range counts {
		fmt.Printf("  %-30s %d\n", nc.Name, nc.Count)
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

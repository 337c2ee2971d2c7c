package cmd

import (
	"fmt"
	"os"

	"github.com/hotdogccs/hotdogsim/internal/logger"
	"github.com/hotdogccs/hotdogsim/internal/models"
	"github.com/hotdogccs/hotdogsim/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile   string
	useRemote bool
)

var rootCmd = &cobra.Command{
	Use:   "hotdogsim",
	Short: "Stand management and sales simulation for a hot dog stand",
	Long: `hotdogsim manages a hot dog stand from the command line: ingredients,
menu composition, stock, a randomized one-day sales simulation and trend
statistics over the recorded sales history.`,
}

// app bundles the wired application for one command invocation.
type app struct {
	cfg   *models.Config
	log   *zap.Logger
	store *store.Store
}

// loadApp loads configuration and the data store. The remote source is only
// fetched when --remote is set; every command works from local data alone.
func loadApp() (*app, error) {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	log := logger.Must(logger.New())

	st := store.New(cfg.DataFile, logger.Named(log, "store"))
	var remote *store.RemoteSource
	if useRemote && cfg.RemoteRepo != "" {
		remote = store.NewRemoteSource(cfg.RemoteRepo, logger.Named(log, "remote"))
	}
	st.LoadAll(remote, cfg.DefaultQuantity)

	return &app{cfg: cfg, log: log, store: st}, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./hotdogsim.yaml)")
	rootCmd.PersistentFlags().BoolVar(&useRemote, "remote", false, "merge the configured remote data source before running")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

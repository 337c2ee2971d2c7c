package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hotdogccs/hotdogsim/internal/output"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the sales history to a parquet file",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("file")

		history := a.store.History()
		if len(history) == 0 {
			fmt.Println("No sales history to export.")
			return nil
		}
		if err := output.ExportParquet(history, path); err != nil {
			return err
		}
		fmt.Printf("Exported %d sales record(s) to %s\n", len(history), path)

		cs := a.cfg.CloudStorage
		if cs.Provider != "s3" || cs.BucketName == "" {
			return nil
		}
		ctx := context.Background()
		uploader, err := output.NewS3Uploader(ctx, cs.Region, cs.BucketName)
		if err != nil {
			return fmt.Errorf("setting up S3 upload: %w", err)
		}
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		key := fmt.Sprintf("exports/%s/%s", time.Now().Format("2006-01-02"), filepath.Base(path))
		if err := uploader.Upload(ctx, key, body); err != nil {
			return err
		}
		fmt.Printf("Uploaded to s3://%s/%s\n", cs.BucketName, key)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("file", "sales_history.parquet", "output parquet file")
	rootCmd.AddCommand(exportCmd)
}

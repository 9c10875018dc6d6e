package main

import (
	"fmt"

	"github.com/indikart/indikart-backend/internal/backend"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo catalog, customers and default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required to seed")
			}
			b, err := backend.Open(cmd.Context(), cfg.DatabaseURL, logger)
			if err != nil {
				return err
			}
			defer b.Close()

			report, err := b.Seed(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info("seed complete", zap.Int("products_added", report.Products))
			return nil
		},
	}
}

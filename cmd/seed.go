package cmd

import (
	"context"
	"fmt"
	"os"

	"medicare/config"
	"medicare/database"
	catalogRepo "medicare/database/repository/catalog"
	"medicare/services/catalog"
	"medicare/utils"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var price float64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the stock service templates into an empty catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx := context.Background()
			store, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName, logger)
			if err != nil {
				return err
			}
			defer store.Close(context.Background())

			repo := catalogRepo.NewMongoCatalogRepo(store)
			if err := repo.EnsureIndexes(ctx); err != nil {
				return err
			}

			if price <= 0 {
				price = cfg.DefaultSlotPrice
			}
			svc := catalog.NewCatalogService(repo, cfg.DefaultSlotPrice, logger)
			n, err := svc.SeedDefaults(ctx, price)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "seeded %d service templates\n", n)
			return nil
		},
	}

	cmd.Flags().Float64Var(&price, "price", 0, "template price (defaults to DEFAULT_SLOT_PRICE)")
	return cmd
}

package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stealthycommerce/stealthy/internal/infrastructure/database"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/migration"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/repository"
	seeddata "github.com/stealthycommerce/stealthy/internal/infrastructure/seed"
	"github.com/stealthycommerce/stealthy/internal/interfaces/cli/cmdutil"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/constants"
	"github.com/stealthycommerce/stealthy/internal/shared/db"
)

var (
	opts        cmdutil.Options
	file        string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a catalog and customers from a YAML file",
		Long:  `Insert products, offers and customers described in a YAML seed file. The whole file is applied in one transaction.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/seed.yaml", "Seed file")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations before seeding")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	f, err := seeddata.LoadFile(file)
	if err != nil {
		return err
	}

	cfg, log, err := cmdutil.Init(&opts, true)
	if err != nil {
		return err
	}
	defer database.Close()

	gdb := database.Get()
	if autoMigrate {
		if err := migration.NewManager(opts.Env, cfg.Database.Driver, migration.DefaultScriptsPath, log).Migrate(gdb); err != nil {
			return err
		}
	}

	seeder := seeddata.NewSeeder(
		repository.NewProductRepository(gdb, log),
		repository.NewOfferRepository(gdb, log),
		repository.NewCustomerRepository(gdb, log),
		db.NewTransactionManager(gdb),
		biztime.RealClock{},
		log.Named("seed"),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := seeder.Run(ctx, f)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	fmt.Printf("Seeded %d products, %d offers, %d customers from %s\n", res.Products, res.Offers, res.Customers, file)
	return nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stealthycommerce/stealthy/internal/interfaces/cli/migrate"
	"github.com/stealthycommerce/stealthy/internal/interfaces/cli/seed"
	"github.com/stealthycommerce/stealthy/internal/interfaces/cli/server"
	"github.com/stealthycommerce/stealthy/internal/interfaces/cli/version"
)

// @title Stealthy API
// @version 1.0
// @description Subscription catalog, ordering and cancellation service.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:          "stealthy",
		Short:        "Stealthy - subscription commerce backend",
		Long:         `Stealthy serves the product catalog, places orders and processes cancellations with prorated refunds.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		version.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

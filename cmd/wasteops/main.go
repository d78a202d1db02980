// @title Barangay Waste Operations API
// @version 1.0
// @description Maintenance tickets and the notification feed for barangay waste collection operations.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ecobarangay/wasteops/internal/interfaces/cli/migrate"
	"github.com/ecobarangay/wasteops/internal/interfaces/cli/server"
	"github.com/ecobarangay/wasteops/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "wasteops",
		Short:        "Barangay waste operations service",
		Long:         `wasteops runs the maintenance ticket API and its database tooling.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

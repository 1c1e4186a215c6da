package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/warden/internal/interfaces/cli/migrate"
	"github.com/orris-inc/warden/internal/interfaces/cli/policy"
	"github.com/orris-inc/warden/internal/interfaces/cli/seed"
	"github.com/orris-inc/warden/internal/interfaces/cli/server"
	"github.com/orris-inc/warden/internal/shared/version"
)

// @title Warden API
// @version 1.0
// @description Role based access control over users, roles, transactions and grants.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	rootCmd := &cobra.Command{
		Use:          "warden",
		Short:        "Warden - role based access control service",
		Long:         `Warden manages users, roles, transactions and the grants between them, and answers whether a user may invoke an operation code.`,
		Version:      version.String(),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		policy.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

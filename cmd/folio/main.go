package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/folio-hq/folio/internal/interfaces/cli/migrate"
	"github.com/folio-hq/folio/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "Folio - multi-tenant portfolio site builder",
		Long:  `Folio serves portfolio sites on per-user subdomains, with plan based content limits and an admin console.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"shieldtrack/internal/interfaces/cli/migrate"
	"shieldtrack/internal/interfaces/cli/seed"
	"shieldtrack/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shieldtrack",
		Short: "ShieldTrack - multi-tenant security finding tracker",
		Long:  `ShieldTrack is a multi-tenant backend for tracking security findings with role-based visibility, built-in server, migration tools, and seed data loading.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

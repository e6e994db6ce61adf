package main

import (
	"os"

	"github.com/spf13/cobra"

	"gympoint/internal/interfaces/cli/migrate"
	"gympoint/internal/interfaces/cli/server"
	"gympoint/internal/interfaces/cli/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gympoint",
		Short: "GymPoint - gym registration service",
		Long:  `GymPoint enrols students into plans. It ships the HTTP API, the mail worker and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		worker.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

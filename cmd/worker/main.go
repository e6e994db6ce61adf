package main

import (
	"os"

	"gympoint/internal/interfaces/cli/worker"
)

// Standalone worker binary for deployments that run it as a separate image.
func main() {
	if err := worker.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

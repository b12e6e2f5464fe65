// Command acosim runs the ant colony engine headless: it loads a graph, ticks
// the simulation and streams snapshots as JSON lines.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "acosim",
		Short: "Ant colony optimization path search",
		Long: `acosim simulates an ant colony searching for the shortest path between
a nest and a food source on a 2D graph.

Ants explore outward, trim loops from their trails, return along the trail and
deposit pheromone; pheromone evaporates once per simulated second.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: info, debug or trace")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log one JSON object per record")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newValidateCmd(),
		newGenerateCmd(),
		newSchemaCmd(),
	)
	return rootCmd
}

// Command aco-tsp runs the ant colony TSP solver over TSPLIB-style explicit
// instances.
//
// Usage:
//
//	aco-tsp solve instances/bays5.tsp --ants 20 --iterations 500 --seed 42
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "aco-tsp",
	Short:        "Heuristic TSP solver based on Ant Colony Optimization",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newSolveCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

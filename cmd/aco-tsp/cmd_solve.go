package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Hitsuji-M/aco-tsp/aco"
	"github.com/Hitsuji-M/aco-tsp/tsplib"
)

// solveFlags carries the engine configuration surface plus CLI-only knobs.
type solveFlags struct {
	ants        int
	iterations  int
	decay       float64
	alpha       float64
	beta        float64
	seed        int64
	randomStart bool
	workers     int
	report      string
	verbose     bool
}

func newSolveCmd() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve <instance.tsp>",
		Short: "Search for a short tour on an explicit lower-diagonal instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(args[0], flags)
		},
	}

	def := aco.DefaultOptions()
	cmd.Flags().IntVar(&flags.ants, "ants", def.Ants, "tours constructed per iteration")
	cmd.Flags().IntVar(&flags.iterations, "iterations", def.Iterations, "number of search rounds")
	cmd.Flags().Float64Var(&flags.decay, "decay", def.Decay, "pheromone evaporation factor in (0,1]")
	cmd.Flags().Float64Var(&flags.alpha, "alpha", def.Alpha, "pheromone exponent")
	cmd.Flags().Float64Var(&flags.beta, "beta", def.Beta, "inverse-distance exponent")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "RNG seed (0 = fixed default, still deterministic)")
	cmd.Flags().BoolVar(&flags.randomStart, "random-start", false, "start each ant at a uniformly random city instead of city 0")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "goroutines per construction batch (0 or 1 = serial)")
	cmd.Flags().StringVar(&flags.report, "report", "", "write the result to this file instead of stdout")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "log every improvement of the best tour")

	return cmd
}

func runSolve(instance string, flags solveFlags) error {
	logger := newLogger(flags.verbose)

	dist, err := tsplib.ParseFile(instance)
	if err != nil {
		return err
	}
	logger.Info("instance loaded", "file", instance, "cities", dist.Rows())

	opts := aco.Options{
		Ants:          flags.ants,
		Iterations:    flags.iterations,
		Decay:         flags.decay,
		Alpha:         flags.alpha,
		Beta:          flags.beta,
		InitPheromone: aco.DefaultInitPheromone,
		RandomStart:   flags.randomStart,
		Workers:       flags.workers,
		Seed:          flags.seed,
	}
	if flags.verbose {
		opts.OnImprove = func(iteration int, best aco.Tour) {
			logger.Debug("best tour improved", "iteration", iteration, "weight", best.Weight)
		}
	}

	colony, err := aco.New(dist, opts)
	if err != nil {
		return err
	}

	started := time.Now()
	best, err := colony.Run()
	if err != nil {
		return err
	}
	logger.Info("search finished",
		"weight", best.Weight,
		"iterations", flags.iterations,
		"ants", flags.ants,
		"elapsed", time.Since(started).Round(time.Millisecond),
	)

	text := formatResult(best)
	if flags.report != "" {
		if err = os.WriteFile(flags.report, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("report written", "file", flags.report)

		return nil
	}
	fmt.Print(text)

	return nil
}

// newLogger returns a text slog.Logger on stderr; verbose enables Debug.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// formatResult renders the tour as a city sequence plus its weight.
func formatResult(t aco.Tour) string {
	var b strings.Builder
	b.WriteString("tour:")
	for _, city := range t.Cities() {
		fmt.Fprintf(&b, " %d", city)
	}
	fmt.Fprintf(&b, "\nweight: %g\n", t.Weight)

	return b.String()
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spboyer/bracketsim/internal/reporting"
	"github.com/spboyer/bracketsim/internal/simulation"
	"github.com/spboyer/bracketsim/internal/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type simulateOptions struct {
	iterations int
	workers    int
	seed       int64
	top        int
	format     string
}

func newSimulateCommand() *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate [teams.csv]",
		Short: "Play many tournaments and report each team's chances",
		Long: `Play the same field many times and report, for every team, how often it
reached the Final Four, the Championship game, and won the title, each with
a 95% confidence interval.

Tournaments are spread over parallel workers. For a given seed, iteration
count and worker count the result is always the same.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulateCommandE(cmd, args, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 0, "Number of tournaments (default: from config)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "k", 0, "Number of parallel workers (default: from config)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed (default: from config, else the clock)")
	cmd.Flags().IntVar(&opts.top, "top", -1, "Show only the N most successful teams, 0 for all (default: from config)")
	cmd.Flags().StringVar(&opts.format, "format", reporting.FormatText, "Output format: text, json")

	return cmd
}

func simulateCommandE(cmd *cobra.Command, args []string, opts *simulateOptions) error {
	if opts.format != reporting.FormatText && opts.format != reporting.FormatJSON {
		return fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}

	cfg, field, path, err := loadInputs(args)
	if err != nil {
		return err
	}

	iterations := cfg.Simulate.Iterations
	if opts.iterations > 0 {
		iterations = opts.iterations
	}
	workers := cfg.Simulate.Workers
	if opts.workers > 0 {
		workers = opts.workers
	}
	top := cfg.Simulate.Top
	if opts.top >= 0 {
		top = opts.top
	}
	seed := resolveSeed(cmd, opts.seed, cfg)

	runner, err := simulation.NewRunner(field,
		simulation.WithWorkers(workers),
		simulation.WithNaming(cfg.BracketNaming()),
	)
	if err != nil {
		return err
	}

	slog.Info("Simulating", "teams", path, "iterations", iterations, "workers", workers, "seed", seed)

	stop := func() {}
	if isTerminal(cmd) {
		s := spinner.Start(cmd.ErrOrStderr(), fmt.Sprintf("Simulating 0/%d", iterations))
		runner.OnProgress(func(e simulation.ProgressEvent) {
			s.Update(fmt.Sprintf("Simulating %d/%d", e.Completed, e.Total))
		})
		stop = s.Stop
	}

	summary, err := runner.Run(cmd.Context(), iterations, seed)
	stop()
	if err != nil {
		return fmt.Errorf("simulation aborted: %w", err)
	}

	if opts.format == reporting.FormatJSON {
		return reporting.WriteSimulationJSON(cmd.OutOrStdout(), summary, top)
	}
	return reporting.WriteSimulationTable(cmd.OutOrStdout(), summary, top)
}

// isTerminal reports whether the command's stderr is an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.ErrOrStderr().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

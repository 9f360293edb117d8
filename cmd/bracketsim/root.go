package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bracketsim",
		Short: "Simulate a single-elimination tournament bracket",
		Long: `bracketsim plays a 64-team single-elimination tournament from a CSV of
teams and their odds of winning it all.

Each game is a weighted draw: a team's chance of winning is its share of
the two teams' combined strength, where strength is one over its odds.
Four divisions are played down to a champion each, then the Final Four and
the Championship game decide the winner.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newSimulateCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}

package main

import (
	"fmt"

	"github.com/spboyer/bracketsim/internal/models"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	var showConfig bool

	cmd := &cobra.Command{
		Use:   "validate [teams.csv]",
		Short: "Check a teams file without playing",
		Long: `Load the teams file and the project config and report every problem found.
No games are played.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateCommandE(cmd, args, showConfig)
		},
	}

	cmd.Flags().BoolVar(&showConfig, "show-config", false, "Also print the effective configuration")

	return cmd
}

func validateCommandE(cmd *cobra.Command, args []string, showConfig bool) error {
	cfg, field, path, err := loadInputs(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ %s: %d divisions of %d teams\n", path, len(field), len(field[0].Lineup)) //nolint:errcheck
	for _, div := range field {
		fav := favourite(div.Lineup)
		fmt.Fprintf(out, "  %-10s favourite: %s (seed %s, odds %g)\n", div.Label, fav.Name, fav.Seed, fav.StrengthOdds) //nolint:errcheck
	}

	if showConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return fmt.Errorf("rendering config: %w", err)
		}
		source := cfg.Path
		if source == "" {
			source = "built-in defaults"
		}
		fmt.Fprintf(out, "\n# effective configuration (%s)\n%s", source, data) //nolint:errcheck
	}
	return nil
}

// favourite returns the entrant with the shortest odds, the first one on ties.
func favourite(l models.Lineup) models.Entrant {
	best := l[0]
	for _, e := range l[1:] {
		if e.StrengthOdds < best.StrengthOdds {
			best = e
		}
	}
	return best
}

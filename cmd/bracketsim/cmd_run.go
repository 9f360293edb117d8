package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/spboyer/bracketsim/internal/bracket"
	"github.com/spboyer/bracketsim/internal/reporting"
	"github.com/spf13/cobra"
)

type runOptions struct {
	seed      int64
	format    string
	output    string
	interpret bool
}

func newRunCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run [teams.csv]",
		Short: "Play one tournament",
		Long: `Play one tournament and print the bracket round by round.

The teams file needs the columns Team, Seed, Division and Odds. It may be
gzip-compressed (.csv.gz), or "-" to read standard input. Without an
argument the data path from .bracketsim.yaml is used.

In text output a team that reached a round through an upset is shown in
UPPER case.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommandE(cmd, args, &opts)
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed (default: from config, else the clock)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: "+strings.Join(reporting.Formats, ", ")+" (default: from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the bracket to a file instead of stdout (.gz is compressed)")
	cmd.Flags().BoolVar(&opts.interpret, "interpret", false, "Print a plain-language summary of the tournament")

	return cmd
}

func runCommandE(cmd *cobra.Command, args []string, opts *runOptions) error {
	cfg, field, path, err := loadInputs(args)
	if err != nil {
		return err
	}

	format := cfg.Format
	if opts.format != "" {
		format = opts.format
	}
	seed := resolveSeed(cmd, opts.seed, cfg)
	slog.Info("Playing tournament", "teams", path, "seed", seed, "format", format)

	out, closeOut, err := openOutput(cmd.OutOrStdout(), opts.output)
	if err != nil {
		return err
	}

	renderer, err := reporting.NewRenderer(format, out)
	if err != nil {
		_ = closeOut()
		return err
	}

	t, err := bracket.New(field, cfg.BracketNaming(), renderer)
	if err != nil {
		_ = closeOut()
		return err
	}

	outcome, err := t.Run(bracket.NewSource(seed))
	if err != nil {
		_ = closeOut()
		return fmt.Errorf("tournament aborted: %w", err)
	}
	if err := renderer.Flush(); err != nil {
		_ = closeOut()
		return fmt.Errorf("writing bracket: %w", err)
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("writing bracket: %w", err)
	}
	if opts.output != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Bracket saved to: %s\n", opts.output) //nolint:errcheck
	}

	if opts.interpret {
		// keep machine-readable output on stdout clean
		w := cmd.OutOrStdout()
		if opts.output == "" && format != reporting.FormatText {
			w = cmd.ErrOrStderr()
		}
		fmt.Fprintf(w, "\n%s", reporting.FormatInterpretation(outcome)) //nolint:errcheck
	}
	return nil
}

// openOutput returns stdout when path is empty, otherwise a new file at path,
// gzip-compressed when path ends in .gz. The close function flushes and
// closes whatever was opened.
func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, f.Close, nil
	}

	zw := gzip.NewWriter(f)
	return zw, func() error {
		if err := zw.Close(); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}, nil
}

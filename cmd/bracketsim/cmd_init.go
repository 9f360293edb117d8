package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spboyer/bracketsim/internal/projectconfig"
	"github.com/spboyer/bracketsim/internal/wizard"
	"github.com/spf13/cobra"
)

type initOptions struct {
	yes    bool
	force  bool
	data   string
	seed   int64
	format string
}

func newInitCommand() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a .bracketsim.yaml",
		Long: `Create a .bracketsim.yaml project config in the given directory (default:
the current directory).

The values are asked for in a short form. Use --yes to skip the form and
take the flags and defaults as they are.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommandE(cmd, args, &opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Do not ask, use flags and defaults")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing config")
	cmd.Flags().StringVar(&opts.data, "data", "", "Teams CSV path")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Fixed random seed")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format for run")

	return cmd
}

func initCommandE(cmd *cobra.Command, args []string, opts *initOptions) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	target := filepath.Join(dir, projectconfig.FileName)
	if _, err := os.Stat(target); err == nil && !opts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", target)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", target, err)
	}

	answers := wizard.DefaultAnswers()
	if opts.data != "" {
		answers.Data = opts.data
	}
	if cmd.Flags().Changed("seed") {
		answers.Seed = strconv.FormatInt(opts.seed, 10)
	}
	if opts.format != "" {
		answers.Format = opts.format
	}

	a := &answers
	if !opts.yes {
		var err error
		a, err = wizard.RunInitWizard(cmd.InOrStdin(), cmd.OutOrStdout(), answers)
		if err != nil {
			return err
		}
	}

	content, err := wizard.Render(a)
	if err != nil {
		return err
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", target) //nolint:errcheck
	return nil
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spboyer/bracketsim/internal/dataset"
	"github.com/spboyer/bracketsim/internal/models"
	"github.com/spboyer/bracketsim/internal/projectconfig"
	"github.com/spf13/cobra"
)

// errNoData is returned when neither an argument nor the config names a
// teams file.
var errNoData = errors.New("no teams file: pass one as an argument or set data in " + projectconfig.FileName)

// loadConfig loads .bracketsim.yaml from the working directory or above.
func loadConfig() (*projectconfig.ProjectConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := projectconfig.Load(wd)
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		slog.Debug("Loaded project config", "path", cfg.Path)
	}
	return cfg, nil
}

// loadInputs resolves the config and the teams file and loads the field.
func loadInputs(args []string) (*projectconfig.ProjectConfig, models.Field, string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, "", err
	}

	path := cfg.Data
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, nil, "", errNoData
	}

	field, err := dataset.LoadField(path, cfg.Naming.Divisions)
	if err != nil {
		return nil, nil, "", err
	}
	return cfg, field, path, nil
}

// resolveSeed picks the --seed flag, then the config seed, then the clock.
func resolveSeed(cmd *cobra.Command, flag int64, cfg *projectconfig.ProjectConfig) int64 {
	if cmd.Flags().Changed("seed") {
		return flag
	}
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	return time.Now().UnixNano()
}

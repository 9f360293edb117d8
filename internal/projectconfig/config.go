// Package projectconfig provides the ProjectConfig struct and loader for
// .bracketsim.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spboyer/bracketsim/internal/bracket"
	"github.com/spboyer/bracketsim/internal/validation"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the project configuration file.
const FileName = ".bracketsim.yaml"

// Default values for project configuration. These are the single source of
// truth; New() references them and no other code should duplicate them.
const (
	DefaultFormat = "text"

	DefaultIterations = 10000
	DefaultWorkers    = 4
	DefaultTop        = 16
)

// RoundName names the round played when Field entrants remain.
type RoundName struct {
	Field int    `yaml:"field"`
	Name  string `yaml:"name"`
}

// NamingConfig holds the labels for divisions, rounds and final stages.
type NamingConfig struct {
	Divisions    []string    `yaml:"divisions,omitempty"`
	Rounds       []RoundName `yaml:"rounds,omitempty"`
	FinalFour    string      `yaml:"final_four,omitempty"`
	Championship string      `yaml:"championship,omitempty"`
	Champion     string      `yaml:"champion,omitempty"`
}

// SimulateConfig holds Monte Carlo settings.
type SimulateConfig struct {
	Iterations int `yaml:"iterations,omitempty"`
	Workers    int `yaml:"workers,omitempty"`
	Top        int `yaml:"top,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .bracketsim.yaml.
type ProjectConfig struct {
	Data     string         `yaml:"data,omitempty"`
	Seed     *int64         `yaml:"seed,omitempty"`
	Format   string         `yaml:"format,omitempty"`
	Naming   NamingConfig   `yaml:"naming,omitempty"`
	Simulate SimulateConfig `yaml:"simulate,omitempty"`

	// Path is where the config was loaded from; empty when defaults are used.
	Path string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	naming := bracket.DefaultNaming()
	rounds := make([]RoundName, 0, len(naming.Rounds))
	for _, field := range []int{64, 32, 16, 8} {
		rounds = append(rounds, RoundName{Field: field, Name: naming.Rounds[field]})
	}

	return &ProjectConfig{
		Format: DefaultFormat,
		Naming: NamingConfig{
			Divisions:    naming.Divisions,
			Rounds:       rounds,
			FinalFour:    naming.FinalFour,
			Championship: naming.Championship,
			Champion:     naming.Champion,
		},
		Simulate: SimulateConfig{
			Iterations: DefaultIterations,
			Workers:    DefaultWorkers,
			Top:        DefaultTop,
		},
	}
}

// Load finds .bracketsim.yaml by walking up from startDir (max 10 levels),
// validates it, unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	path, data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	if problems := validation.ValidateConfigBytes(data); len(problems) > 0 {
		return nil, fmt.Errorf("invalid %s:\n  %s", path, strings.Join(problems, "\n  "))
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	mergeConfig(cfg, &fileCfg)
	cfg.Path = path
	if cfg.Data != "" && !filepath.IsAbs(cfg.Data) {
		cfg.Data = filepath.Join(filepath.Dir(path), cfg.Data)
	}
	return cfg, nil
}

// BracketNaming converts the naming section into engine labels.
func (c *ProjectConfig) BracketNaming() bracket.Naming {
	n := bracket.Naming{
		Divisions:    append([]string(nil), c.Naming.Divisions...),
		Rounds:       make(map[int]string, len(c.Naming.Rounds)),
		FinalFour:    c.Naming.FinalFour,
		Championship: c.Naming.Championship,
		Champion:     c.Naming.Champion,
	}
	for _, r := range c.Naming.Rounds {
		n.Rounds[r.Field] = r.Name
	}
	return n
}

// Marshal renders the config as YAML.
func (c *ProjectConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// findConfigFile walks up from dir looking for .bracketsim.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found.
func findConfigFile(dir string) (string, []byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Data != "" {
		dst.Data = src.Data
	}
	if src.Seed != nil {
		dst.Seed = src.Seed
	}
	if src.Format != "" {
		dst.Format = src.Format
	}

	// Naming
	if len(src.Naming.Divisions) > 0 {
		dst.Naming.Divisions = src.Naming.Divisions
	}
	// round names merge by field size so a file can rename just one round
	for _, r := range src.Naming.Rounds {
		replaced := false
		for i := range dst.Naming.Rounds {
			if dst.Naming.Rounds[i].Field == r.Field {
				dst.Naming.Rounds[i].Name = r.Name
				replaced = true
			}
		}
		if !replaced {
			dst.Naming.Rounds = append(dst.Naming.Rounds, r)
		}
	}
	if src.Naming.FinalFour != "" {
		dst.Naming.FinalFour = src.Naming.FinalFour
	}
	if src.Naming.Championship != "" {
		dst.Naming.Championship = src.Naming.Championship
	}
	if src.Naming.Champion != "" {
		dst.Naming.Champion = src.Naming.Champion
	}

	// Simulate
	if src.Simulate.Iterations != 0 {
		dst.Simulate.Iterations = src.Simulate.Iterations
	}
	if src.Simulate.Workers != 0 {
		dst.Simulate.Workers = src.Simulate.Workers
	}
	if src.Simulate.Top != 0 {
		dst.Simulate.Top = src.Simulate.Top
	}
}

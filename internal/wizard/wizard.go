// Package wizard collects the answers for a new .bracketsim.yaml.
package wizard

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"github.com/spboyer/bracketsim/internal/projectconfig"
	"github.com/spboyer/bracketsim/internal/reporting"
	"golang.org/x/term"
)

// Answers holds everything the init form asks for, as typed.
type Answers struct {
	Data       string
	Seed       string
	Format     string
	Iterations string
}

// DefaultAnswers pre-fills the form from the built-in configuration.
func DefaultAnswers() Answers {
	cfg := projectconfig.New()
	return Answers{
		Data:       "teams.csv",
		Format:     cfg.Format,
		Iterations: strconv.Itoa(cfg.Simulate.Iterations),
	}
}

const configTemplate = `# bracketsim project configuration

# Teams CSV with the columns Team, Seed, Division, Odds.
data: {{ quote .Data }}
{{- if .Seed }}

# Fixed seed for reproducible brackets. Remove for a fresh draw every run.
seed: {{ .Seed }}
{{- end }}

# Output of "bracketsim run": text, markdown, html or json.
format: {{ .Format }}

simulate:
  iterations: {{ .Iterations }}
`

// RunInitWizard asks for the config values on in, starting from defaults.
// Input that is not a terminal is read in accessible (line by line) mode.
func RunInitWizard(in io.Reader, out io.Writer, defaults Answers) (*Answers, error) {
	a := defaults

	formats := make([]huh.Option[string], len(reporting.Formats))
	for i, f := range reporting.Formats {
		formats[i] = huh.NewOption(f, f)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Teams file").
				Description("CSV with Team, Seed, Division and Odds columns").
				Placeholder("teams.csv").
				Value(&a.Data).
				Validate(validateData),
			huh.NewInput().
				Title("Seed").
				Description("Leave empty for a different bracket every run").
				Value(&a.Seed).
				Validate(validateSeed),
			huh.NewSelect[string]().
				Title("Output format").
				Options(formats...).
				Value(&a.Format),
			huh.NewInput().
				Title("Simulation iterations").
				Value(&a.Iterations).
				Validate(validateIterations),
		),
	).
		WithInput(in).
		WithOutput(out)

	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("init form failed: %w", err)
	}

	a.Data = strings.TrimSpace(a.Data)
	a.Seed = strings.TrimSpace(a.Seed)
	a.Iterations = strings.TrimSpace(a.Iterations)
	return &a, nil
}

// Render produces the .bracketsim.yaml text for a.
func Render(a *Answers) (string, error) {
	for _, check := range []func() error{
		func() error { return validateData(a.Data) },
		func() error { return validateSeed(a.Seed) },
		func() error { return validateIterations(a.Iterations) },
		func() error { return validateFormat(a.Format) },
	} {
		if err := check(); err != nil {
			return "", err
		}
	}

	tmpl, err := template.New("config").Funcs(template.FuncMap{"quote": strconv.Quote}).Parse(configTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, a); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

func validateData(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("teams file is required")
	}
	return nil
}

func validateSeed(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("seed must be a whole number")
	}
	return nil
}

func validateFormat(s string) error {
	if !slices.Contains(reporting.Formats, s) {
		return fmt.Errorf("format must be one of %s", strings.Join(reporting.Formats, ", "))
	}
	return nil
}

func validateIterations(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("iterations must be a positive whole number")
	}
	return nil
}

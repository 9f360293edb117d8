package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spboyer/bracketsim/internal/simulation"
	"github.com/spboyer/bracketsim/internal/statistics"
)

// SimulationReport is the JSON document written for a Monte Carlo run.
type SimulationReport struct {
	Iterations   int                       `json:"iterations"`
	Seed         int64                     `json:"seed"`
	UpsetsPerRun statistics.Summary        `json:"upsets_per_run"`
	Entrants     []simulation.EntrantStats `json:"entrants"`
}

// WriteSimulationJSON writes the top entrants of s as indented JSON. top <= 0
// keeps every entrant.
func WriteSimulationJSON(w io.Writer, s *simulation.Summary, top int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(SimulationReport{
		Iterations:   s.Iterations,
		Seed:         s.Seed,
		UpsetsPerRun: s.UpsetsPerRun,
		Entrants:     s.Top(top),
	})
}

// WriteSimulationTable writes an aligned table of the top entrants of s.
func WriteSimulationTable(w io.Writer, s *simulation.Summary, top int) error {
	headers := []string{"#", "Entrant", "Seed", "Division", "Final Four", "Final", "Title"}
	rows := [][]string{headers}
	for i, es := range s.Top(top) {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			es.Entrant.Name,
			es.Entrant.Seed,
			es.Entrant.Division,
			formatProportion(es.FinalFours),
			formatProportion(es.Finals),
			formatProportion(es.Titles),
		})
	}

	widths := make([]int, len(headers))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], stringWidth(cell))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Simulated %d tournaments (seed %d)\n", s.Iterations, s.Seed)
	u := s.UpsetsPerRun
	fmt.Fprintf(&b, "Upsets per tournament: %.2f (95%% CI %.2f-%.2f, range %g-%g)\n\n", u.Mean, u.Lower, u.Upper, u.Min, u.Max)
	for r, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == len(row)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(padRight(cell, widths[i]))
		}
		b.WriteString("\n")
		if r == 0 {
			total := 2 * (len(widths) - 1)
			for _, wd := range widths {
				total += wd
			}
			b.WriteString(strings.Repeat("-", total) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatProportion renders an estimate and its interval in percent.
func formatProportion(p statistics.Proportion) string {
	return fmt.Sprintf("%5.1f%% [%.1f, %.1f]", p.Estimate*100, p.Lower*100, p.Upper*100)
}

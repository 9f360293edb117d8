package reporting

import (
	"encoding/json"
	"io"

	"github.com/spboyer/bracketsim/internal/bracket"
	"github.com/spboyer/bracketsim/internal/models"
)

// RunReport is the JSON document produced for a single tournament.
type RunReport struct {
	Champion *models.Seat  `json:"champion,omitempty"`
	Stages   []StageReport `json:"stages"`
}

// StageReport holds one stage's rounds and winners.
type StageReport struct {
	Label   string        `json:"label"`
	Kind    string        `json:"kind"`
	Rounds  []RoundReport `json:"rounds,omitempty"`
	Winners []models.Seat `json:"winners"`
}

// RoundReport holds one played round.
type RoundReport struct {
	Label   string               `json:"label"`
	Results []models.MatchResult `json:"results"`
}

// JSONPresenter collects the tournament and writes it as one JSON document.
type JSONPresenter struct {
	w      io.Writer
	report RunReport
}

// NewJSONPresenter returns a JSONPresenter writing to w.
func NewJSONPresenter(w io.Writer) *JSONPresenter {
	return &JSONPresenter{w: w, report: RunReport{Stages: []StageReport{}}}
}

func (p *JSONPresenter) StageStarted(label string, kind bracket.StageKind) {
	p.report.Stages = append(p.report.Stages, StageReport{Label: label, Kind: kind.String()})
}

func (p *JSONPresenter) RoundStarted(bracket.Round) {}

func (p *JSONPresenter) RoundCompleted(r bracket.Round, results []models.MatchResult, _ models.Lineup) {
	cur := p.current()
	if cur == nil {
		return
	}
	cur.Rounds = append(cur.Rounds, RoundReport{Label: r.Label, Results: results})
}

func (p *JSONPresenter) StageCompleted(s bracket.Stage) {
	cur := p.current()
	if cur == nil {
		return
	}
	cur.Winners = s.Winners
	if s.Kind == bracket.StageChampion && len(s.Winners) == 1 {
		champ := s.Winners[0]
		p.report.Champion = &champ
	}
}

// Report returns what has been collected so far.
func (p *JSONPresenter) Report() RunReport {
	return p.report
}

// Flush writes the JSON document.
func (p *JSONPresenter) Flush() error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(p.report)
}

func (p *JSONPresenter) current() *StageReport {
	if len(p.report.Stages) == 0 {
		return nil
	}
	return &p.report.Stages[len(p.report.Stages)-1]
}

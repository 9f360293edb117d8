package bracket

import "github.com/spboyer/bracketsim/internal/models"

// StageKind tells presenters which part of the tournament a stage is.
type StageKind int

const (
	StageDivision StageKind = iota
	StageFinalFour
	StageChampionship
	StageChampion
)

func (k StageKind) String() string {
	switch k {
	case StageDivision:
		return "division"
	case StageFinalFour:
		return "final-four"
	case StageChampionship:
		return "championship"
	case StageChampion:
		return "champion"
	}
	return "unknown"
}

// Round is a snapshot of a round about to be played.
type Round struct {
	Label    string           `json:"label"`
	Stage    string           `json:"stage"`
	Matchups []models.Matchup `json:"matchups"`
}

// Stage is a snapshot of a finished stage: a division, the Final Four, the
// Championship game, or the crowning of the champion.
type Stage struct {
	Label   string        `json:"label"`
	Kind    StageKind     `json:"-"`
	Winners []models.Seat `json:"winners"`
}

// Presenter receives the tournament as it is played. Everything it is handed
// is a copy, so presenters cannot change the outcome.
type Presenter interface {
	StageStarted(label string, kind StageKind)
	RoundStarted(r Round)
	RoundCompleted(r Round, results []models.MatchResult, winners models.Lineup)
	StageCompleted(s Stage)
}

// NopPresenter ignores every event.
type NopPresenter struct{}

func (NopPresenter) StageStarted(string, StageKind)                            {}
func (NopPresenter) RoundStarted(Round)                                        {}
func (NopPresenter) RoundCompleted(Round, []models.MatchResult, models.Lineup) {}
func (NopPresenter) StageCompleted(Stage)                                      {}

func (r Round) clone() Round {
	r.Matchups = append([]models.Matchup(nil), r.Matchups...)
	return r
}

func (s Stage) clone() Stage {
	s.Winners = append([]models.Seat(nil), s.Winners...)
	return s
}

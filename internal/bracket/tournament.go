package bracket

import (
	"fmt"
	"log/slog"

	"github.com/spboyer/bracketsim/internal/models"
)

// RoundResult pairs a played round with the result of each of its matchups.
type RoundResult struct {
	Round   Round                `json:"round"`
	Results []models.MatchResult `json:"results"`
}

// Outcome is everything a finished tournament produced.
type Outcome struct {
	DivisionChampions []models.Seat `json:"division_champions"`
	Finalists         []models.Seat `json:"finalists"`
	Champion          models.Seat   `json:"champion"`
	Rounds            []RoundResult `json:"rounds"`
}

// Tournament plays a validated field down to a champion: each division on its
// own, then the Final Four, then the Championship game.
type Tournament struct {
	field     models.Field
	naming    Naming
	presenter Presenter
}

// New validates the field and returns a Tournament ready to run. A nil
// presenter discards all events.
func New(field models.Field, naming Naming, presenter Presenter) (*Tournament, error) {
	if err := field.Validate(); err != nil {
		return nil, err
	}
	if presenter == nil {
		presenter = NopPresenter{}
	}

	own := make(models.Field, len(field))
	for i, d := range field {
		own[i] = models.Division{Label: d.Label, Lineup: d.Lineup.Clone()}
	}
	return &Tournament{field: own, naming: naming, presenter: presenter}, nil
}

// Run plays the whole tournament, drawing from src in division order and
// round order. Any failure aborts the run; there are no partial outcomes.
func (t *Tournament) Run(src Source) (*Outcome, error) {
	out := &Outcome{}

	for _, div := range t.field {
		t.presenter.StageStarted(div.Label, StageDivision)

		seats := seatsOf(div.Lineup)
		for len(seats) > 1 {
			label := t.naming.DivisionRound(div.Label, len(seats)*len(t.field))
			next, err := t.playRound(src, label, div.Label, seats, out)
			if err != nil {
				return nil, err
			}
			seats = next
		}

		slog.Debug("Division resolved", "division", div.Label, "champion", seats[0].Entrant.Name)
		out.DivisionChampions = append(out.DivisionChampions, seats[0])
		t.stageCompleted(div.Label, StageDivision, seats)
	}

	t.presenter.StageStarted(t.naming.FinalFour, StageFinalFour)
	finalists, err := t.playRound(src, t.naming.FinalFour, t.naming.FinalFour, out.DivisionChampions, out)
	if err != nil {
		return nil, err
	}
	out.Finalists = finalists
	t.stageCompleted(t.naming.FinalFour, StageFinalFour, finalists)

	t.presenter.StageStarted(t.naming.Championship, StageChampionship)
	champion, err := t.playRound(src, t.naming.Championship, t.naming.Championship, finalists, out)
	if err != nil {
		return nil, err
	}
	t.stageCompleted(t.naming.Championship, StageChampionship, champion)

	out.Champion = champion[0]
	t.presenter.StageStarted(t.naming.Champion, StageChampion)
	t.stageCompleted(t.naming.Champion, StageChampion, champion)

	slog.Debug("Tournament resolved", "champion", out.Champion.Entrant.Name, "rounds", len(out.Rounds))
	return out, nil
}

func (t *Tournament) playRound(src Source, label, stage string, seats []models.Seat, out *Outcome) ([]models.Seat, error) {
	matchups, err := Matchups(seats)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	round := Round{Label: label, Stage: stage, Matchups: matchups}
	t.presenter.RoundStarted(round.clone())

	slog.Debug("Playing round", "round", label, "entrants", len(seats))
	winners, results, err := Reduce(src, lineupOf(seats))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	t.presenter.RoundCompleted(round.clone(), append([]models.MatchResult(nil), results...), winners.Clone())
	out.Rounds = append(out.Rounds, RoundResult{Round: round, Results: results})

	next := make([]models.Seat, len(results))
	for i, r := range results {
		next[i] = models.Seat{Entrant: r.Winner, Upset: r.Upset}
	}
	return next, nil
}

func (t *Tournament) stageCompleted(label string, kind StageKind, winners []models.Seat) {
	t.presenter.StageCompleted(Stage{Label: label, Kind: kind, Winners: winners}.clone())
}

func seatsOf(l models.Lineup) []models.Seat {
	seats := make([]models.Seat, len(l))
	for i, e := range l {
		seats[i] = models.Seat{Entrant: e}
	}
	return seats
}

func lineupOf(seats []models.Seat) models.Lineup {
	l := make(models.Lineup, len(seats))
	for i, s := range seats {
		l[i] = s.Entrant
	}
	return l
}

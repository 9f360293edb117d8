package bracket

import (
	"fmt"

	"github.com/spboyer/bracketsim/internal/models"
)

// Reduce plays one round. The winner of pair (2i, 2i+1) takes position i of
// the returned lineup, so left-to-right order survives the round. The input
// lineup is not modified. Any failed matchup aborts the round.
func Reduce(src Source, lineup models.Lineup) (models.Lineup, []models.MatchResult, error) {
	if len(lineup) < 2 || len(lineup)%2 != 0 {
		return nil, nil, models.Malformed("cannot pair a lineup of %d entrants", len(lineup))
	}

	next := make(models.Lineup, 0, len(lineup)/2)
	results := make([]models.MatchResult, 0, len(lineup)/2)
	for i := 0; i < len(lineup); i += 2 {
		res, err := Resolve(src, lineup[i], lineup[i+1])
		if err != nil {
			return nil, nil, fmt.Errorf("pairing %d (%s vs %s): %w", i/2+1, lineup[i].Name, lineup[i+1].Name, err)
		}
		next = append(next, res.Winner)
		results = append(results, res)
	}
	return next, results, nil
}

// Matchups computes the probabilities for every pairing of a round without
// drawing anything.
func Matchups(seats []models.Seat) ([]models.Matchup, error) {
	if len(seats)%2 != 0 {
		return nil, models.Malformed("cannot pair a lineup of %d entrants", len(seats))
	}

	out := make([]models.Matchup, 0, len(seats)/2)
	for i := 0; i < len(seats); i += 2 {
		pa, pb, err := WinProbabilities(seats[i].Entrant, seats[i+1].Entrant)
		if err != nil {
			return nil, err
		}
		out = append(out, models.Matchup{
			Left:      seats[i],
			LeftProb:  pa,
			Right:     seats[i+1],
			RightProb: pb,
		})
	}
	return out, nil
}

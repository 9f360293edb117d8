package bracket

import (
	"fmt"
	"testing"

	"github.com/spboyer/bracketsim/internal/models"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws, then keeps returning the last one.
type scriptedSource struct {
	draws []int
	calls int
}

func (s *scriptedSource) IntN(n int) int {
	d := s.draws[len(s.draws)-1]
	if s.calls < len(s.draws) {
		d = s.draws[s.calls]
	}
	s.calls++
	return d % n
}

func entrant(t *testing.T, name, division string, odds float64) models.Entrant {
	t.Helper()
	e, err := models.NewEntrant(name, "1", division, odds)
	require.NoError(t, err)
	return e
}

// testField builds four divisions of perDivision entrants, all with distinct
// odds.
func testField(t *testing.T, perDivision int) models.Field {
	t.Helper()
	var field models.Field
	odds := 2.0
	for _, div := range models.DefaultDivisionOrder {
		var lineup models.Lineup
		for i := 0; i < perDivision; i++ {
			e, err := models.NewEntrant(fmt.Sprintf("%s-%d", div, i+1), fmt.Sprint(i+1), div, odds)
			require.NoError(t, err)
			lineup = append(lineup, e)
			odds += 3.5
		}
		field = append(field, models.Division{Label: div, Lineup: lineup})
	}
	return field
}

type recordingPresenter struct {
	stages       []Stage
	started      []string
	rounds       []Round
	roundWinners []models.Lineup
}

func (p *recordingPresenter) StageStarted(label string, _ StageKind) {
	p.started = append(p.started, label)
}

func (p *recordingPresenter) RoundStarted(r Round) {
	p.rounds = append(p.rounds, r)
}

func (p *recordingPresenter) RoundCompleted(_ Round, _ []models.MatchResult, winners models.Lineup) {
	p.roundWinners = append(p.roundWinners, winners)
}

func (p *recordingPresenter) StageCompleted(s Stage) {
	p.stages = append(p.stages, s)
}

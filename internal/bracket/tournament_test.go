package bracket

import (
	"errors"
	"testing"

	"github.com/spboyer/bracketsim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournament_SixteenEntrants(t *testing.T) {
	field := testField(t, 4)
	p := &recordingPresenter{}

	tour, err := New(field, DefaultNaming(), p)
	require.NoError(t, err)

	out, err := tour.Run(NewSource(2024))
	require.NoError(t, err)

	require.Len(t, out.DivisionChampions, 4)
	require.Len(t, out.Finalists, 2)
	assert.NotEmpty(t, out.Champion.Entrant.Name)

	// each division champion came out of its own division, in order
	for i, champ := range out.DivisionChampions {
		assert.Equal(t, models.DefaultDivisionOrder[i], champ.Entrant.Division)
	}

	// 4 divisions x 2 rounds, then Final Four and Championship
	require.Len(t, p.rounds, 10)
	require.Len(t, p.roundWinners, 10)
	wantSizes := []int{2, 1, 2, 1, 2, 1, 2, 1, 2, 1}
	for i, winners := range p.roundWinners {
		assert.Len(t, winners, wantSizes[i], "round %s", p.rounds[i].Label)
		assert.Len(t, p.rounds[i].Matchups, wantSizes[i], "round %s", p.rounds[i].Label)
	}

	assert.Equal(t, "Midwest Sweet Sixteen", p.rounds[0].Label)
	assert.Equal(t, "Midwest Elite Eight", p.rounds[1].Label)
	assert.Equal(t, "East Elite Eight", p.rounds[7].Label)
	assert.Equal(t, "Final Four", p.rounds[8].Label)
	assert.Equal(t, "Championship", p.rounds[9].Label)

	assert.Equal(t, []string{"Midwest", "West", "South", "East", "Final Four", "Championship", "Champion!"}, p.started)
	require.Len(t, p.stages, 7)
	for _, s := range p.stages[:4] {
		assert.Equal(t, StageDivision, s.Kind)
		assert.Len(t, s.Winners, 1)
	}
	assert.Len(t, p.stages[4].Winners, 2)
	assert.Len(t, p.stages[5].Winners, 1)
	assert.Equal(t, StageChampion, p.stages[6].Kind)
	assert.Equal(t, out.Champion, p.stages[6].Winners[0])

	// the Final Four is the four division champions in division order
	for i, m := range p.rounds[8].Matchups {
		assert.Equal(t, out.DivisionChampions[2*i], m.Left)
		assert.Equal(t, out.DivisionChampions[2*i+1], m.Right)
	}
}

func TestTournament_FullField(t *testing.T) {
	field := testField(t, 16)
	p := &recordingPresenter{}

	tour, err := New(field, DefaultNaming(), p)
	require.NoError(t, err)

	out, err := tour.Run(NewSource(1))
	require.NoError(t, err)

	// 4 divisions x 4 rounds + Final Four + Championship
	assert.Len(t, out.Rounds, 18)
	assert.Equal(t, "Midwest Round of 64", p.rounds[0].Label)
	assert.Equal(t, "Midwest Round of 32", p.rounds[1].Label)
	assert.Equal(t, "Midwest Sweet Sixteen", p.rounds[2].Label)
	assert.Equal(t, "Midwest Elite Eight", p.rounds[3].Label)
	assert.Len(t, p.rounds[0].Matchups, 8)
}

func TestTournament_Deterministic(t *testing.T) {
	field := testField(t, 8)

	run := func() *Outcome {
		tour, err := New(field, DefaultNaming(), nil)
		require.NoError(t, err)
		out, err := tour.Run(NewSource(99))
		require.NoError(t, err)
		return out
	}

	first := run()
	second := run()
	assert.Equal(t, first.Champion, second.Champion)
	assert.Equal(t, first.Rounds, second.Rounds)
}

func TestTournament_TwoEntrantDivisions(t *testing.T) {
	field := testField(t, 2)
	p := &recordingPresenter{}

	tour, err := New(field, DefaultNaming(), p)
	require.NoError(t, err)
	_, err = tour.Run(NewSource(5))
	require.NoError(t, err)

	// one round per division, then Final Four and Championship
	require.Len(t, p.rounds, 6)
	assert.Equal(t, "Midwest Elite Eight", p.rounds[0].Label)
	assert.Equal(t, "West Elite Eight", p.rounds[1].Label)
}

func TestTournament_UpsetSeatsCarryIntoNextRound(t *testing.T) {
	field := testField(t, 2)
	p := &recordingPresenter{}

	tour, err := New(field, DefaultNaming(), p)
	require.NoError(t, err)

	// every draw picks the right-hand, weaker entrant
	out, err := tour.Run(&scriptedSource{draws: []int{999}})
	require.NoError(t, err)

	for _, champ := range out.DivisionChampions {
		assert.True(t, champ.Upset, champ.Entrant.Name)
	}
	for _, m := range p.rounds[4].Matchups {
		assert.True(t, m.Left.Upset)
		assert.True(t, m.Right.Upset)
	}
}

func TestTournament_MalformedField(t *testing.T) {
	tests := []struct {
		name  string
		field func(t *testing.T) models.Field
		want  string
	}{
		{
			name: "three divisions",
			field: func(t *testing.T) models.Field {
				return testField(t, 4)[:3]
			},
			want: "field has 3 divisions",
		},
		{
			name: "not a power of two",
			field: func(t *testing.T) models.Field {
				f := testField(t, 4)
				f[1].Lineup = f[1].Lineup[:3]
				return f
			},
			want: "lineup has 3 entrants",
		},
		{
			name: "unequal sizes",
			field: func(t *testing.T) models.Field {
				f := testField(t, 4)
				f[2].Lineup = f[2].Lineup[:2]
				return f
			},
			want: "2 entrants, but Midwest has 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.field(t), DefaultNaming(), nil)
			require.Error(t, err)

			var malformed *models.MalformedInputError
			require.True(t, errors.As(err, &malformed))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTournament_FailureAbortsRun(t *testing.T) {
	field := testField(t, 4)
	tour, err := New(field, DefaultNaming(), nil)
	require.NoError(t, err)

	out, err := tour.Run(badSource{})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "Midwest Sweet Sixteen")
}

func TestTournament_PresenterCannotAlterRun(t *testing.T) {
	field := testField(t, 4)

	tampering := &tamperingPresenter{}
	tour, err := New(field, DefaultNaming(), tampering)
	require.NoError(t, err)
	tampered, err := tour.Run(NewSource(8))
	require.NoError(t, err)

	clean, err := New(field, DefaultNaming(), nil)
	require.NoError(t, err)
	want, err := clean.Run(NewSource(8))
	require.NoError(t, err)

	assert.Equal(t, want.Champion, tampered.Champion)
	assert.Equal(t, want.DivisionChampions, tampered.DivisionChampions)
}

type tamperingPresenter struct{ NopPresenter }

func (tamperingPresenter) RoundStarted(r Round) {
	for i := range r.Matchups {
		r.Matchups[i].Left.Entrant.WinWeight = 0
	}
}

func (tamperingPresenter) RoundCompleted(_ Round, _ []models.MatchResult, winners models.Lineup) {
	for i := range winners {
		winners[i].WinWeight = 1e9
	}
}

func TestDivisionRoundNaming(t *testing.T) {
	n := DefaultNaming()
	assert.Equal(t, "Midwest Round of 64", n.DivisionRound("Midwest", 64))
	assert.Equal(t, "East Elite Eight", n.DivisionRound("East", 8))
	assert.Equal(t, "West Round of 128", n.DivisionRound("West", 128))
}

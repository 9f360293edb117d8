package simulation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/spboyer/bracketsim/internal/bracket"
	"github.com/spboyer/bracketsim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallField has perDivision entrants per division; the first entrant of each
// division is odds-on and the rest are long shots.
func smallField(t *testing.T, perDivision int) models.Field {
	t.Helper()
	var field models.Field
	for _, div := range models.DefaultDivisionOrder {
		var lineup models.Lineup
		for i := 0; i < perDivision; i++ {
			odds := 500.0
			if i == 0 {
				odds = 1
			}
			e, err := models.NewEntrant(fmt.Sprintf("%s %d", div, i+1), fmt.Sprint(i+1), div, odds)
			require.NoError(t, err)
			lineup = append(lineup, e)
		}
		field = append(field, models.Division{Label: div, Lineup: lineup})
	}
	return field
}

func TestRunner_Totals(t *testing.T) {
	r, err := NewRunner(smallField(t, 4), WithWorkers(3))
	require.NoError(t, err)

	const n = 500
	sum, err := r.Run(context.Background(), n, 7)
	require.NoError(t, err)

	assert.Equal(t, n, sum.Iterations)
	assert.Equal(t, int64(7), sum.Seed)
	require.Len(t, sum.Entrants, 16)

	var titles, finals, finalFours, games int
	for _, es := range sum.Entrants {
		titles += es.Titles.Successes
		finals += es.Finals.Successes
		finalFours += es.FinalFours.Successes
		games += es.GamesWon
		assert.Equal(t, n, es.Titles.Trials)
		assert.LessOrEqual(t, es.UpsetWins, es.GamesWon)
	}
	assert.Equal(t, n, titles)
	assert.Equal(t, 2*n, finals)
	assert.Equal(t, 4*n, finalFours)
	// 8 division games, 4 division finals, 2 semifinals, 1 final
	assert.Equal(t, 15*n, games)
	assert.Equal(t, n, sum.UpsetsPerRun.N)
}

func TestRunner_FavouritesDominate(t *testing.T) {
	r, err := NewRunner(smallField(t, 2))
	require.NoError(t, err)

	sum, err := r.Run(context.Background(), 400, 1)
	require.NoError(t, err)

	for _, es := range sum.Top(4) {
		assert.Equal(t, "1", es.Entrant.Seed, "%s should be among the top four", es.Entrant.Name)
		assert.Greater(t, es.FinalFours.Estimate, 0.95)
	}

	es, ok := sum.Lookup("West", "West 2")
	require.True(t, ok)
	assert.Less(t, es.FinalFours.Estimate, 0.05)
	assert.GreaterOrEqual(t, es.UpsetWins, es.FinalFours.Successes)

	_, ok = sum.Lookup("West", "Nobody")
	assert.False(t, ok)
}

func TestRunner_Deterministic(t *testing.T) {
	field := smallField(t, 8)
	run := func() *Summary {
		r, err := NewRunner(field, WithWorkers(4))
		require.NoError(t, err)
		sum, err := r.Run(context.Background(), 300, 99)
		require.NoError(t, err)
		return sum
	}
	assert.Equal(t, run(), run())
}

func TestRunner_MoreWorkersThanIterations(t *testing.T) {
	r, err := NewRunner(smallField(t, 2), WithWorkers(16))
	require.NoError(t, err)

	sum, err := r.Run(context.Background(), 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.UpsetsPerRun.N)
}

func TestRunner_Progress(t *testing.T) {
	r, err := NewRunner(smallField(t, 2), WithWorkers(2))
	require.NoError(t, err)

	var (
		mu     sync.Mutex
		events []ProgressEvent
	)
	r.OnProgress(func(e ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	})

	_, err = r.Run(context.Background(), 250, 3)
	require.NoError(t, err)

	require.Len(t, events, 3)
	completed := make([]int, len(events))
	for i, e := range events {
		assert.Equal(t, 250, e.Total)
		completed[i] = e.Completed
	}
	assert.ElementsMatch(t, []int{100, 200, 250}, completed)
}

func TestRunner_Cancelled(t *testing.T) {
	r, err := NewRunner(smallField(t, 2))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Run(ctx, 1000, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunner_Errors(t *testing.T) {
	r, err := NewRunner(smallField(t, 2))
	require.NoError(t, err)
	_, err = r.Run(context.Background(), 0, 1)
	assert.EqualError(t, err, "iterations must be positive, got 0")

	field := smallField(t, 2)
	field[1].Lineup = field[1].Lineup[:1]
	_, err = NewRunner(field)
	var malformed *models.MalformedInputError
	assert.ErrorAs(t, err, &malformed)
}

func TestRunner_Naming(t *testing.T) {
	naming := bracket.DefaultNaming()
	naming.Champion = "Winner"
	r, err := NewRunner(smallField(t, 2), WithNaming(naming), WithWorkers(-1))
	require.NoError(t, err)
	assert.Equal(t, "Winner", r.naming.Champion)
	assert.Equal(t, DefaultWorkers, r.workers)
}

package reporting

import (
	"testing"

	"github.com/spboyer/bracketsim/internal/bracket"
	"github.com/spboyer/bracketsim/internal/models"
	"github.com/stretchr/testify/require"
)

// fixedSource always draws the same ticket: 0 lets the left entrant win every
// game, 999 the right one.
type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

// upsetField has a 90/10 favourite and long shot in every division.
func upsetField(t *testing.T) models.Field {
	t.Helper()
	var field models.Field
	for _, div := range models.DefaultDivisionOrder {
		fav, err := models.NewEntrant(div+" Favourite", "1", div, 1)
		require.NoError(t, err)
		dog, err := models.NewEntrant(div+" Longshot", "16", div, 9)
		require.NoError(t, err)
		field = append(field, models.Division{Label: div, Lineup: models.Lineup{fav, dog}})
	}
	return field
}

func play(t *testing.T, p bracket.Presenter, src bracket.Source) *bracket.Outcome {
	t.Helper()
	tour, err := bracket.New(upsetField(t), bracket.DefaultNaming(), p)
	require.NoError(t, err)
	out, err := tour.Run(src)
	require.NoError(t, err)
	return out
}

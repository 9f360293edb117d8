package bracket

import (
	"fmt"
	"log/slog"

	"github.com/spboyer/bracketsim/internal/models"
)

// Resolve plays one matchup. The winner is drawn from TicketCount tickets,
// split between the entrants according to WinProbabilities; tickets
// [0, leftTickets) belong to a and the rest to b.
//
// The upset flag is decided fresh for every matchup: it is set only when the
// winner had the strictly lower probability. Equal probabilities never
// produce an upset.
func Resolve(src Source, a, b models.Entrant) (models.MatchResult, error) {
	pa, pb, err := WinProbabilities(a, b)
	if err != nil {
		return models.MatchResult{}, err
	}

	ta, _, err := Tickets(a, b, pa, pb)
	if err != nil {
		return models.MatchResult{}, err
	}

	draw := src.IntN(TicketCount)
	if draw < 0 || draw >= TicketCount {
		return models.MatchResult{}, fmt.Errorf("random source returned %d, want [0, %d)", draw, TicketCount)
	}

	result := models.MatchResult{
		Left:      a,
		Right:     b,
		LeftProb:  pa,
		RightProb: pb,
	}
	if draw < ta {
		result.Winner = a
		result.Upset = pa < pb
	} else {
		result.Winner = b
		result.Upset = pb < pa
	}

	if result.Upset {
		slog.Debug("Upset", "winner", result.Winner.Name, "loser", result.Loser().Name, "winnerProb", result.WinnerProb())
	}
	return result, nil
}

// CoinFlip picks one of the two entrants with equal chance, ignoring their
// strength.
func CoinFlip(src Source, a, b models.Entrant) models.Entrant {
	if src.IntN(2) == 0 {
		return a
	}
	return b
}

package bracket

import (
	"math"

	"github.com/spboyer/bracketsim/internal/models"
)

// TicketCount is the number of equally likely tickets a matchup is drawn from.
// Each 0.1% of win probability is one ticket.
const TicketCount = 1000

// WinProbabilities returns each entrant's chance of winning the matchup as a
// percentage rounded to the nearest 0.1%.
//
// The two sides are rounded independently and are not normalized, so their
// sum can be off from 100 by up to 0.1.
func WinProbabilities(a, b models.Entrant) (float64, float64, error) {
	total := a.WinWeight + b.WinWeight
	if !(total > 0) || math.IsInf(total, 0) {
		return 0, 0, &models.DegenerateMatchupError{Left: a, Right: b}
	}

	pa := round3(a.WinWeight/total) * 100
	pb := round3(b.WinWeight/total) * 100
	return pa, pb, nil
}

// Tickets converts a pair of probabilities into ticket counts and checks
// that they fill the hat exactly.
func Tickets(a, b models.Entrant, pa, pb float64) (int, int, error) {
	ta := int(math.RoundToEven(pa * 10))
	tb := int(math.RoundToEven(pb * 10))
	if ta+tb != TicketCount || ta < 0 || tb < 0 {
		return 0, 0, &models.InternalInvariantError{
			Left:         a,
			Right:        b,
			LeftProb:     pa,
			RightProb:    pb,
			LeftTickets:  ta,
			RightTickets: tb,
		}
	}
	return ta, tb, nil
}

// round3 rounds to three decimals, ties to even.
func round3(x float64) float64 {
	return math.RoundToEven(x*1000) / 1000
}

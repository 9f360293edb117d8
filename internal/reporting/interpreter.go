package reporting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spboyer/bracketsim/internal/bracket"
	"github.com/spboyer/bracketsim/internal/models"
)

// InterpretProbability returns a plain-language label for a single-game win
// probability given in percent.
func InterpretProbability(pct float64) string {
	switch {
	case pct >= 90:
		return "Heavy favourite (>=90%)"
	case pct >= 65:
		return "Favourite (65-90%)"
	case pct > 35:
		return "Toss-up (35-65%)"
	case pct > 10:
		return "Underdog (10-35%)"
	default:
		return "Long shot (<=10%)"
	}
}

// Upsets returns every upset in the outcome, biggest (least likely) first.
func Upsets(outcome *bracket.Outcome) []models.MatchResult {
	var upsets []models.MatchResult
	for _, rr := range outcome.Rounds {
		for _, res := range rr.Results {
			if res.Upset {
				upsets = append(upsets, res)
			}
		}
	}
	sort.SliceStable(upsets, func(i, j int) bool {
		return upsets[i].WinnerProb() < upsets[j].WinnerProb()
	})
	return upsets
}

// FormatInterpretation returns a short plain-language summary of a run.
func FormatInterpretation(outcome *bracket.Outcome) string {
	var b strings.Builder

	champ := outcome.Champion.Entrant
	b.WriteString("📖 What happened\n\n")
	fmt.Fprintf(&b, "  Champion: %s (%s, seed %s, pre-tournament odds %g)\n", champ.Name, champ.Division, champ.Seed, champ.StrengthOdds)

	games := 0
	for _, rr := range outcome.Rounds {
		games += len(rr.Results)
	}
	upsets := Upsets(outcome)
	fmt.Fprintf(&b, "  Upsets:   %d of %d games\n", len(upsets), games)

	if len(upsets) > 0 {
		u := upsets[0]
		fmt.Fprintf(&b, "  Biggest:  %s over %s at %.1f%% (%s)\n",
			u.Winner.Name, u.Loser().Name, u.WinnerProb(), InterpretProbability(u.WinnerProb()))
	}

	if len(outcome.Rounds) > 0 {
		final := outcome.Rounds[len(outcome.Rounds)-1]
		if len(final.Results) == 1 {
			res := final.Results[0]
			fmt.Fprintf(&b, "  Final:    %s beat %s as a %s\n",
				res.Winner.Name, res.Loser().Name, strings.ToLower(InterpretProbability(res.WinnerProb())))
		}
	}
	return b.String()
}

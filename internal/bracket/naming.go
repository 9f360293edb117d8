package bracket

import (
	"fmt"

	"github.com/spboyer/bracketsim/internal/models"
)

// Naming holds the labels used for stages and rounds.
type Naming struct {
	// Divisions is the playing order of the four divisions.
	Divisions []string
	// Rounds maps the number of entrants still alive across the whole field
	// to the name of the round, e.g. 16 -> "Sweet Sixteen".
	Rounds       map[int]string
	FinalFour    string
	Championship string
	Champion     string
}

// DefaultNaming returns the usual college-basketball labels.
func DefaultNaming() Naming {
	return Naming{
		Divisions: append([]string(nil), models.DefaultDivisionOrder...),
		Rounds: map[int]string{
			64: "Round of 64",
			32: "Round of 32",
			16: "Sweet Sixteen",
			8:  "Elite Eight",
		},
		FinalFour:    "Final Four",
		Championship: "Championship",
		Champion:     "Champion!",
	}
}

// DivisionRound labels a round inside a division. alive is the number of
// entrants left across all divisions when the round starts.
func (n Naming) DivisionRound(division string, alive int) string {
	name, ok := n.Rounds[alive]
	if !ok {
		name = fmt.Sprintf("Round of %d", alive)
	}
	return division + " " + name
}

package models

import (
	"math"
	"strings"
)

// Entrant is a single participant in the bracket.
//
// StrengthOdds follows the betting convention: it is the entrant's odds to win
// the whole tournament, so smaller is stronger. WinWeight is derived from it
// once, at construction, and never changes.
type Entrant struct {
	Name         string  `json:"name"`
	Seed         string  `json:"seed"`
	Division     string  `json:"division"`
	StrengthOdds float64 `json:"odds"`
	WinWeight    float64 `json:"win_weight"`
}

// NewEntrant builds an Entrant and derives its win weight as 1/odds.
// Odds that are not a positive finite number are rejected with an
// *InvalidOddsError.
func NewEntrant(name, seed, division string, odds float64) (Entrant, error) {
	if math.IsNaN(odds) || math.IsInf(odds, 0) || odds <= 0 {
		return Entrant{}, &InvalidOddsError{Name: name, Odds: odds}
	}

	return Entrant{
		Name:         name,
		Seed:         seed,
		Division:     division,
		StrengthOdds: odds,
		WinWeight:    1 / odds,
	}, nil
}

// String returns the entrant's name.
func (e Entrant) String() string { return e.Name }

// Same reports whether two values describe the same entrant.
func (e Entrant) Same(other Entrant) bool {
	return e.Name == other.Name && e.Division == other.Division && e.Seed == other.Seed
}

// Key identifies an entrant across independent tournament runs.
func (e Entrant) Key() string {
	return strings.ToLower(e.Division) + "/" + strings.ToLower(e.Name)
}

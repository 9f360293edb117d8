package models

import (
	"fmt"
	"strings"
)

// InvalidOddsError is returned when an entrant is given odds that cannot be
// turned into a win weight.
type InvalidOddsError struct {
	Name string
	Odds float64
}

func (e *InvalidOddsError) Error() string {
	return fmt.Sprintf("invalid odds %v for %q: odds must be a positive number", e.Odds, e.Name)
}

// MalformedInputError is returned when the shape of the field is wrong: a
// lineup that is not a power of two, a missing or extra division, or an
// entrant with required fields left empty. It is always raised before any
// matchup is drawn.
type MalformedInputError struct {
	Problems []string
}

// Malformed is a shorthand for a MalformedInputError with a single problem.
func Malformed(format string, args ...any) *MalformedInputError {
	return &MalformedInputError{Problems: []string{fmt.Sprintf(format, args...)}}
}

func (e *MalformedInputError) Error() string {
	switch len(e.Problems) {
	case 0:
		return "malformed input"
	case 1:
		return "malformed input: " + e.Problems[0]
	}
	return fmt.Sprintf("malformed input (%d problems):\n  - %s", len(e.Problems), strings.Join(e.Problems, "\n  - "))
}

// DegenerateMatchupError is returned when the two entrants of a pairing have
// no combined win weight, so no probability can be computed.
type DegenerateMatchupError struct {
	Left, Right Entrant
}

func (e *DegenerateMatchupError) Error() string {
	return fmt.Sprintf("degenerate matchup %q vs %q: combined win weight is %v",
		e.Left.Name, e.Right.Name, e.Left.WinWeight+e.Right.WinWeight)
}

// InternalInvariantError means the weighted draw would have been skewed. The
// run is aborted with the pairing and the numbers that produced it.
type InternalInvariantError struct {
	Left, Right               Entrant
	LeftProb, RightProb       float64
	LeftTickets, RightTickets int
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated: %q (%.1f%%, %d tickets) vs %q (%.1f%%, %d tickets) fill %d of 1000 tickets",
		e.Left.Name, e.LeftProb, e.LeftTickets,
		e.Right.Name, e.RightProb, e.RightTickets,
		e.LeftTickets+e.RightTickets)
}

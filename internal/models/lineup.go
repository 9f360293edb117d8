package models

import "fmt"

// DefaultDivisionOrder is the order in which divisions are played and
// presented.
var DefaultDivisionOrder = []string{"Midwest", "West", "South", "East"}

// Lineup is an ordered list of entrants paired by adjacency: positions (0,1),
// (2,3), ... meet in the current round.
type Lineup []Entrant

// Clone returns a copy of the lineup that shares no backing array with l.
func (l Lineup) Clone() Lineup {
	if l == nil {
		return nil
	}
	out := make(Lineup, len(l))
	copy(out, l)
	return out
}

// Names returns the entrant names in lineup order.
func (l Lineup) Names() []string {
	names := make([]string, len(l))
	for i, e := range l {
		names[i] = e.Name
	}
	return names
}

// Validate checks that the lineup can be played down to a single winner:
// a power-of-two length of at least two and fully populated entrants.
func (l Lineup) Validate() error {
	var problems []string
	if !IsPowerOfTwo(len(l)) {
		problems = append(problems, fmt.Sprintf("lineup has %d entrants, want a power of two >= 2", len(l)))
	}
	for i, e := range l {
		problems = append(problems, entrantProblems(i, e)...)
	}
	if len(problems) > 0 {
		return &MalformedInputError{Problems: problems}
	}
	return nil
}

func entrantProblems(pos int, e Entrant) []string {
	var problems []string
	if e.Name == "" {
		problems = append(problems, fmt.Sprintf("entrant %d has no name", pos+1))
	}
	label := e.Name
	if label == "" {
		label = fmt.Sprintf("#%d", pos+1)
	}
	if e.Seed == "" {
		problems = append(problems, fmt.Sprintf("entrant %s has no seed", label))
	}
	if e.Division == "" {
		problems = append(problems, fmt.Sprintf("entrant %s has no division", label))
	}
	if !(e.StrengthOdds > 0) || !(e.WinWeight > 0) {
		problems = append(problems, fmt.Sprintf("entrant %s has odds %v, want > 0", label, e.StrengthOdds))
	}
	return problems
}

// IsPowerOfTwo reports whether n is 2, 4, 8, ...
func IsPowerOfTwo(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

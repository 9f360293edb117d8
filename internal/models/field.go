package models

import (
	"errors"
	"fmt"
	"sort"
)

// Division is one of the initial brackets together with its first-round lineup.
type Division struct {
	Label  string `json:"label"`
	Lineup Lineup `json:"lineup"`
}

// Field is the full starting field: the divisions in the order they are played.
type Field []Division

// Validate enforces the shape the tournament needs: exactly four divisions,
// each a valid lineup, all of the same size, and each entrant filed under the
// division it is listed in. Names must be unique within a division.
func (f Field) Validate() error {
	var problems []string
	if len(f) != len(DefaultDivisionOrder) {
		problems = append(problems, fmt.Sprintf("field has %d divisions, want %d", len(f), len(DefaultDivisionOrder)))
	}

	seen := make(map[string]bool, len(f))
	entrants := make(map[string]bool)
	for _, d := range f {
		if d.Label == "" {
			problems = append(problems, "division with an empty label")
		}
		if seen[d.Label] {
			problems = append(problems, fmt.Sprintf("division %q listed twice", d.Label))
		}
		seen[d.Label] = true

		var lineupErr *MalformedInputError
		if err := d.Lineup.Validate(); errors.As(err, &lineupErr) {
			for _, p := range lineupErr.Problems {
				problems = append(problems, fmt.Sprintf("%s: %s", d.Label, p))
			}
		}
		for _, e := range d.Lineup {
			if e.Division != "" && e.Division != d.Label {
				problems = append(problems, fmt.Sprintf("%s: entrant %s belongs to division %q", d.Label, e.Name, e.Division))
			}
			if e.Name != "" && entrants[e.Key()] {
				problems = append(problems, fmt.Sprintf("%s: entrant %s listed twice", d.Label, e.Name))
			}
			entrants[e.Key()] = true
		}
		if len(f) > 0 && len(d.Lineup) != len(f[0].Lineup) {
			problems = append(problems, fmt.Sprintf("%s: %d entrants, but %s has %d", d.Label, len(d.Lineup), f[0].Label, len(f[0].Lineup)))
		}
	}

	if len(problems) > 0 {
		return &MalformedInputError{Problems: problems}
	}
	return nil
}

// Size returns the total number of entrants in the field.
func (f Field) Size() int {
	n := 0
	for _, d := range f {
		n += len(d.Lineup)
	}
	return n
}

// Divisions groups lineups by division label. It is what a loader produces
// before the field is put in playing order.
type Divisions map[string]Lineup

// Add appends an entrant to its division's lineup.
func (d Divisions) Add(e Entrant) {
	d[e.Division] = append(d[e.Division], e)
}

// Ordered arranges the divisions in the given order and validates the
// result. Divisions missing from the map, or present but not named in order,
// make the field malformed.
func (d Divisions) Ordered(order []string) (Field, error) {
	var problems []string
	field := make(Field, 0, len(order))
	wanted := make(map[string]bool, len(order))
	for _, label := range order {
		wanted[label] = true
		lineup, ok := d[label]
		if !ok {
			problems = append(problems, fmt.Sprintf("division %q is missing", label))
			continue
		}
		field = append(field, Division{Label: label, Lineup: lineup.Clone()})
	}

	var extra []string
	for label := range d {
		if !wanted[label] {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	for _, label := range extra {
		problems = append(problems, fmt.Sprintf("unexpected division %q", label))
	}

	if len(problems) > 0 {
		return nil, &MalformedInputError{Problems: problems}
	}
	if err := field.Validate(); err != nil {
		return nil, err
	}
	return field, nil
}

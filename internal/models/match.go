package models

// MatchResult is the outcome of one resolved pairing. Probabilities are
// percentages at 0.1 resolution. Upset is true only when Winner had the
// strictly lower probability of the two.
type MatchResult struct {
	Left      Entrant `json:"left"`
	Right     Entrant `json:"right"`
	LeftProb  float64 `json:"left_prob"`
	RightProb float64 `json:"right_prob"`
	Winner    Entrant `json:"winner"`
	Upset     bool    `json:"upset"`
}

// Loser returns the entrant that did not advance.
func (r MatchResult) Loser() Entrant {
	if r.Winner.Same(r.Left) {
		return r.Right
	}
	return r.Left
}

// WinnerProb returns the probability the winner was given for this matchup.
func (r MatchResult) WinnerProb() float64 {
	if r.Winner.Same(r.Left) {
		return r.LeftProb
	}
	return r.RightProb
}

// Seat is an entrant as it enters a round. Upset records whether it got there
// by winning its previous matchup as the underdog; it says nothing about
// earlier rounds.
type Seat struct {
	Entrant Entrant `json:"entrant"`
	Upset   bool    `json:"upset,omitempty"`
}

// Matchup is a pairing as shown before it is played.
type Matchup struct {
	Left      Seat    `json:"left"`
	LeftProb  float64 `json:"left_prob"`
	Right     Seat    `json:"right"`
	RightProb float64 `json:"right_prob"`
}

package simulation

import (
	"github.com/spboyer/bracketsim/internal/models"
	"github.com/spboyer/bracketsim/internal/statistics"
)

// Summary is the result of a Monte Carlo run.
type Summary struct {
	Iterations int   `json:"iterations"`
	Seed       int64 `json:"seed"`
	// Entrants is ordered by titles, then finals, then Final Four
	// appearances, most first.
	Entrants     []EntrantStats     `json:"entrants"`
	UpsetsPerRun statistics.Summary `json:"upsets_per_run"`
}

// EntrantStats is how one entrant fared across every simulated tournament.
// A division title and a Final Four appearance are the same event.
type EntrantStats struct {
	Entrant    models.Entrant        `json:"entrant"`
	GamesWon   int                   `json:"games_won"`
	UpsetWins  int                   `json:"upset_wins"`
	FinalFours statistics.Proportion `json:"final_fours"`
	Finals     statistics.Proportion `json:"finals"`
	Titles     statistics.Proportion `json:"titles"`
}

// Top returns the first n entrants, or all of them when n <= 0.
func (s *Summary) Top(n int) []EntrantStats {
	if n <= 0 || n >= len(s.Entrants) {
		return s.Entrants
	}
	return s.Entrants[:n]
}

// Lookup finds an entrant's stats by name and division.
func (s *Summary) Lookup(division, name string) (EntrantStats, bool) {
	key := models.Entrant{Name: name, Division: division}.Key()
	for _, es := range s.Entrants {
		if es.Entrant.Key() == key {
			return es, true
		}
	}
	return EntrantStats{}, false
}

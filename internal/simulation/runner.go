// Package simulation plays many independent tournaments over the same field
// and tallies how far each entrant gets.
package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/spboyer/bracketsim/internal/bracket"
	"github.com/spboyer/bracketsim/internal/models"
	"github.com/spboyer/bracketsim/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is used when no worker count is configured.
const DefaultWorkers = 4

// progressEvery is how many tournaments pass between progress events.
const progressEvery = 100

// ProgressEvent reports how many tournaments have finished.
type ProgressEvent struct {
	Completed int
	Total     int
}

// ProgressListener receives progress updates. It may be called from several
// worker goroutines at once.
type ProgressListener func(event ProgressEvent)

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithWorkers sets how many tournaments are played in parallel.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithNaming sets the round and stage labels.
func WithNaming(n bracket.Naming) RunnerOption {
	return func(r *Runner) {
		r.naming = n
	}
}

// Runner plays a field many times. Each worker owns its own tournament and
// random source, so a run is reproducible for a given seed, iteration count
// and worker count.
type Runner struct {
	field   models.Field
	naming  bracket.Naming
	workers int

	progressMu sync.Mutex
	listeners  []ProgressListener
}

// NewRunner validates the field and returns a Runner for it.
func NewRunner(field models.Field, opts ...RunnerOption) (*Runner, error) {
	if err := field.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		field:   field,
		naming:  bracket.DefaultNaming(),
		workers: DefaultWorkers,
	}
	for _, o := range opts {
		o(r)
	}
	if r.workers <= 0 {
		r.workers = DefaultWorkers
	}
	return r, nil
}

// OnProgress registers a progress listener.
func (r *Runner) OnProgress(listener ProgressListener) {
	r.progressMu.Lock()
	defer r.progressMu.Unlock()
	r.listeners = append(r.listeners, listener)
}

func (r *Runner) notifyProgress(event ProgressEvent) {
	r.progressMu.Lock()
	listeners := make([]ProgressListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.progressMu.Unlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// Run plays iterations tournaments and summarizes them. Worker seeds are
// drawn from a generator seeded with seed before any tournament starts.
func (r *Runner) Run(ctx context.Context, iterations int, seed int64) (*Summary, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	workers := min(r.workers, iterations)
	master := rand.New(rand.NewSource(seed))
	shards := make([]*shard, workers)
	for i := range shards {
		n := iterations / workers
		if i < iterations%workers {
			n++
		}
		shards[i] = &shard{iterations: n, seed: master.Int63()}
	}

	slog.Debug("Starting simulation", "iterations", iterations, "workers", workers, "seed", seed)

	var completed atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	for _, sh := range shards {
		g.Go(func() error {
			t, err := bracket.New(r.field, r.naming, nil)
			if err != nil {
				return err
			}
			return sh.play(ctx, t, func() {
				done := completed.Add(1)
				if done%progressEvery == 0 || int(done) == iterations {
					r.notifyProgress(ProgressEvent{Completed: int(done), Total: iterations})
				}
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return r.summarize(iterations, seed, shards), nil
}

// shard is one worker's share of the iterations and what it observed.
type shard struct {
	iterations int
	seed       int64

	tallies map[string]*tally
	upsets  []float64
}

type tally struct {
	entrant    models.Entrant
	gamesWon   int
	upsetWins  int
	finalFours int
	finals     int
	titles     int
}

func (s *shard) play(ctx context.Context, t *bracket.Tournament, done func()) error {
	src := bracket.NewSource(s.seed)
	s.tallies = make(map[string]*tally)
	s.upsets = make([]float64, 0, s.iterations)

	for i := 0; i < s.iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := t.Run(src)
		if err != nil {
			return err
		}
		s.record(out)
		done()
	}
	return nil
}

func (s *shard) record(out *bracket.Outcome) {
	upsets := 0
	for _, rr := range out.Rounds {
		for _, res := range rr.Results {
			tl := s.get(res.Winner)
			tl.gamesWon++
			if res.Upset {
				tl.upsetWins++
				upsets++
			}
		}
	}
	s.upsets = append(s.upsets, float64(upsets))

	for _, seat := range out.DivisionChampions {
		s.get(seat.Entrant).finalFours++
	}
	for _, seat := range out.Finalists {
		s.get(seat.Entrant).finals++
	}
	s.get(out.Champion.Entrant).titles++
}

func (s *shard) get(e models.Entrant) *tally {
	key := e.Key()
	tl, ok := s.tallies[key]
	if !ok {
		tl = &tally{entrant: e}
		s.tallies[key] = tl
	}
	return tl
}

func (r *Runner) summarize(iterations int, seed int64, shards []*shard) *Summary {
	totals := make(map[string]*tally)
	for _, div := range r.field {
		for _, e := range div.Lineup {
			totals[e.Key()] = &tally{entrant: e}
		}
	}

	var upsets []float64
	for _, sh := range shards {
		upsets = append(upsets, sh.upsets...)
		for key, tl := range sh.tallies {
			sum := totals[key]
			sum.gamesWon += tl.gamesWon
			sum.upsetWins += tl.upsetWins
			sum.finalFours += tl.finalFours
			sum.finals += tl.finals
			sum.titles += tl.titles
		}
	}

	summary := &Summary{
		Iterations:   iterations,
		Seed:         seed,
		UpsetsPerRun: statistics.Summarize(upsets),
	}
	for _, tl := range totals {
		summary.Entrants = append(summary.Entrants, EntrantStats{
			Entrant:    tl.entrant,
			GamesWon:   tl.gamesWon,
			UpsetWins:  tl.upsetWins,
			FinalFours: statistics.NewProportion(tl.finalFours, iterations),
			Finals:     statistics.NewProportion(tl.finals, iterations),
			Titles:     statistics.NewProportion(tl.titles, iterations),
		})
	}
	sort.Slice(summary.Entrants, func(i, j int) bool {
		a, b := summary.Entrants[i], summary.Entrants[j]
		if a.Titles.Successes != b.Titles.Successes {
			return a.Titles.Successes > b.Titles.Successes
		}
		if a.Finals.Successes != b.Finals.Successes {
			return a.Finals.Successes > b.Finals.Successes
		}
		if a.FinalFours.Successes != b.FinalFours.Successes {
			return a.FinalFours.Successes > b.FinalFours.Successes
		}
		return a.Entrant.Key() < b.Entrant.Key()
	})
	return summary
}

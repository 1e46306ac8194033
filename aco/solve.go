// Package aco - the search loop.
//
// Colony is the engine instance: it owns the pheromone matrix and a frozen
// snapshot of the distance matrix, and walks the Idle → Running → Done state
// machine. Run executes Options.Iterations rounds; each round constructs one
// tour per ant (serially or fanned out across Options.Workers goroutines),
// takes the round's minimum-weight tour, folds it into the global best, and
// applies the pheromone update. The updater runs strictly after every ant of
// the round has finished: tour construction reads the pheromone matrix, so
// it must stay frozen for the whole batch.
package aco

import (
	"math"
	"sync"

	"github.com/Hitsuji-M/aco-tsp/matrix"
)

// engineState tracks the Colony lifecycle.
type engineState uint8

const (
	stateIdle engineState = iota // constructed, no tours generated yet
	stateRunning
	stateDone
)

// Colony is one ACO engine instance.
//
// The distance snapshot is read-only for the Colony's entire lifetime; the
// pheromone matrix is owned exclusively by the Colony and mutated in place
// once per iteration. A Colony is not safe for concurrent use; internal ant
// parallelism is managed by Run itself.
type Colony struct {
	n    int
	opts Options

	distM *matrix.Dense // frozen distance snapshot
	dist  []float64     // distM backing slice, row-major
	pherM *matrix.Dense // pheromone intensities, same shape
	pher  []float64     // pherM backing slice, row-major

	best  Tour // global best-so-far; Weight==+Inf until the first real tour
	state engineState
}

// New validates opts and dist, snapshots dist, and returns an idle Colony
// with a uniformly initialized pheromone matrix.
//
// Errors (all before any search iteration): ErrBadOptions, ErrNilMatrix,
// ErrNonSquare, ErrTooFewCities, ErrNegativeDistance, ErrBadDistance,
// ErrAsymmetric.
//
// Complexity: O(n²) time and space.
func New(dist matrix.Matrix, opts Options) (*Colony, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	n, distM, err := snapshotDistances(dist)
	if err != nil {
		return nil, err
	}

	var pherM *matrix.Dense
	pherM, err = matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	pherM.Fill(opts.InitPheromone)

	return &Colony{
		n:     n,
		opts:  opts,
		distM: distM,
		dist:  distM.Values(),
		pherM: pherM,
		pher:  pherM.Values(),
		best:  Tour{Weight: math.Inf(1)},
		state: stateIdle,
	}, nil
}

// Cities returns the instance size n.
func (c *Colony) Cities() int { return c.n }

// Best returns a copy of the best tour found so far.
// Before the first completed iteration its Weight is +Inf and its path empty.
func (c *Colony) Best() Tour { return c.best.Clone() }

// Pheromones returns a snapshot of the current pheromone matrix.
// Complexity: O(n²).
func (c *Colony) Pheromones() *matrix.Dense {
	return c.pherM.Clone().(*matrix.Dense)
}

// SetRandomStart toggles the random-start flag. Allowed only while the
// Colony is idle; returns ErrNotIdle once the search has started.
func (c *Colony) SetRandomStart(enabled bool) error {
	if c.state != stateIdle {
		return ErrNotIdle
	}
	c.opts.RandomStart = enabled

	return nil
}

// Run executes the full search and returns the global best tour.
//
// Per iteration: Ants tours are constructed against the frozen pheromone
// matrix, the minimum-weight tour of the batch is selected (ties: the
// first-generated ant wins, stable across runs), the global best is replaced
// on strictly smaller weight (firing OnImprove), then the pheromone matrix
// evaporates and the iteration best reinforces its edges.
//
// Run may be called once per Colony; subsequent calls return ErrNotIdle.
// Given a fixed Options.Seed the result is identical for any Workers value.
//
// Complexity: O(Iterations · Ants · n²).
func (c *Colony) Run() (Tour, error) {
	if c.state != stateIdle {
		return Tour{}, ErrNotIdle
	}
	c.state = stateRunning

	var (
		tours    = make([]Tour, c.opts.Ants)
		iter     int
		a        int
		iterBest int
	)
	for iter = 0; iter < c.opts.Iterations; iter++ {
		c.constructBatch(iter, tours)

		// Minimum-weight tour of the batch; strict < keeps the first found.
		iterBest = 0
		for a = 1; a < len(tours); a++ {
			if tours[a].Less(tours[iterBest]) {
				iterBest = a
			}
		}

		if tours[iterBest].Less(c.best) {
			c.best = tours[iterBest].Clone()
			if c.opts.OnImprove != nil {
				c.opts.OnImprove(iter, c.best.Clone())
			}
		}

		// Update strictly after the batch barrier: construction reads pher.
		c.evaporate()
		c.reinforce(tours[iterBest])
	}
	c.state = stateDone

	return c.best.Clone(), nil
}

// constructBatch fills tours[a] for every ant of one iteration, serially or
// across min(Workers, Ants) goroutines. Each ant writes only its own slot and
// reads only the frozen matrices, so no locking is needed; the WaitGroup is
// the synchronization barrier required before the pheromone update.
func (c *Colony) constructBatch(iter int, tours []Tour) {
	var workers = c.opts.Workers
	if workers > len(tours) {
		workers = len(tours)
	}
	if workers <= 1 {
		var a int
		for a = range tours {
			tours[a] = c.runAnt(iter, a)
		}

		return
	}

	var (
		wg sync.WaitGroup
		w  int
	)
	wg.Add(workers)
	for w = 0; w < workers; w++ {
		go func(offset int) {
			defer wg.Done()
			var a int
			for a = offset; a < len(tours); a += workers {
				tours[a] = c.runAnt(iter, a)
			}
		}(w)
	}
	wg.Wait()
}

// runAnt constructs ant a's tour for the given iteration on its own RNG
// stream. The stream id depends only on (iteration, ant), which is what
// makes results independent of goroutine scheduling.
func (c *Colony) runAnt(iter, ant int) Tour {
	var (
		stream = uint64(iter)*uint64(c.opts.Ants) + uint64(ant)
		rng    = rngFromSeed(deriveSeed(c.baseSeed(), stream))
		start  = 0
	)
	if c.opts.RandomStart {
		start = rng.Intn(c.n)
	}

	return c.generatePath(start, rng)
}

// baseSeed applies the Seed==0 ⇒ defaultRNGSeed policy.
func (c *Colony) baseSeed() int64 {
	if c.opts.Seed == 0 {
		return defaultRNGSeed
	}

	return c.opts.Seed
}

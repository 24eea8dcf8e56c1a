package solver

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/collapse/cell"
	"github.com/katalvlaran/collapse/layout"
)

// Solver runs a recursive minimum-entropy backtracking search over the
// layout owned by a Wavefunction.
//
// Each speculative branch works on its own clone of the layout, so a failed
// branch leaves no state behind; contradiction cells (empty superpositions)
// simply produce no candidates and force the backtrack.
type Solver[V cell.Value, C comparable] struct {
	wavefunction Wavefunction[V, C]
	initial      layout.Layout[V, C]
	backtracks   int
	rng          *rand.Rand
	log          zerolog.Logger
}

// New creates a Solver over the given wavefunction, cloning its initial
// state. Options inject the randomness source and diagnostics sink.
// Complexity: O(n×k) for the clone.
func New[V cell.Value, C comparable](wavefunction Wavefunction[V, C], opts ...Option) *Solver[V, C] {
	cfg := newConfig(opts...)

	return &Solver[V, C]{
		wavefunction: wavefunction,
		initial:      wavefunction.InitialState().Clone(),
		rng:          cfg.rng,
		log:          cfg.log,
	}
}

// CollapseInitial pins a cell in the initial state: collapses it, then runs
// the wavefunction's propagation hook on the initial state. Multiple pins
// compose; every later Solve starts from the pinned state.
func (s *Solver[V, C]) CollapseInitial(coord C, value V) {
	s.initial.Collapse(coord, value)
	s.wavefunction.Collapse(s.initial, coord, value)
}

// InitialState returns the solver's pinned initial layout.
func (s *Solver[V, C]) InitialState() layout.Layout[V, C] {
	return s.initial
}

// Backtracks returns the number of abandoned branches in the last Solve.
func (s *Solver[V, C]) Backtracks() int {
	return s.backtracks
}

// PrintLayout forwards the initial state to the wavefunction's optional
// LayoutPrinter debugging hook, if implemented.
func (s *Solver[V, C]) PrintLayout() {
	if p, ok := s.wavefunction.(LayoutPrinter[V, C]); ok {
		p.PrintLayout(s.initial)
	}
}

// Solve searches for an assignment collapsing every cell. It clones the
// initial state, resets the backtrack counter, and runs the recursive
// search. ok=false means the search tree was exhausted without a solution;
// Backtracks then reports how many branches were abandoned.
func (s *Solver[V, C]) Solve() (solution layout.Layout[V, C], ok bool) {
	working := s.initial.Clone()
	s.backtracks = 0
	s.log.Debug().Int("cells", working.CellCount()).Msg("solve started")

	// A layout with no candidates is already solved.
	coord, found := s.nextCoord(working)
	if !found {
		s.log.Debug().Msg("solve finished: nothing to collapse")
		return working, true
	}

	solution, ok = s.collapse(working, coord, 0)
	s.log.Debug().Bool("solved", ok).Int("backtracks", s.backtracks).Msg("solve finished")

	return solution, ok
}

// collapse tries every candidate of the cell at coord, in weighted random
// order, each on its own clone of l.
func (s *Solver[V, C]) collapse(l layout.Layout[V, C], coord C, depth int) (layout.Layout[V, C], bool) {
	// 1. Read the branching cell's candidates. The coordinate came from
	//    the layout's own candidate scan, so the lookup cannot miss.
	branching, found := l.Cell(coord)
	if !found {
		return nil, false
	}
	possibilities := branching.Possibilities()

	// 2. Try each candidate by weight-random order without replacement.
	it := NewWeightedIterator(possibilities, s.rng)
	for value, more := it.Next(); more; value, more = it.Next() {
		s.log.Trace().Int("depth", depth).Interface("coord", coord).Interface("value", value).Msg("branch")

		// 2a. Clone the entire layout for the speculative branch.
		branch := l.Clone()

		// 2b. Commit the choice directly on the branch's cell.
		if c, ok := branch.Cell(coord); ok {
			c.Collapse(value)
		}

		// 2c. Propagate through the user rule.
		s.wavefunction.Collapse(branch, coord, value)

		// 2d. Pick the next branching cell; none left means solved.
		next, found := s.nextCoord(branch)
		if !found {
			return branch, true
		}

		// 2e. Recurse; the first solved branch wins.
		if solution, solved := s.collapse(branch, next, depth+1); solved {
			return solution, solved
		}
	}

	// 3. Candidates exhausted: abandon the branch.
	s.backtracks++
	s.log.Trace().Int("depth", depth).Interface("coord", coord).Msg("backtrack")

	return nil, false
}

// nextCoord scans all uncollapsed cells, collects every coordinate tied at
// the lowest entropy seen, and samples one uniformly. found=false when no
// uncollapsed cell remains.
//
// Ties are grouped by exact float64 equality; identical weight multisets
// compute identical entropies on the same code path. Collecting the full
// tie set before sampling removes the scan order's bias.
// Complexity: O(n×k).
func (s *Solver[V, C]) nextCoord(l layout.Layout[V, C]) (coord C, found bool) {
	lowest := math.MaxFloat64
	var ties []C
	for _, e := range l.Candidates() {
		entropy := e.Cell.Entropy()
		if entropy == lowest {
			ties = append(ties, e.Coord)
		}
		if entropy < lowest {
			ties = append(ties[:0], e.Coord)
			lowest = entropy
		}
	}
	if len(ties) == 0 {
		var zero C
		return zero, false
	}

	return ties[intn(s.rng, len(ties))], true
}

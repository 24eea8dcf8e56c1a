package solver

import (
	"github.com/katalvlaran/collapse/cell"
	"github.com/katalvlaran/collapse/layout"
)

// Wavefunction is the user-supplied constraint rule the Solver searches
// under. Implementations own the initial layout and propagate constraints
// after every committed collapse.
type Wavefunction[V cell.Value, C comparable] interface {
	// InitialState returns the starting, possibly pre-seeded, layout. The
	// Solver clones it; the wavefunction's own copy is never mutated by
	// the search.
	InitialState() layout.Layout[V, C]

	// Collapse is the constraint propagation hook, invoked immediately
	// after the Solver commits coord := value on l. The implementation
	// must prune other cells' possibilities on l so the constraint system
	// stays consistent. It may prune arbitrarily far, but must not itself
	// decide commit points: the hook is not re-invoked for cells its own
	// prunings reduce; the Solver's next entropy pick re-enters it.
	Collapse(l layout.Layout[V, C], coord C, value V)
}

// LayoutPrinter is an optional debugging hook a Wavefunction may also
// implement; Solver.PrintLayout forwards to it when present.
type LayoutPrinter[V cell.Value, C comparable] interface {
	PrintLayout(l layout.Layout[V, C])
}

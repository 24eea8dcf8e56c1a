// Package solver implements the backtracking search engine: weighted
// candidate iteration, minimum-entropy cell selection, and the
// Wavefunction interface user rules plug into.
//
// What:
//
//   - Wavefunction[V, C] is the user-supplied rule: an initial layout plus
//     a propagation hook invoked after every committed collapse.
//   - WeightedIterator[V] draws candidates from a weight map without
//     replacement, in proportion to remaining weight.
//   - Solver[V, C] clones the layout per speculative branch, collapses the
//     lowest-entropy cell, propagates, recurses, and backtracks on
//     exhaustion.
//
// Why:
//
//   - The hook runs after each commit and is deliberately not re-invoked
//     for its own prunings; the next entropy pick re-enters it for any
//     newly reduced cell, which keeps the user contract simple.
//   - Collecting all entropy ties and sampling uniformly removes the scan
//     order's implicit bias from branch selection.
//
// Complexity:
//
//   - Next coordinate selection: O(n) over uncollapsed cells.
//   - Search: worst-case exponential in cell count, as any complete
//     backtracking search; each branch clones the layout, O(n×k).
//
// Options:
//
//   - WithRand(rng):  explicit randomness source for reproducible runs.
//   - WithSeed(seed): shorthand for WithRand over a seeded source.
//   - WithLogger(log): zerolog sink for trace/debug search diagnostics.
//
// Errors: none. An unsolvable problem is reported by Solve's ok=false
// together with a positive backtrack count, not by an error value.
package solver

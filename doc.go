// Package collapse is an in-memory wavefunction-collapse constraint solver
// for Go.
//
// 🚀 What is collapse?
//
//	A small, domain-agnostic search engine: give every cell of a layout a
//	weighted set of candidate values and a propagation rule, and the solver
//	finds an assignment of exactly one value per cell, or tells you that
//	none exists. The same engine solves Sudoku, terrain generation, and
//	adjacency-learned 2D tiling.
//
// ✨ Why choose collapse?
//
//   - Beginner-friendly    — one interface to implement, clear naming
//   - Weighted everywhere  — candidates carry integer weights end to end
//   - Extensible           — any value type, any layout shape
//   - Pure computation     — no I/O, no persistence, no goroutines
//
// Under the hood, everything is organized in dependency order:
//
//	cell/    — collapsed/superposition cell state & weighted merge algebra
//	layout/  — the Layout interface and bulk mutation helpers
//	grid/    — 2D coordinates, tiles, and the dense reference Grid
//	solver/  — weighted iteration and minimum-entropy backtracking search
//	tiling/  — the Standard2D adjacency learner
//
// Quick ASCII example, a solved land/coast/sea grid:
//
//	S S C L L
//	S C C L L
//	C C L L L
//
//	no Land touches Sea, not even diagonally; C cells sit between them.
//
//	go get github.com/katalvlaran/collapse
package collapse

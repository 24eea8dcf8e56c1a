// Package cell models a single position of a constraint problem: either
// collapsed to one fixed value, or a superposition of weighted candidates.
//
// What:
//
//   - Cell[V] is a two-state sum type: Collapsed(v) or Superposition(map[V]int).
//   - Weights are strictly positive integers; probability of v is w(v)/Σw.
//   - Shannon entropy over the induced distribution drives solver selection.
//   - Merge applies weighted set algebra (union, intersection, xor, …)
//     between a cell's superposition and an external weight map.
//
// Why:
//
//   - Integer weights are append-friendly: adding a candidate never forces a
//     renormalization pass.
//   - An empty superposition doubles as the contradiction signal, so cell
//     operations never need an error channel of their own.
//
// Complexity:
//
//   - Entropy:             O(k), k = number of candidates.
//   - Add/Remove variants: O(1) per entry.
//   - Merge:               O(k + m), m = entries in the other map.
//
// Errors:
//
//   - ErrMultiplyNotImplemented: panic value raised when FnMultiply is
//     selected for a merge that combines overlapping weights.
package cell

// Package tiling implements the standard two-dimensional tiled
// wavefunction: adjacency rules learned from a sample rather than written
// by hand.
//
// What:
//
//   - Standard2D[V] extracts 2×2 tiles from a fully collapsed sample grid,
//     counts which tiles were observed next to which in each orthogonal
//     direction, and seeds every output cell with each observed tile at
//     weight one per observation.
//   - As a solver.Wavefunction, its propagation hook intersects each
//     orthogonal neighbor's candidates with the tiles observed in that
//     direction, keeping the minimum of the two weights.
//
// Why:
//
//   - Counting observations makes frequency the prior: tiles common in the
//     sample stay common in the output without a separate tuning step.
//   - A neighbor with no observed adjacency is cleared outright; the
//     empty superposition is the contradiction signal the solver
//     backtracks on.
//
// Complexity:
//
//   - Learn: O(x×y) tile extractions over the sample, O(1) map updates per
//     observed adjacency.
//   - Collapse hook: O(m) per orthogonal neighbor, m = allowed tiles.
//
// Errors: none. Sample regions that contain uncollapsed cells simply
// contribute no tiles.
package tiling

// Package grid provides the reference two-dimensional layout: unsigned
// wrap-on-underflow coordinates, eight compass directions, fixed-size value
// tiles, and a dense cell grid implementing layout.Layout.
//
// What:
//
//   - Coord2D is an (x, y) pair of unsigned integers using the pixel
//     convention (y grows downward), with 8-directional navigation.
//   - Direction names the eight compass neighbors.
//   - Tile[V] is a fixed 2×2 block of values that is itself a cell value.
//   - Grid[V] is a dense x×y matrix of cells, initially empty
//     superpositions, with row/column/neighbor queries, tile extraction,
//     and Detile flattening for tile grids.
//
// Why:
//
//   - Navigation wraps on underflow instead of erroring, so edge cells can
//     name neighbors freely; Grid simply reports those coordinates absent.
//   - Tiles are array-backed and comparable, so they can key adjacency
//     maps directly.
//
// Complexity:
//
//   - Cell/Collapse/InBounds:  O(1).
//   - Row/Col/Neighbors:       O(x), O(y), O(1) respectively.
//   - TileAt:                  O(TileWidth×TileHeight).
//   - Clone/Cells/Candidates:  O(x×y).
//   - Detile:                  O(x×y×k), k = candidate tiles per cell.
//
// Errors: none. Out-of-bounds access reports absence, never an error.
package grid

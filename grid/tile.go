package grid

import (
	"strings"

	"github.com/katalvlaran/collapse/cell"
)

// Tile is a fixed TileWidth×TileHeight block of values treated as a single
// cell value. Tiles are array-backed and therefore comparable: they can be
// collapsed into cells and used as adjacency-map keys directly.
//
// Used by wavefunctions that constrain a layout through a tiling structure.
type Tile[V cell.Value] struct {
	// values[y][x], row-major with y growing downward.
	values [TileHeight][TileWidth]V
}

// NewTile returns a Tile holding the given row-major values.
func NewTile[V cell.Value](values [TileHeight][TileWidth]V) Tile[V] {
	return Tile[V]{values: values}
}

// Width returns the number of columns in the tile.
func (t Tile[V]) Width() uint {
	return TileWidth
}

// Height returns the number of rows in the tile.
func (t Tile[V]) Height() uint {
	return TileHeight
}

// At returns the value at (x, y) within the tile, with ok=false when the
// position lies outside the tile.
func (t Tile[V]) At(x, y uint) (value V, ok bool) {
	if x >= TileWidth || y >= TileHeight {
		var zero V
		return zero, false
	}

	return t.values[y][x], true
}

// TileValue is one enumerated position of a Tile.
type TileValue[V cell.Value] struct {
	X, Y  uint
	Value V
}

// Values enumerates the tile's positions row by row, left to right.
func (t Tile[V]) Values() []TileValue[V] {
	out := make([]TileValue[V], 0, TileWidth*TileHeight)
	for y := uint(0); y < TileHeight; y++ {
		for x := uint(0); x < TileWidth; x++ {
			out = append(out, TileValue[V]{X: x, Y: y, Value: t.values[y][x]})
		}
	}

	return out
}

// Format renders the tile one row per line, values joined by ", ", each
// rendered by fmtValue.
func (t Tile[V]) Format(fmtValue func(V) string) string {
	var b strings.Builder
	for y := uint(0); y < TileHeight; y++ {
		parts := make([]string, 0, TileWidth)
		for x := uint(0); x < TileWidth; x++ {
			parts = append(parts, fmtValue(t.values[y][x]))
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteByte('\n')
	}

	return b.String()
}

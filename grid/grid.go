package grid

import (
	"strings"

	"github.com/katalvlaran/collapse/cell"
	"github.com/katalvlaran/collapse/layout"
)

// Grid is a dense two-dimensional layout of x×y cells, all starting as
// empty superpositions. It implements layout.Layout keyed by Coord2D.
type Grid[V cell.Value] struct {
	x, y uint
	// cells is a slice of rows; cells[y][x] addresses a single cell.
	cells [][]cell.Cell[V]
}

// New creates a Grid with size (x, y), initially filled with uncollapsed,
// empty cells.
// Complexity: O(x×y) time and memory.
func New[V cell.Value](x, y uint) *Grid[V] {
	cells := make([][]cell.Cell[V], y)
	for row := range cells {
		cells[row] = make([]cell.Cell[V], x)
		for col := range cells[row] {
			cells[row][col] = cell.New[V]()
		}
	}

	return &Grid[V]{x: x, y: y, cells: cells}
}

// X returns the horizontal size of the grid.
func (g *Grid[V]) X() uint {
	return g.x
}

// Y returns the vertical size of the grid.
func (g *Grid[V]) Y() uint {
	return g.y
}

// InBounds reports whether coord lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[V]) InBounds(coord Coord2D) bool {
	return coord.X < g.x && coord.Y < g.y
}

// Cell returns the addressable cell at coord, with ok=false for coordinates
// outside the grid, including wrapped ones near the uint maximum.
// Complexity: O(1).
func (g *Grid[V]) Cell(coord Coord2D) (*cell.Cell[V], bool) {
	if !g.InBounds(coord) {
		return nil, false
	}

	return &g.cells[coord.Y][coord.X], true
}

// Cells returns every (coordinate, cell) pair, row by row.
// Complexity: O(x×y).
func (g *Grid[V]) Cells() []layout.Entry[V, Coord2D] {
	out := make([]layout.Entry[V, Coord2D], 0, g.x*g.y)
	for y := range g.cells {
		for x := range g.cells[y] {
			out = append(out, layout.Entry[V, Coord2D]{
				Coord: Coord2D{X: uint(x), Y: uint(y)},
				Cell:  &g.cells[y][x],
			})
		}
	}

	return out
}

// Candidates returns the uncollapsed subset of Cells.
// Complexity: O(x×y).
func (g *Grid[V]) Candidates() []layout.Entry[V, Coord2D] {
	out := make([]layout.Entry[V, Coord2D], 0, g.x*g.y)
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x].IsCollapsed() {
				continue
			}
			out = append(out, layout.Entry[V, Coord2D]{
				Coord: Coord2D{X: uint(x), Y: uint(y)},
				Cell:  &g.cells[y][x],
			})
		}
	}

	return out
}

// CellCount returns the total number of cells.
func (g *Grid[V]) CellCount() int {
	return int(g.x * g.y)
}

// Collapse fixes the cell at coord to value, delegating the advisory result
// to the cell. Returns false for out-of-bounds coordinates.
// Complexity: O(1).
func (g *Grid[V]) Collapse(coord Coord2D, value V) bool {
	c, ok := g.Cell(coord)
	if !ok {
		return false
	}

	return c.Collapse(value)
}

// Clone returns a deep copy of the grid; no cell state is shared.
// Complexity: O(x×y×k), k = candidates per cell.
func (g *Grid[V]) Clone() layout.Layout[V, Coord2D] {
	return g.CloneGrid()
}

// CloneGrid is Clone with a concrete result type, for callers that need
// grid-specific operations (Row, TileAt, Detile) on the copy.
func (g *Grid[V]) CloneGrid() *Grid[V] {
	cells := make([][]cell.Cell[V], g.y)
	for y := range g.cells {
		cells[y] = make([]cell.Cell[V], g.x)
		for x := range g.cells[y] {
			cells[y][x] = g.cells[y][x].Clone()
		}
	}

	return &Grid[V]{x: g.x, y: g.y, cells: cells}
}

// Row returns the coordinates of every cell in the row at position y.
// Complexity: O(x).
func (g *Grid[V]) Row(y uint) []Coord2D {
	out := make([]Coord2D, 0, g.x)
	for x := uint(0); x < g.x; x++ {
		out = append(out, Coord2D{X: x, Y: y})
	}

	return out
}

// Col returns the coordinates of every cell in the column at position x.
// Complexity: O(y).
func (g *Grid[V]) Col(x uint) []Coord2D {
	out := make([]Coord2D, 0, g.y)
	for y := uint(0); y < g.y; y++ {
		out = append(out, Coord2D{X: x, Y: y})
	}

	return out
}

// Neighbors returns the coordinates of the eight cells directly neighboring
// coord. Coordinates outside the grid are included; lookups on them simply
// report absence.
func (g *Grid[V]) Neighbors(coord Coord2D) []Coord2D {
	return coord.Neighbors()
}

// TileAt extracts the tile whose upper-left corner is coord. Reports
// ok=false when the tile would exceed the grid in any direction, or when
// any cell within the tile's footprint is uncollapsed.
// Complexity: O(TileWidth×TileHeight).
func (g *Grid[V]) TileAt(coord Coord2D) (Tile[V], bool) {
	// 1. Bounds: the whole footprint must fit. Checked by subtraction so
	//    coordinates near the uint maximum cannot wrap past the test.
	if coord.X >= g.x || g.x-coord.X < TileWidth {
		return Tile[V]{}, false
	}
	if coord.Y >= g.y || g.y-coord.Y < TileHeight {
		return Tile[V]{}, false
	}

	// 2. Every cell in the footprint must be collapsed.
	var values [TileHeight][TileWidth]V
	for dy := uint(0); dy < TileHeight; dy++ {
		for dx := uint(0); dx < TileWidth; dx++ {
			c, _ := g.Cell(Coord2D{X: coord.X + dx, Y: coord.Y + dy})
			v, ok := c.Value()
			if !ok {
				return Tile[V]{}, false
			}
			values[dy][dx] = v
		}
	}

	return NewTile(values), true
}

// Format renders the grid one row per line. Collapsed cells render through
// fmtValue; superpositions render as "_", or "!" when empty.
func (g *Grid[V]) Format(fmtValue func(V) string) string {
	var b strings.Builder
	for y := range g.cells {
		parts := make([]string, 0, g.x)
		for x := range g.cells[y] {
			c := &g.cells[y][x]
			switch v, ok := c.Value(); {
			case ok:
				parts = append(parts, fmtValue(v))
			case len(c.Possibilities()) == 0:
				parts = append(parts, "!")
			default:
				parts = append(parts, "_")
			}
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteByte('\n')
	}

	return b.String()
}

package layout

import "github.com/katalvlaran/collapse/cell"

// Entry pairs a coordinate with the addressable cell stored there.
type Entry[V cell.Value, C comparable] struct {
	Coord C
	Cell  *cell.Cell[V]
}

// Layout is a spatial container of cells keyed by a coordinate type C.
//
// Implementations must tolerate out-of-bounds coordinates: Cell reports
// ok=false for them, and that is the only signal; no errors, no panics.
// Clone must deep-copy every cell; the solver clones whole layouts for
// speculative branches and the branches must not share state.
type Layout[V cell.Value, C comparable] interface {
	// Cell returns the addressable cell at coord, or ok=false when coord
	// lies outside the layout.
	Cell(coord C) (*cell.Cell[V], bool)

	// Cells returns every (coordinate, cell) pair in implementation order.
	Cells() []Entry[V, C]

	// Candidates returns the uncollapsed subset of Cells.
	Candidates() []Entry[V, C]

	// CellCount returns the total number of cells.
	CellCount() int

	// Collapse fixes the cell at coord to value, delegating the advisory
	// result to the cell. Returns false for out-of-bounds coordinates.
	Collapse(coord C, value V) bool

	// Clone returns a deep copy sharing no mutable state with the receiver.
	Clone() Layout[V, C]
}

// AddCellPossibility increments value's weight in the cell at coord.
// Out-of-bounds coordinates are skipped.
func AddCellPossibility[V cell.Value, C comparable](l Layout[V, C], coord C, value V) {
	if c, ok := l.Cell(coord); ok {
		c.AddPossibility(value)
	}
}

// AddCellPossibilityCount increments value's weight by count in the cell at
// coord. Out-of-bounds coordinates are skipped.
func AddCellPossibilityCount[V cell.Value, C comparable](l Layout[V, C], coord C, value V, count int) {
	if c, ok := l.Cell(coord); ok {
		c.AddPossibilityCount(value, count)
	}
}

// AddCellPossibilities increments weights in the cell at coord for every
// entry of the map. Out-of-bounds coordinates are skipped.
func AddCellPossibilities[V cell.Value, C comparable](l Layout[V, C], coord C, weights map[V]int) {
	if c, ok := l.Cell(coord); ok {
		c.AddPossibilities(weights)
	}
}

// AddCellsPossibility applies AddCellPossibility at each coordinate.
func AddCellsPossibility[V cell.Value, C comparable](l Layout[V, C], coords []C, value V) {
	for _, coord := range coords {
		AddCellPossibility(l, coord, value)
	}
}

// AddCellsPossibilityCount applies AddCellPossibilityCount at each coordinate.
func AddCellsPossibilityCount[V cell.Value, C comparable](l Layout[V, C], coords []C, value V, count int) {
	for _, coord := range coords {
		AddCellPossibilityCount(l, coord, value, count)
	}
}

// AddCellsPossibilities applies AddCellPossibilities at each coordinate.
func AddCellsPossibilities[V cell.Value, C comparable](l Layout[V, C], coords []C, weights map[V]int) {
	for _, coord := range coords {
		AddCellPossibilities(l, coord, weights)
	}
}

// AddPossibility increments value's weight in every cell of the layout.
// Collapsed cells ignore the increment.
func AddPossibility[V cell.Value, C comparable](l Layout[V, C], value V) {
	for _, e := range l.Cells() {
		e.Cell.AddPossibility(value)
	}
}

// AddPossibilityCount increments value's weight by count in every cell of
// the layout. Collapsed cells ignore the increment.
func AddPossibilityCount[V cell.Value, C comparable](l Layout[V, C], value V, count int) {
	for _, e := range l.Cells() {
		e.Cell.AddPossibilityCount(value, count)
	}
}

// AddPossibilities increments weights in every cell of the layout for every
// entry of the map. Collapsed cells ignore the increments.
func AddPossibilities[V cell.Value, C comparable](l Layout[V, C], weights map[V]int) {
	for _, e := range l.Cells() {
		e.Cell.AddPossibilities(weights)
	}
}

// RemoveCellPossibility deletes value from the cell at coord outright.
// Out-of-bounds coordinates are skipped.
func RemoveCellPossibility[V cell.Value, C comparable](l Layout[V, C], coord C, value V) {
	if c, ok := l.Cell(coord); ok {
		c.RemovePossibility(value)
	}
}

// RemoveCellPossibilityCount saturating-subtracts count from value's weight
// in the cell at coord. Out-of-bounds coordinates are skipped.
func RemoveCellPossibilityCount[V cell.Value, C comparable](l Layout[V, C], coord C, value V, count int) {
	if c, ok := l.Cell(coord); ok {
		c.RemovePossibilityCount(value, count)
	}
}

// RemoveCellPossibilities saturating-subtracts every entry of the map from
// the cell at coord. Out-of-bounds coordinates are skipped.
func RemoveCellPossibilities[V cell.Value, C comparable](l Layout[V, C], coord C, weights map[V]int) {
	if c, ok := l.Cell(coord); ok {
		c.RemovePossibilities(weights)
	}
}

// RemoveCellsPossibility applies RemoveCellPossibility at each coordinate.
func RemoveCellsPossibility[V cell.Value, C comparable](l Layout[V, C], coords []C, value V) {
	for _, coord := range coords {
		RemoveCellPossibility(l, coord, value)
	}
}

// RemoveCellsPossibilityCount applies RemoveCellPossibilityCount at each
// coordinate.
func RemoveCellsPossibilityCount[V cell.Value, C comparable](l Layout[V, C], coords []C, value V, count int) {
	for _, coord := range coords {
		RemoveCellPossibilityCount(l, coord, value, count)
	}
}

// RemoveCellsPossibilities applies RemoveCellPossibilities at each
// coordinate.
func RemoveCellsPossibilities[V cell.Value, C comparable](l Layout[V, C], coords []C, weights map[V]int) {
	for _, coord := range coords {
		RemoveCellPossibilities(l, coord, weights)
	}
}

// RemovePossibility deletes value from every cell of the layout.
func RemovePossibility[V cell.Value, C comparable](l Layout[V, C], value V) {
	for _, e := range l.Cells() {
		e.Cell.RemovePossibility(value)
	}
}

// RemovePossibilityCount saturating-subtracts count from value's weight in
// every cell of the layout.
func RemovePossibilityCount[V cell.Value, C comparable](l Layout[V, C], value V, count int) {
	for _, e := range l.Cells() {
		e.Cell.RemovePossibilityCount(value, count)
	}
}

// RemovePossibilities saturating-subtracts every entry of the map from
// every cell of the layout.
func RemovePossibilities[V cell.Value, C comparable](l Layout[V, C], weights map[V]int) {
	for _, e := range l.Cells() {
		e.Cell.RemovePossibilities(weights)
	}
}

// ClearCell resets the cell at coord to an empty superposition, the
// contradiction state. Out-of-bounds coordinates are skipped.
func ClearCell[V cell.Value, C comparable](l Layout[V, C], coord C) {
	if c, ok := l.Cell(coord); ok {
		c.Clear()
	}
}

// MergeCellPossibilities applies cell.Merge at coord with the given
// operation and combine function. Out-of-bounds coordinates are skipped.
func MergeCellPossibilities[V cell.Value, C comparable](l Layout[V, C], coord C, op cell.Operation, fn cell.Function, other map[V]int) {
	if c, ok := l.Cell(coord); ok {
		c.Merge(op, fn, other)
	}
}

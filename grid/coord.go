package grid

import "fmt"

// Coord2D is a two-dimensional coordinate used by the Grid layout.
//
// Coord2D uses the pixel-coordinate convention: positive y extends downward,
// so upward navigation yields smaller y values. Components are unsigned and
// wrap on underflow: Up on y=0 yields the maximum uint. Out-of-range
// coordinates are legal; Grid reports them absent.
type Coord2D struct {
	X, Y uint
}

// NewCoord2D returns the coordinate (x, y).
func NewCoord2D(x, y uint) Coord2D {
	return Coord2D{X: x, Y: y}
}

// Up is the coordinate immediately above, wrapping at y=0.
func (c Coord2D) Up() Coord2D {
	return Coord2D{X: c.X, Y: c.Y - 1}
}

// Down is the coordinate immediately below.
func (c Coord2D) Down() Coord2D {
	return Coord2D{X: c.X, Y: c.Y + 1}
}

// Left is the coordinate immediately to the left, wrapping at x=0.
func (c Coord2D) Left() Coord2D {
	return Coord2D{X: c.X - 1, Y: c.Y}
}

// Right is the coordinate immediately to the right.
func (c Coord2D) Right() Coord2D {
	return Coord2D{X: c.X + 1, Y: c.Y}
}

// UpLeft is the coordinate up and to the left.
func (c Coord2D) UpLeft() Coord2D {
	return Coord2D{X: c.X - 1, Y: c.Y - 1}
}

// UpRight is the coordinate up and to the right.
func (c Coord2D) UpRight() Coord2D {
	return Coord2D{X: c.X + 1, Y: c.Y - 1}
}

// DownLeft is the coordinate down and to the left.
func (c Coord2D) DownLeft() Coord2D {
	return Coord2D{X: c.X - 1, Y: c.Y + 1}
}

// DownRight is the coordinate down and to the right.
func (c Coord2D) DownRight() Coord2D {
	return Coord2D{X: c.X + 1, Y: c.Y + 1}
}

// Neighbors returns the coordinates of the eight immediately neighboring
// locations, upper-left first, row by row.
func (c Coord2D) Neighbors() []Coord2D {
	return []Coord2D{
		c.UpLeft(), c.Up(), c.UpRight(),
		c.Left(), c.Right(),
		c.DownLeft(), c.Down(), c.DownRight(),
	}
}

// NeighborDirections returns the eight neighboring locations tagged with
// their Direction.
func (c Coord2D) NeighborDirections() []Neighbor {
	return []Neighbor{
		{Coord: c.UpLeft(), Dir: UpLeft},
		{Coord: c.Up(), Dir: Up},
		{Coord: c.UpRight(), Dir: UpRight},
		{Coord: c.Left(), Dir: Left},
		{Coord: c.Right(), Dir: Right},
		{Coord: c.DownLeft(), Dir: DownLeft},
		{Coord: c.Down(), Dir: Down},
		{Coord: c.DownRight(), Dir: DownRight},
	}
}

// NeighborDirections4 returns the four orthogonal neighboring locations
// tagged with their Direction.
func (c Coord2D) NeighborDirections4() []Neighbor {
	return []Neighbor{
		{Coord: c.Up(), Dir: Up},
		{Coord: c.Left(), Dir: Left},
		{Coord: c.Right(), Dir: Right},
		{Coord: c.Down(), Dir: Down},
	}
}

// Neighbor returns the coordinate one step in the given Direction.
func (c Coord2D) Neighbor(dir Direction) Coord2D {
	return c.NeighborScaled(dir, 1, 1)
}

// NeighborScaled returns the coordinate stepped by (dx, dy) in the given
// Direction: the x component moves by dx and the y component by dy, each
// only along the axes the direction involves.
func (c Coord2D) NeighborScaled(dir Direction, dx, dy uint) Coord2D {
	switch dir {
	case UpLeft:
		return Coord2D{X: c.X - dx, Y: c.Y - dy}
	case Up:
		return Coord2D{X: c.X, Y: c.Y - dy}
	case UpRight:
		return Coord2D{X: c.X + dx, Y: c.Y - dy}
	case Left:
		return Coord2D{X: c.X - dx, Y: c.Y}
	case Right:
		return Coord2D{X: c.X + dx, Y: c.Y}
	case DownLeft:
		return Coord2D{X: c.X - dx, Y: c.Y + dy}
	case Down:
		return Coord2D{X: c.X, Y: c.Y + dy}
	default:
		return Coord2D{X: c.X + dx, Y: c.Y + dy}
	}
}

// Offset returns the coordinate moved by (dx, dy) toward larger values.
func (c Coord2D) Offset(dx, dy uint) Coord2D {
	return Coord2D{X: c.X + dx, Y: c.Y + dy}
}

// String renders the coordinate as "(x, y)".
func (c Coord2D) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

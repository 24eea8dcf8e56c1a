package grid

import "github.com/katalvlaran/collapse/cell"

// Detile flattens a grid of tiles into a grid of the underlying values,
// sized (x×TileWidth, y×TileHeight).
//
// Collapsed tiles write their values into the output directly. For an
// uncollapsed tile cell, each output position receives a superposition
// built by summing, across every candidate tile, the candidate's weight at
// that position.
// Complexity: O(x×y×k×TileWidth×TileHeight), k = candidate tiles per cell.
func Detile[V cell.Value](g *Grid[Tile[V]]) *Grid[V] {
	out := New[V](g.x*TileWidth, g.y*TileHeight)
	for _, e := range g.Cells() {
		origin := Coord2D{X: e.Coord.X * TileWidth, Y: e.Coord.Y * TileHeight}

		if tile, ok := e.Cell.Value(); ok {
			for _, tv := range tile.Values() {
				out.Collapse(origin.Offset(tv.X, tv.Y), tv.Value)
			}
			continue
		}

		possibilities := e.Cell.Possibilities()
		for dy := uint(0); dy < TileHeight; dy++ {
			for dx := uint(0); dx < TileWidth; dx++ {
				target, ok := out.Cell(origin.Offset(dx, dy))
				if !ok {
					continue
				}
				for tile, weight := range possibilities {
					if v, ok := tile.At(dx, dy); ok {
						target.AddPossibilityCount(v, weight)
					}
				}
			}
		}
	}

	return out
}

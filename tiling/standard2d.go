package tiling

import (
	"github.com/katalvlaran/collapse/cell"
	"github.com/katalvlaran/collapse/grid"
	"github.com/katalvlaran/collapse/layout"
)

// orthogonal is the learning and propagation order of the four directions.
var orthogonal = []grid.Direction{grid.Up, grid.Right, grid.Down, grid.Left}

// Standard2D is a solver.Wavefunction whose constraints are tile adjacency
// frequencies learned from one or more collapsed sample grids.
type Standard2D[V cell.Value] struct {
	layout *grid.Grid[grid.Tile[V]]
	// adj maps a tile to, per orthogonal direction, the tiles observed
	// adjacent in that direction and how often.
	adj map[grid.Tile[V]]map[grid.Direction]map[grid.Tile[V]]int
}

// New creates a Standard2D producing an output of x×y tiles. Learn must be
// called at least once before solving, or every cell stays empty.
func New[V cell.Value](x, y uint) *Standard2D[V] {
	return &Standard2D[V]{
		layout: grid.New[grid.Tile[V]](x, y),
		adj:    make(map[grid.Tile[V]]map[grid.Direction]map[grid.Tile[V]]int),
	}
}

// Learn accumulates adjacency frequencies from the sample grid.
//
// At every coordinate the tile anchored there is extracted; anchors whose
// footprint is incomplete or not fully collapsed are skipped. For each of
// the four orthogonal directions, the tile one whole tile-size away is
// recorded as an observed neighbor. Each extracted tile is also added to
// every output cell with weight one per observation.
//
// Learn may be called with several samples of the same value type; the
// counts compose. Samples with no adjacency between each other's tile sets
// can force heavy backtracking, since the solver must clear one set out.
// Complexity: O(x×y) extractions.
func (s *Standard2D[V]) Learn(material *grid.Grid[V]) {
	for x := uint(0); x < material.X(); x++ {
		for y := uint(0); y < material.Y(); y++ {
			coord := grid.NewCoord2D(x, y)
			tile, ok := material.TileAt(coord)
			if !ok {
				continue
			}

			// Record each observed orthogonal neighbor tile.
			for _, dir := range orthogonal {
				neighborCoord := coord.NeighborScaled(dir, tile.Width(), tile.Height())
				if adjacent, found := material.TileAt(neighborCoord); found {
					s.addAdjacency(tile, dir, adjacent)
				}
			}

			// An observed tile is a candidate everywhere in the output.
			layout.AddPossibility[grid.Tile[V], grid.Coord2D](s.layout, tile)
		}
	}
}

// addAdjacency increments the observation count for (tile, dir, adjacent).
func (s *Standard2D[V]) addAdjacency(tile grid.Tile[V], dir grid.Direction, adjacent grid.Tile[V]) {
	byDir, ok := s.adj[tile]
	if !ok {
		byDir = make(map[grid.Direction]map[grid.Tile[V]]int)
		s.adj[tile] = byDir
	}
	byTile, ok := byDir[dir]
	if !ok {
		byTile = make(map[grid.Tile[V]]int)
		byDir[dir] = byTile
	}
	byTile[adjacent]++
}

// InitialState returns the output layout seeded by Learn.
func (s *Standard2D[V]) InitialState() layout.Layout[grid.Tile[V], grid.Coord2D] {
	return s.layout
}

// Collapse propagates a committed tile to its orthogonal neighbors: each
// neighbor's candidates are intersected with the tiles observed in that
// direction, keeping the minimum weight. A direction with no observations
// clears the neighbor: an unknown adjacency is a contradiction, not a
// wildcard. A tile with no observations in any direction clears all eight
// neighbors.
func (s *Standard2D[V]) Collapse(l layout.Layout[grid.Tile[V], grid.Coord2D], coord grid.Coord2D, value grid.Tile[V]) {
	adjacencies, known := s.adj[value]
	if !known {
		for _, neighbor := range coord.Neighbors() {
			layout.ClearCell(l, neighbor)
		}
		return
	}

	for _, n := range coord.NeighborDirections4() {
		constraints, found := adjacencies[n.Dir]
		if !found {
			layout.ClearCell(l, n.Coord)
			continue
		}
		layout.MergeCellPossibilities(l, n.Coord, cell.OpIntersection, cell.FnMin, constraints)
	}
}

package physics

import "math"

// SpatialHash is a uniform grid for broad-phase collision detection on an
// unbounded plane. Objects are inserted by position and index, then nearby
// objects can be queried through a 3x3 cell neighborhood lookup.
//
// Cell size must be >= the maximum interaction distance between any two
// colliding objects so that all potential collisions are found within
// the 3x3 neighborhood.
type SpatialHash struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cells       map[cellKey][]int
}

type cellKey struct {
	col, row int
}

// NewSpatialHash creates an empty hash with the given cell size.
func NewSpatialHash(cellSize float64) *SpatialHash {
	return &SpatialHash{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cells:       make(map[cellKey][]int),
	}
}

// Clear removes all items while keeping cell slices for reuse.
func (g *SpatialHash) Clear() {
	for k, items := range g.cells {
		g.cells[k] = items[:0]
	}
}

// Insert adds an item (identified by index) at the given world position.
func (g *SpatialHash) Insert(x, z float64, index int) {
	k := g.posToCell(x, z)
	g.cells[k] = append(g.cells[k], index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around the given world position. Items are visited cell by cell, so callers
// that need a particular order must reduce over the results.
// If fn returns true, iteration stops early.
func (g *SpatialHash) QueryAround(x, z float64, fn func(index int) bool) {
	center := g.posToCell(x, z)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			k := cellKey{col: center.col + dc, row: center.row + dr}
			for _, idx := range g.cells[k] {
				if fn(idx) {
					return
				}
			}
		}
	}
}

// posToCell converts world coordinates to grid cell coordinates.
func (g *SpatialHash) posToCell(x, z float64) cellKey {
	return cellKey{
		col: int(math.Floor(x * g.invCellSize)),
		row: int(math.Floor(z * g.invCellSize)),
	}
}

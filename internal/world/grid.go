package world

import (
	"math"

	"github.com/fuelrun/jerrycan/internal/core/ecs"
	"github.com/fuelrun/jerrycan/internal/geom"
)

// Grid buckets entities into square cells for proximity queries. With
// cell size at least the query radius, a 3x3 neighbourhood of cells covers
// every candidate. Cells keep insertion order so queries are deterministic.
// Rebuilt per use from the game loop goroutine, no locks.
type Grid struct {
	size  float64
	cells map[cellKey][]ecs.EntityID
}

type cellKey struct {
	cx, cy int64
}

// NewGrid makes a grid with the given cell size (values below 1 become 1).
func NewGrid(cellSize float64) *Grid {
	if !(cellSize >= 1) {
		cellSize = 1
	}
	return &Grid{size: cellSize, cells: make(map[cellKey][]ecs.EntityID)}
}

func (g *Grid) key(p geom.Vec2) cellKey {
	return cellKey{cx: int64(math.Floor(p.X / g.size)), cy: int64(math.Floor(p.Y / g.size))}
}

// Add places id at p.
func (g *Grid) Add(id ecs.EntityID, p geom.Vec2) {
	k := g.key(p)
	g.cells[k] = append(g.cells[k], id)
}

// Clear empties the grid.
func (g *Grid) Clear() {
	clear(g.cells)
}

// CellSize is the side length of one cell.
func (g *Grid) CellSize() float64 { return g.size }

// Nearby returns ids in the 3x3 cells around p. Caller filters by distance.
func (g *Grid) Nearby(p geom.Vec2, buf []ecs.EntityID) []ecs.EntityID {
	c := g.key(p)
	out := buf[:0]
	for dy := int64(-1); dy <= 1; dy++ {
		for dx := int64(-1); dx <= 1; dx++ {
			out = append(out, g.cells[cellKey{cx: c.cx + dx, cy: c.cy + dy}]...)
		}
	}
	return out
}

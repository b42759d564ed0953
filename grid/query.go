package grid

import (
	"fmt"
	"math"

	"github.com/guparan/caribou/geometry"
)

// Contains reports whether p lies inside the closed bounding box of the
// grid. Boundary points count as inside; a point one rounding unit past any
// bound does not. Comparisons are exact, with no epsilon.
func (g *Grid) Contains(p geometry.Vector) bool {
	min, max := g.Bounds()
	for a := 0; a < 3; a++ {
		if p[a] < min[a] || p[a] > max[a] {
			return false
		}
	}
	return true
}

// CellIndexContaining localizes p to a cell by direct arithmetic:
// floor((p - anchor) / h) per axis, clamped to [0, n-1]. This shortcut is
// only valid because cell size is constant per axis. Points outside the
// bounding box fail with ErrNotFound.
//
// When p lies exactly on an internal cell boundary the permissive mode
// (mustBeExact = false) resolves deterministically through the floor rule to
// the cell whose lower boundary carries the point; any cell whose closed
// bounding box contains p is an acceptable answer.
// The exact mode additionally verifies that p maps into the closed reference
// cube of the located cell and fails with ErrNotFound otherwise; it is
// best-effort and the permissive mode is the load-bearing contract.
func (g *Grid) CellIndexContaining(p geometry.Vector, mustBeExact bool) (int, error) {
	if !g.Contains(p) {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, p)
	}
	var c Coordinates
	for a := 0; a < 3; a++ {
		i := int(math.Floor((p[a] - g.anchor[a]) / g.h[a]))
		if i < 0 {
			i = 0
		} else if i > g.n[a]-1 {
			i = g.n[a] - 1
		}
		c[a] = i
	}
	if mustBeExact {
		cell := Cell{grid: g, coordinates: c}
		local := cell.LocalCoordinates(p)
		for a := 0; a < 3; a++ {
			if local[a] < -1 || local[a] > 1 {
				return 0, fmt.Errorf("%w: %v", ErrNotFound, p)
			}
		}
	}
	return g.cellIndex(c), nil
}

// CellsAround returns the indices of every cell whose closed bounding box
// contains p: 1 for a point interior to a cell, 2 on a shared face, 4 on a
// shared edge, 8 at a shared corner interior to the grid, 0 outside the
// grid.
//
// The order is canonical: candidate offsets along each axis are visited
// lower neighbor first, with the x axis as the most significant iteration
// variable and z as the least, skipping candidates outside the lattice.
func (g *Grid) CellsAround(p geometry.Vector) []int {
	if !g.Contains(p) {
		return nil
	}

	// Per axis, the candidate cell columns: the floored column and, when p
	// lies exactly on a node plane, the column below it.
	var candidates [3][2]int
	var counts [3]int
	for a := 0; a < 3; a++ {
		t := (p[a] - g.anchor[a]) / g.h[a]
		f := math.Floor(t)
		i := int(f)
		if t == f {
			for _, ci := range [2]int{i - 1, i} {
				if ci >= 0 && ci < g.n[a] {
					candidates[a][counts[a]] = ci
					counts[a]++
				}
			}
		} else if i >= 0 && i < g.n[a] {
			candidates[a][0] = i
			counts[a] = 1
		}
	}

	cells := make([]int, 0, counts[0]*counts[1]*counts[2])
	for x := 0; x < counts[0]; x++ {
		for y := 0; y < counts[1]; y++ {
			for z := 0; z < counts[2]; z++ {
				cells = append(cells, g.cellIndex(Coordinates{
					candidates[0][x], candidates[1][y], candidates[2][z],
				}))
			}
		}
	}
	return cells
}

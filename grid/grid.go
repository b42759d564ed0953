// Package grid implements a structured 3D grid spatial index: a rectangular
// lattice of identical axis-aligned hexahedral cells with canonical,
// deterministic numbering of its nodes, cells, edges and faces, O(1)
// index-coordinate conversion, point localization queries, and per-cell
// reference-to-world mapping for numerical quadrature.
//
// A Grid is immutable once constructed, and every query is a pure function:
// concurrent use from any number of goroutines needs no locking.
package grid

import (
	"fmt"

	"github.com/guparan/caribou/geometry"
)

// Coordinates is an integer lattice coordinate (i, j, k) identifying a node
// or cell position along each axis.
type Coordinates [3]int

// Grid is the lattice descriptor: an anchor point, per-axis subdivision
// counts and per-axis physical sizes. All entities (nodes, cells, edges,
// faces) are derived views computed from the descriptor on demand; nothing
// is materialized or stored.
type Grid struct {
	anchor geometry.Vector
	n      Coordinates
	size   geometry.Vector
	h      geometry.Vector // derived cell size, size[a]/n[a] per axis
}

// New constructs a grid from its anchor point (the first node, at the corner
// of the grid), the number of cells per axis, and the physical size per
// axis. Fails with ErrInvalidGeometry when a subdivision count is below 1 or
// a size component is not positive.
func New(anchor geometry.Vector, subdivisions Coordinates, size geometry.Vector) (*Grid, error) {
	for a := 0; a < 3; a++ {
		if subdivisions[a] < 1 {
			return nil, fmt.Errorf("%w: subdivisions %v", ErrInvalidGeometry, subdivisions)
		}
		if size[a] <= 0 {
			return nil, fmt.Errorf("%w: size %v", ErrInvalidGeometry, size)
		}
	}
	g := &Grid{anchor: anchor, n: subdivisions, size: size}
	for a := 0; a < 3; a++ {
		g.h[a] = size[a] / float64(subdivisions[a])
	}
	return g, nil
}

// Anchor returns the position of the grid's first node.
func (g *Grid) Anchor() geometry.Vector { return g.anchor }

// NumberOfSubdivisions returns the cell counts (nx, ny, nz).
func (g *Grid) NumberOfSubdivisions() Coordinates { return g.n }

// Size returns the physical dimensions (sx, sy, sz) of the grid.
func (g *Grid) Size() geometry.Vector { return g.size }

// CellSize returns the dimensions (hx, hy, hz) of a single cell.
func (g *Grid) CellSize() geometry.Vector { return g.h }

// Bounds returns the closed bounding box [anchor, anchor+size] of the grid.
func (g *Grid) Bounds() (min, max geometry.Vector) {
	return g.anchor, g.anchor.Add(g.size)
}

// NumberOfNodes returns (nx+1)(ny+1)(nz+1).
func (g *Grid) NumberOfNodes() int {
	return (g.n[0] + 1) * (g.n[1] + 1) * (g.n[2] + 1)
}

// NumberOfCells returns nx*ny*nz.
func (g *Grid) NumberOfCells() int {
	return g.n[0] * g.n[1] * g.n[2]
}

// NumberOfEdges returns the total edge count: the in-plane edges of every
// constant-k layer plus the inter-layer edges along z.
func (g *Grid) NumberOfEdges() int {
	nx, ny, nz := g.n[0], g.n[1], g.n[2]
	layer := nx*(ny+1) + ny*(nx+1)
	return layer*(nz+1) + (nx+1)*(ny+1)*nz
}

// NumberOfFaces returns the total face count over the three orientations.
func (g *Grid) NumberOfFaces() int {
	nx, ny, nz := g.n[0], g.n[1], g.n[2]
	return nx*ny*(nz+1) + nx*(ny+1)*nz + (nx+1)*ny*nz
}

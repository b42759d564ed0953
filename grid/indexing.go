package grid

import (
	"fmt"

	"github.com/guparan/caribou/geometry"
)

// Linear numbering is lexicographic with x varying fastest, then y, then z.
// Every conversion below is pure O(1) arithmetic on the lattice shape, so no
// entity ever needs to be materialized or searched for.

func (g *Grid) nodeIndex(c Coordinates) int {
	nx, ny := g.n[0], g.n[1]
	return c[0] + c[1]*(nx+1) + c[2]*(nx+1)*(ny+1)
}

func (g *Grid) nodeCoordinates(index int) Coordinates {
	nx, ny := g.n[0], g.n[1]
	slice := (nx + 1) * (ny + 1)
	k := index / slice
	r := index % slice
	return Coordinates{r % (nx + 1), r / (nx + 1), k}
}

func (g *Grid) cellIndex(c Coordinates) int {
	nx, ny := g.n[0], g.n[1]
	return c[0] + c[1]*nx + c[2]*nx*ny
}

func (g *Grid) cellCoordinates(index int) Coordinates {
	nx, ny := g.n[0], g.n[1]
	slice := nx * ny
	k := index / slice
	r := index % slice
	return Coordinates{r % nx, r / nx, k}
}

// NodeIndexAt returns the linear index of the node at lattice coordinates
// (i, j, k), 0 <= i <= nx (and likewise for j, k).
func (g *Grid) NodeIndexAt(c Coordinates) (int, error) {
	for a := 0; a < 3; a++ {
		if c[a] < 0 || c[a] > g.n[a] {
			return 0, fmt.Errorf("%w: node coordinates %v", ErrOutOfRange, c)
		}
	}
	return g.nodeIndex(c), nil
}

// NodeCoordinatesAt returns the lattice coordinates of the node at the given
// linear index.
func (g *Grid) NodeCoordinatesAt(index int) (Coordinates, error) {
	if index < 0 || index >= g.NumberOfNodes() {
		return Coordinates{}, fmt.Errorf("%w: node index %d", ErrOutOfRange, index)
	}
	return g.nodeCoordinates(index), nil
}

// CellIndexAt returns the linear index of the cell at lattice coordinates
// (i, j, k), 0 <= i < nx (and likewise for j, k).
func (g *Grid) CellIndexAt(c Coordinates) (int, error) {
	for a := 0; a < 3; a++ {
		if c[a] < 0 || c[a] >= g.n[a] {
			return 0, fmt.Errorf("%w: cell coordinates %v", ErrOutOfRange, c)
		}
	}
	return g.cellIndex(c), nil
}

// CellCoordinatesAt returns the lattice coordinates of the cell at the given
// linear index.
func (g *Grid) CellCoordinatesAt(index int) (Coordinates, error) {
	if index < 0 || index >= g.NumberOfCells() {
		return Coordinates{}, fmt.Errorf("%w: cell index %d", ErrOutOfRange, index)
	}
	return g.cellCoordinates(index), nil
}

// Node returns the world position of the node at the given linear index:
// anchor + (i*hx, j*hy, k*hz).
func (g *Grid) Node(index int) (geometry.Vector, error) {
	c, err := g.NodeCoordinatesAt(index)
	if err != nil {
		return geometry.Vector{}, err
	}
	return g.nodePosition(c), nil
}

func (g *Grid) nodePosition(c Coordinates) geometry.Vector {
	return geometry.Vector{
		g.anchor[0] + float64(c[0])*g.h[0],
		g.anchor[1] + float64(c[1])*g.h[1],
		g.anchor[2] + float64(c[2])*g.h[2],
	}
}

// Corner offsets of a cell, in the canonical hexahedron node order: the 4
// bottom corners counter-clockwise starting at (i, j), then the same 4 at
// layer k+1. This order defines the convention every shape-function and
// quadrature routine assumes.
var cellCornerOffsets = [8]Coordinates{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

func (g *Grid) cellNodeIndices(c Coordinates) [8]int {
	var nodes [8]int
	for n, o := range cellCornerOffsets {
		nodes[n] = g.nodeIndex(Coordinates{c[0] + o[0], c[1] + o[1], c[2] + o[2]})
	}
	return nodes
}

// NodeIndicesOf returns the 8 corner node indices of the cell at the given
// linear index, in canonical hexahedron order.
func (g *Grid) NodeIndicesOf(cellIndex int) ([8]int, error) {
	c, err := g.CellCoordinatesAt(cellIndex)
	if err != nil {
		return [8]int{}, err
	}
	return g.cellNodeIndices(c), nil
}

// Edge returns the ordered pair of node indices of the edge at the given
// linear index.
//
// Canonical order: layers k = 0..nz in increasing order. Within a layer,
// rows j = 0..ny each emit their nx x-direction edges in increasing i and,
// while j < ny, the nx+1 y-direction edges tying row j to row j+1. After a
// layer's in-plane edges, while k < nz, the (nx+1)(ny+1) z-direction edges
// to layer k+1 follow, in node lexicographic order.
func (g *Grid) Edge(index int) ([2]int, error) {
	if index < 0 || index >= g.NumberOfEdges() {
		return [2]int{}, fmt.Errorf("%w: edge index %d", ErrOutOfRange, index)
	}
	nx, ny := g.n[0], g.n[1]
	layerEdges := nx*(ny+1) + ny*(nx+1)
	interLayer := (nx + 1) * (ny + 1)
	block := layerEdges + interLayer

	// The last layer has no trailing inter-layer block, but index is in
	// range so the division still lands on k = nz with r < layerEdges.
	k := index / block
	r := index % block

	if r >= layerEdges {
		// z-direction edge between layers k and k+1.
		m := r - layerEdges
		c := Coordinates{m % (nx + 1), m / (nx + 1), k}
		return [2]int{
			g.nodeIndex(c),
			g.nodeIndex(Coordinates{c[0], c[1], c[2] + 1}),
		}, nil
	}

	// In-plane edge of layer k. Rows j < ny pair nx x-edges with nx+1
	// y-edges; the final row j = ny carries x-edges only.
	group := 2*nx + 1
	j := r / group
	t := r % group
	switch {
	case j == ny || t < nx:
		i := t
		return [2]int{
			g.nodeIndex(Coordinates{i, j, k}),
			g.nodeIndex(Coordinates{i + 1, j, k}),
		}, nil
	default:
		i := t - nx
		return [2]int{
			g.nodeIndex(Coordinates{i, j, k}),
			g.nodeIndex(Coordinates{i, j + 1, k}),
		}, nil
	}
}

// Face returns the ordered 4-tuple of node indices of the face at the given
// linear index.
//
// Canonical order: for each layer boundary k = 0..nz, the nx*ny z-normal
// faces of that boundary come first, row-major in (i, j); while k < nz they
// are followed by the nx*(ny+1) y-normal faces and then the (nx+1)*ny
// x-normal faces of the slab between layers k and k+1, both row-major over
// the layer-k nodes they start from.
func (g *Grid) Face(index int) ([4]int, error) {
	if index < 0 || index >= g.NumberOfFaces() {
		return [4]int{}, fmt.Errorf("%w: face index %d", ErrOutOfRange, index)
	}
	nx, ny := g.n[0], g.n[1]
	zFaces := nx * ny
	yFaces := nx * (ny + 1)
	block := zFaces + yFaces + (nx+1)*ny

	// As with edges, the final boundary only holds z-normal faces.
	k := index / block
	r := index % block

	switch {
	case r < zFaces:
		// z-normal: bottom-left, bottom-right, top-right, top-left of the
		// local 2D cell.
		i, j := r%nx, r/nx
		return [4]int{
			g.nodeIndex(Coordinates{i, j, k}),
			g.nodeIndex(Coordinates{i + 1, j, k}),
			g.nodeIndex(Coordinates{i + 1, j + 1, k}),
			g.nodeIndex(Coordinates{i, j + 1, k}),
		}, nil
	case r < zFaces+yFaces:
		// y-normal: an x-edge of layer k paired with its copy at layer k+1.
		m := r - zFaces
		i, j := m%nx, m/nx
		return [4]int{
			g.nodeIndex(Coordinates{i, j, k}),
			g.nodeIndex(Coordinates{i + 1, j, k}),
			g.nodeIndex(Coordinates{i + 1, j, k + 1}),
			g.nodeIndex(Coordinates{i, j, k + 1}),
		}, nil
	default:
		// x-normal: a y-edge of layer k paired with its copy at layer k+1.
		m := r - zFaces - yFaces
		i, j := m%(nx+1), m/(nx+1)
		return [4]int{
			g.nodeIndex(Coordinates{i, j, k}),
			g.nodeIndex(Coordinates{i, j + 1, k}),
			g.nodeIndex(Coordinates{i, j + 1, k + 1}),
			g.nodeIndex(Coordinates{i, j, k + 1}),
		}, nil
	}
}

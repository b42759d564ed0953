package grid

import (
	"github.com/guparan/caribou/geometry"
)

// Cell is a stateless view over one lattice cell: it holds only the grid it
// belongs to and its lattice coordinates, and computes everything else on
// demand. A Cell never outlives its grid.
type Cell struct {
	grid        *Grid
	coordinates Coordinates
}

// CellAt returns the view of the cell at the given linear index.
func (g *Grid) CellAt(index int) (Cell, error) {
	c, err := g.CellCoordinatesAt(index)
	if err != nil {
		return Cell{}, err
	}
	return Cell{grid: g, coordinates: c}, nil
}

// CellAtCoordinates returns the view of the cell at lattice coordinates
// (i, j, k).
func (g *Grid) CellAtCoordinates(c Coordinates) (Cell, error) {
	if _, err := g.CellIndexAt(c); err != nil {
		return Cell{}, err
	}
	return Cell{grid: g, coordinates: c}, nil
}

// Index returns the cell's linear index.
func (c Cell) Index() int { return c.grid.cellIndex(c.coordinates) }

// Coordinates returns the cell's lattice coordinates.
func (c Cell) Coordinates() Coordinates { return c.coordinates }

// NodeIndices returns the 8 corner node indices in canonical hexahedron
// order.
func (c Cell) NodeIndices() [8]int { return c.grid.cellNodeIndices(c.coordinates) }

// Nodes returns the world positions of the 8 corners in canonical order.
func (c Cell) Nodes() [8]geometry.Vector {
	var nodes [8]geometry.Vector
	for n, o := range cellCornerOffsets {
		nodes[n] = c.grid.nodePosition(Coordinates{
			c.coordinates[0] + o[0],
			c.coordinates[1] + o[1],
			c.coordinates[2] + o[2],
		})
	}
	return nodes
}

// Center returns the world position of the cell's midpoint.
func (c Cell) Center() geometry.Vector {
	h := c.grid.h
	return c.grid.nodePosition(c.coordinates).Add(h.Scale(0.5))
}

// Size returns the cell dimensions (hx, hy, hz).
func (c Cell) Size() geometry.Vector { return c.grid.h }

// Element returns the cell as a physical hexahedron element.
func (c Cell) Element() geometry.Element {
	nodes := c.Nodes()
	return geometry.Element{Shape: geometry.Hexahedron, Nodes: nodes[:]}
}

// GaussNodes generates the quadrature rule of the given order for the cell,
// defined in reference space [-1,1]^3 and independent of the cell geometry.
// Every call yields a fresh, finite sequence.
func (c Cell) GaussNodes(order int) ([]geometry.GaussNode, error) {
	return geometry.GaussNodes(geometry.Hexahedron, order)
}

// WorldCoordinates maps a reference position in [-1,1]^3 to world space by
// trilinear interpolation of the cell corners.
func (c Cell) WorldCoordinates(local geometry.Vector) geometry.Vector {
	return c.Element().WorldCoordinates(local)
}

// LocalCoordinates maps a world position to the cell's reference space.
// The inverse is the componentwise affine map (p - center) / (h/2), valid
// because cells are axis-aligned and uniformly sized.
func (c Cell) LocalCoordinates(world geometry.Vector) geometry.Vector {
	center := c.Center()
	h := c.grid.h
	return geometry.Vector{
		(world[0] - center[0]) / (h[0] / 2),
		(world[1] - center[1]) / (h[1] / 2),
		(world[2] - center[2]) / (h[2] / 2),
	}
}

// Volume returns hx*hy*hz.
func (c Cell) Volume() float64 {
	h := c.grid.h
	return h[0] * h[1] * h[2]
}

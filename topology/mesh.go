// Package topology provides an in-memory container for node positions and
// the connectivity of named element groups (domains). It holds no world
// geometry beyond positions, performs no file I/O, and leaves format
// bridging to external tooling.
package topology

import (
	"errors"
	"fmt"

	"github.com/guparan/caribou/geometry"
	"github.com/guparan/caribou/grid"
)

// Sentinel errors for topology operations.
var (
	// ErrNodeIndex indicates a node index outside of the mesh.
	ErrNodeIndex = errors.New("topology: node index out of range")
	// ErrDomainName indicates a domain name already used in the mesh.
	ErrDomainName = errors.New("topology: a domain with this name already exists")
	// ErrElementNodes indicates element connectivity whose node count does
	// not match the domain's shape, or that references a missing node.
	ErrElementNodes = errors.New("topology: invalid element node indices")
)

// Mesh stores node positions and owns the domains built over them.
type Mesh struct {
	positions []geometry.Vector
	domains   []*Domain
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// NewMeshFromGrid builds a mesh holding every node of a structured grid and
// one hexahedron domain holding every cell, both in the grid's canonical
// numbering.
func NewMeshFromGrid(name string, g *grid.Grid) *Mesh {
	m := NewMesh()
	for i := 0; i < g.NumberOfNodes(); i++ {
		p, _ := g.Node(i)
		m.AddNode(p)
	}
	indices := make([][]int, g.NumberOfCells())
	for c := 0; c < g.NumberOfCells(); c++ {
		nodes, _ := g.NodeIndicesOf(c)
		indices[c] = nodes[:]
	}
	// The grid guarantees well-formed connectivity.
	if _, err := m.AddDomain(name, geometry.Hexahedron, indices); err != nil {
		panic(err)
	}
	return m
}

// AddNode appends a node position and returns its index.
func (m *Mesh) AddNode(p geometry.Vector) int {
	m.positions = append(m.positions, p)
	return len(m.positions) - 1
}

// AddNodes appends several node positions.
func (m *Mesh) AddNodes(ps ...geometry.Vector) {
	m.positions = append(m.positions, ps...)
}

// NumberOfNodes returns the node count.
func (m *Mesh) NumberOfNodes() int { return len(m.positions) }

// Position returns the position of node i.
func (m *Mesh) Position(i int) (geometry.Vector, error) {
	if i < 0 || i >= len(m.positions) {
		return geometry.Vector{}, fmt.Errorf("%w: %d", ErrNodeIndex, i)
	}
	return m.positions[i], nil
}

// Positions returns the positions of the given nodes.
func (m *Mesh) Positions(indices ...int) ([]geometry.Vector, error) {
	out := make([]geometry.Vector, len(indices))
	for n, i := range indices {
		p, err := m.Position(i)
		if err != nil {
			return nil, err
		}
		out[n] = p
	}
	return out, nil
}

// AddDomain creates a named domain of same-shape elements over the mesh
// nodes. Every row of indices is the connectivity of one element and must
// hold exactly the shape's node count; mixed shapes go in separate domains.
func (m *Mesh) AddDomain(name string, shape geometry.ShapeType, indices [][]int) (*Domain, error) {
	if m.Domain(name) != nil {
		return nil, fmt.Errorf("%w: %q", ErrDomainName, name)
	}
	for e, element := range indices {
		if len(element) != shape.NumberOfNodes() {
			return nil, fmt.Errorf("%w: element %d has %d nodes, %s needs %d",
				ErrElementNodes, e, len(element), shape, shape.NumberOfNodes())
		}
		for _, i := range element {
			if i < 0 || i >= len(m.positions) {
				return nil, fmt.Errorf("%w: element %d references node %d", ErrElementNodes, e, i)
			}
		}
	}
	d := &Domain{mesh: m, name: name, shape: shape, indices: indices}
	m.domains = append(m.domains, d)
	return d, nil
}

// Domain returns the domain with the given name, or nil.
func (m *Mesh) Domain(name string) *Domain {
	for _, d := range m.domains {
		if d.name == name {
			return d
		}
	}
	return nil
}

// NumberOfDomains returns the domain count.
func (m *Mesh) NumberOfDomains() int { return len(m.domains) }

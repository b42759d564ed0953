package topology

import (
	"fmt"

	"github.com/guparan/caribou/geometry"
)

// Domain is a named subspace of a mesh: the connectivity of a set of
// elements that all share one shape. It stores node indices only; positions
// stay in the mesh.
type Domain struct {
	mesh    *Mesh
	name    string
	shape   geometry.ShapeType
	indices [][]int
}

// Name returns the domain name.
func (d *Domain) Name() string { return d.name }

// Shape returns the shape shared by every element of the domain.
func (d *Domain) Shape() geometry.ShapeType { return d.shape }

// NumberOfElements returns the element count.
func (d *Domain) NumberOfElements() int { return len(d.indices) }

// ElementIndices returns the node indices of element e.
func (d *Domain) ElementIndices(e int) ([]int, error) {
	if e < 0 || e >= len(d.indices) {
		return nil, fmt.Errorf("%w: element %d", ErrElementNodes, e)
	}
	return d.indices[e], nil
}

// Element materializes element e as a physical element, gathering its node
// positions from the mesh.
func (d *Domain) Element(e int) (geometry.Element, error) {
	indices, err := d.ElementIndices(e)
	if err != nil {
		return geometry.Element{}, err
	}
	nodes, err := d.mesh.Positions(indices...)
	if err != nil {
		return geometry.Element{}, err
	}
	return geometry.NewElement(d.shape, nodes)
}

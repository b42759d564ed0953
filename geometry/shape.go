// Package geometry provides the closed family of linear element shapes
// (segment, triangle, quad, tetrahedron, hexahedron) together with their
// reference-space node layout, shape functions, quadrature rules and the
// isoparametric mapping between reference and world space.
package geometry

// Vector is a position or displacement in world or reference space.
// Shapes of dimension below 3 ignore the trailing components.
type Vector [3]float64

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns s·v.
func (v Vector) Scale(s float64) Vector {
	return Vector{s * v[0], s * v[1], s * v[2]}
}

// ShapeType identifies one member of the closed set of linear element
// shapes. Every capability (node count, shape functions, quadrature rule,
// reference-to-world mapping) is selected by this tag at construction time;
// there is no runtime subclassing.
type ShapeType uint8

const (
	Segment ShapeType = iota
	Triangle
	Quad
	Tetrahedron
	Hexahedron
)

func (s ShapeType) String() string {
	switch s {
	case Segment:
		return "Segment"
	case Triangle:
		return "Triangle"
	case Quad:
		return "Quad"
	case Tetrahedron:
		return "Tetrahedron"
	case Hexahedron:
		return "Hexahedron"
	}
	return "Unknown"
}

// Dimension returns the intrinsic dimension of the shape's reference space.
func (s ShapeType) Dimension() int {
	switch s {
	case Segment:
		return 1
	case Triangle, Quad:
		return 2
	case Tetrahedron, Hexahedron:
		return 3
	}
	return 0
}

// NumberOfNodes returns the number of corner nodes of the shape.
func (s ShapeType) NumberOfNodes() int {
	switch s {
	case Segment:
		return 2
	case Triangle:
		return 3
	case Quad, Tetrahedron:
		return 4
	case Hexahedron:
		return 8
	}
	return 0
}

// Reference node layouts. Tensor shapes live in [-1,1]^d, simplex shapes in
// the unit simplex. The hexahedron order (4 bottom corners counter-clockwise,
// then the same 4 at the top) is the convention every downstream shape
// function and quadrature routine assumes.
var (
	segmentNodes = []Vector{{-1}, {1}}

	triangleNodes = []Vector{{0, 0}, {1, 0}, {0, 1}}

	quadNodes = []Vector{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	tetrahedronNodes = []Vector{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	hexahedronNodes = []Vector{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
)

// ReferenceNodes returns the corner positions of the shape in its reference
// space. The returned slice is shared and must not be modified.
func (s ShapeType) ReferenceNodes() []Vector {
	switch s {
	case Segment:
		return segmentNodes
	case Triangle:
		return triangleNodes
	case Quad:
		return quadNodes
	case Tetrahedron:
		return tetrahedronNodes
	case Hexahedron:
		return hexahedronNodes
	}
	return nil
}

// ShapeFunctions evaluates the linear Lagrange shape functions of the shape
// at the reference position local. The returned slice holds one value per
// corner node, in canonical node order; the values form a partition of unity.
func (s ShapeType) ShapeFunctions(local Vector) []float64 {
	u, v, w := local[0], local[1], local[2]
	switch s {
	case Segment:
		return []float64{(1 - u) / 2, (1 + u) / 2}
	case Triangle:
		return []float64{1 - u - v, u, v}
	case Quad:
		return []float64{
			(1 - u) * (1 - v) / 4,
			(1 + u) * (1 - v) / 4,
			(1 + u) * (1 + v) / 4,
			(1 - u) * (1 + v) / 4,
		}
	case Tetrahedron:
		return []float64{1 - u - v - w, u, v, w}
	case Hexahedron:
		n := make([]float64, 8)
		for c, r := range hexahedronNodes {
			n[c] = (1 + u*r[0]) * (1 + v*r[1]) * (1 + w*r[2]) / 8
		}
		return n
	}
	return nil
}

// ShapeDerivatives evaluates the derivatives of the shape functions with
// respect to the reference coordinates at local. Entry [c][a] holds
// dN_c/dlocal_a; components beyond the shape's dimension are zero.
func (s ShapeType) ShapeDerivatives(local Vector) []Vector {
	u, v, w := local[0], local[1], local[2]
	switch s {
	case Segment:
		return []Vector{{-0.5}, {0.5}}
	case Triangle:
		return []Vector{{-1, -1}, {1, 0}, {0, 1}}
	case Quad:
		return []Vector{
			{-(1 - v) / 4, -(1 - u) / 4},
			{(1 - v) / 4, -(1 + u) / 4},
			{(1 + v) / 4, (1 + u) / 4},
			{-(1 + v) / 4, (1 - u) / 4},
		}
	case Tetrahedron:
		return []Vector{{-1, -1, -1}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	case Hexahedron:
		d := make([]Vector, 8)
		for c, r := range hexahedronNodes {
			d[c] = Vector{
				r[0] * (1 + v*r[1]) * (1 + w*r[2]) / 8,
				r[1] * (1 + u*r[0]) * (1 + w*r[2]) / 8,
				r[2] * (1 + u*r[0]) * (1 + v*r[1]) / 8,
			}
		}
		return d
	}
	return nil
}

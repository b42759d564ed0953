package geometry

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrNodeCount is returned when an element is built with a node count that
// does not match its shape.
var ErrNodeCount = errors.New("geometry: node count does not match shape")

// Element is a physical element: a shape tag plus the world positions of its
// corner nodes in canonical order. It is a value type computed on demand,
// not a long-lived object.
type Element struct {
	Shape ShapeType
	Nodes []Vector
}

// NewElement builds an element, validating the node count against the shape.
func NewElement(shape ShapeType, nodes []Vector) (Element, error) {
	if len(nodes) != shape.NumberOfNodes() {
		return Element{}, fmt.Errorf("%w: %s needs %d nodes, got %d",
			ErrNodeCount, shape, shape.NumberOfNodes(), len(nodes))
	}
	return Element{Shape: shape, Nodes: nodes}, nil
}

// WorldCoordinates maps a reference-space position to world space by
// isoparametric interpolation of the corner nodes: x(local) = sum N_c * x_c.
// For axis-aligned rectangular cells this transform is exact (affine in
// each axis).
func (e Element) WorldCoordinates(local Vector) Vector {
	n := e.Shape.ShapeFunctions(local)
	var p Vector
	for c, x := range e.Nodes {
		p = p.Add(x.Scale(n[c]))
	}
	return p
}

// Center returns the world position of the reference-space centroid.
func (e Element) Center() Vector {
	var sum Vector
	for _, x := range e.Nodes {
		sum = sum.Add(x)
	}
	return sum.Scale(1 / float64(len(e.Nodes)))
}

// Jacobian evaluates the 3×dim Jacobian dx/dlocal of the reference-to-world
// mapping at local, where dim is the shape's intrinsic dimension.
func (e Element) Jacobian(local Vector) *mat.Dense {
	dim := e.Shape.Dimension()
	d := e.Shape.ShapeDerivatives(local)
	j := mat.NewDense(3, dim, nil)
	for c, x := range e.Nodes {
		for a := 0; a < 3; a++ {
			for b := 0; b < dim; b++ {
				j.Set(a, b, j.At(a, b)+d[c][b]*x[a])
			}
		}
	}
	return j
}

// JacobianDeterminant evaluates the integration measure at local. For 3D
// shapes this is det(J); for lower-dimensional shapes embedded in 3D it is
// the Gram determinant sqrt(det(J^T J)), the area (resp. length) scaling of
// the mapping.
func (e Element) JacobianDeterminant(local Vector) float64 {
	j := e.Jacobian(local)
	if e.Shape.Dimension() == 3 {
		return mat.Det(j)
	}
	dim := e.Shape.Dimension()
	g := mat.NewDense(dim, dim, nil)
	g.Mul(j.T(), j)
	det := mat.Det(g)
	if det <= 0 {
		return 0
	}
	return math.Sqrt(det)
}

// GaussQuadrature integrates f over the element using the rule of the given
// order: the weighted sum of f at every gauss node scaled by the Jacobian
// determinant. f receives the element and the current gauss node.
func (e Element) GaussQuadrature(order int, f func(Element, GaussNode) float64) (float64, error) {
	nodes, err := GaussNodes(e.Shape, order)
	if err != nil {
		return 0, err
	}
	var result float64
	for _, gn := range nodes {
		detJ := e.JacobianDeterminant(gn.Position)
		result += f(e, gn) * gn.Weight * detJ
	}
	return result, nil
}

// Volume computes the measure (length, area or volume) of the element by
// integrating the unit function with the 2-point tensor rule, which is exact
// for every shape in the family.
func (e Element) Volume() float64 {
	v, err := e.GaussQuadrature(2, func(Element, GaussNode) float64 { return 1 })
	if err != nil {
		// Order 2 exists for every shape in the closed set.
		panic(err)
	}
	return v
}

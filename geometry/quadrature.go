package geometry

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidOrder is returned when a quadrature rule of the requested order
// is not available for a shape.
var ErrInvalidOrder = errors.New("geometry: no quadrature rule of the requested order")

// GaussNode is a quadrature sample: a reference-space position with its
// integration weight. Nodes are generated on demand and never persisted.
type GaussNode struct {
	Position Vector
	Weight   float64
}

// GaussLegendre computes the n-point Gauss-Legendre rule on [-1,1] using the
// Golub-Welsch method: the points are the eigenvalues of the symmetric
// tridiagonal Jacobi matrix of the Legendre recurrence, and the weights
// follow from the first component of each eigenvector.
func GaussLegendre(n int) (x, w []float64, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: %d points", ErrInvalidOrder, n)
	}
	if n == 1 {
		return []float64{0}, []float64{2}, nil
	}

	// Off-diagonal of the Jacobi matrix: b_i = i / sqrt(4i^2 - 1).
	d1 := make([]float64, n-1)
	for i := 1; i < n; i++ {
		fi := float64(i)
		d1[i-1] = fi / math.Sqrt(4*fi*fi-1)
	}
	jj := newSymTriDiagonal(make([]float64, n), d1)

	var eig mat.EigenSym
	if ok := eig.Factorize(jj, true); !ok {
		return nil, nil, fmt.Errorf("geometry: eigenvalue decomposition failed for %d-point rule", n)
	}
	x = eig.Values(nil)

	vv := mat.NewDense(n, n, nil)
	eig.VectorsTo(vv)
	w = make([]float64, n)
	for i := 0; i < n; i++ {
		v0 := vv.At(0, i)
		w[i] = 2 * v0 * v0
	}
	return x, w, nil
}

// newSymTriDiagonal builds a dense symmetric matrix from its main diagonal
// d0 and first off-diagonal d1.
func newSymTriDiagonal(d0, d1 []float64) *mat.SymDense {
	n := len(d0)
	tri := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		tri.SetSym(i, i, d0[i])
		if i < n-1 {
			tri.SetSym(i, i+1, d1[i])
		}
	}
	return tri
}

// Simplex rules. Weights sum to the reference measure (1/2 for the unit
// triangle, 1/6 for the unit tetrahedron).
var (
	triangleRule1 = []GaussNode{
		{Position: Vector{1. / 3, 1. / 3}, Weight: 1. / 2},
	}
	triangleRule2 = []GaussNode{
		{Position: Vector{1. / 6, 1. / 6}, Weight: 1. / 6},
		{Position: Vector{2. / 3, 1. / 6}, Weight: 1. / 6},
		{Position: Vector{1. / 6, 2. / 3}, Weight: 1. / 6},
	}
	tetrahedronRule1 = []GaussNode{
		{Position: Vector{1. / 4, 1. / 4, 1. / 4}, Weight: 1. / 6},
	}
	tetrahedronRule2 = tetrahedronRule4pt()
)

func tetrahedronRule4pt() []GaussNode {
	const (
		a = 0.5854101966249685 // (5 + 3*sqrt(5)) / 20
		b = 0.1381966011250105 // (5 - sqrt(5)) / 20
	)
	return []GaussNode{
		{Position: Vector{b, b, b}, Weight: 1. / 24},
		{Position: Vector{a, b, b}, Weight: 1. / 24},
		{Position: Vector{b, a, b}, Weight: 1. / 24},
		{Position: Vector{b, b, a}, Weight: 1. / 24},
	}
}

// GaussNodes returns the quadrature rule of the given order for a shape.
// For tensor shapes (segment, quad, hexahedron) the order is the number of
// Gauss-Legendre points per axis, so a hexahedron of order 2 yields 8 nodes
// of weight 1. Simplex shapes support orders 1 and 2 (the 1-point centroid
// rule and the standard 3-point triangle / 4-point tetrahedron rules).
// Each call produces a fresh slice: the sequence is finite and restartable.
func GaussNodes(shape ShapeType, order int) ([]GaussNode, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: order %d for %s", ErrInvalidOrder, order, shape)
	}
	switch shape {
	case Triangle:
		switch order {
		case 1:
			return cloneNodes(triangleRule1), nil
		case 2:
			return cloneNodes(triangleRule2), nil
		}
		return nil, fmt.Errorf("%w: order %d for %s", ErrInvalidOrder, order, shape)
	case Tetrahedron:
		switch order {
		case 1:
			return cloneNodes(tetrahedronRule1), nil
		case 2:
			return cloneNodes(tetrahedronRule2), nil
		}
		return nil, fmt.Errorf("%w: order %d for %s", ErrInvalidOrder, order, shape)
	case Segment, Quad, Hexahedron:
		x, w, err := GaussLegendre(order)
		if err != nil {
			return nil, err
		}
		return tensorNodes(shape.Dimension(), x, w), nil
	}
	return nil, fmt.Errorf("%w: unknown shape", ErrInvalidOrder)
}

// tensorNodes expands a 1D rule into a dim-dimensional tensor product.
// The first axis varies fastest.
func tensorNodes(dim int, x, w []float64) []GaussNode {
	n := len(x)
	switch dim {
	case 1:
		nodes := make([]GaussNode, n)
		for i := range x {
			nodes[i] = GaussNode{Position: Vector{x[i]}, Weight: w[i]}
		}
		return nodes
	case 2:
		nodes := make([]GaussNode, 0, n*n)
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				nodes = append(nodes, GaussNode{
					Position: Vector{x[i], x[j]},
					Weight:   w[i] * w[j],
				})
			}
		}
		return nodes
	default:
		nodes := make([]GaussNode, 0, n*n*n)
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					nodes = append(nodes, GaussNode{
						Position: Vector{x[i], x[j], x[k]},
						Weight:   w[i] * w[j] * w[k],
					})
				}
			}
		}
		return nodes
	}
}

func cloneNodes(rule []GaussNode) []GaussNode {
	out := make([]GaussNode, len(rule))
	copy(out, rule)
	return out
}

package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxElement returns a hexahedron spanning [0,hx]x[0,hy]x[0,hz] translated
// by origin, corners in canonical order.
func boxElement(t *testing.T, origin Vector, h Vector) Element {
	t.Helper()
	nodes := make([]Vector, 8)
	for c, r := range Hexahedron.ReferenceNodes() {
		for a := 0; a < 3; a++ {
			nodes[c][a] = origin[a] + (r[a]+1)/2*h[a]
		}
	}
	e, err := NewElement(Hexahedron, nodes)
	require.NoError(t, err)
	return e
}

func TestNewElement_NodeCount(t *testing.T) {
	_, err := NewElement(Hexahedron, make([]Vector, 4))
	assert.ErrorIs(t, err, ErrNodeCount)
	_, err = NewElement(Segment, make([]Vector, 2))
	assert.NoError(t, err)
}

func TestElement_WorldCoordinates(t *testing.T) {
	e := boxElement(t, Vector{1, 2, 3}, Vector{2, 4, 6})

	// The reference center maps to the box center.
	center := e.WorldCoordinates(Vector{0, 0, 0})
	for a, want := range []float64{2, 4, 6} {
		assert.InDelta(t, want, center[a], 1e-12)
	}
	mean := e.Center()
	for a := 0; a < 3; a++ {
		assert.InDelta(t, center[a], mean[a], 1e-12)
	}

	// Reference corners map to the world corners.
	for c, r := range Hexahedron.ReferenceNodes() {
		p := e.WorldCoordinates(r)
		for a := 0; a < 3; a++ {
			assert.InDelta(t, e.Nodes[c][a], p[a], 1e-12)
		}
	}
}

func TestElement_Jacobian(t *testing.T) {
	e := boxElement(t, Vector{0, 0, 0}, Vector{2, 4, 6})

	// For an axis-aligned box the Jacobian is diag(h)/2, constant in local.
	for _, local := range []Vector{{0, 0, 0}, {0.5, -0.5, 0.25}} {
		j := e.Jacobian(local)
		for a, h := range []float64{2, 4, 6} {
			for b := 0; b < 3; b++ {
				want := 0.0
				if a == b {
					want = h / 2
				}
				assert.InDelta(t, want, j.At(a, b), 1e-12)
			}
		}
		assert.InDelta(t, 2*4*6/8.0, e.JacobianDeterminant(local), 1e-12)
	}
}

func TestElement_Volume(t *testing.T) {
	assert.InDelta(t, 2*4*6, boxElement(t, Vector{-1, 5, 0}, Vector{2, 4, 6}).Volume(), 1e-9)

	// Unit tetrahedron volume is 1/6.
	tet, err := NewElement(Tetrahedron, []Vector{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6, tet.Volume(), 1e-12)

	// A quad embedded in 3D integrates its area through the Gram
	// determinant.
	quad, err := NewElement(Quad, []Vector{{0, 0, 1}, {3, 0, 1}, {3, 2, 1}, {0, 2, 1}})
	require.NoError(t, err)
	assert.InDelta(t, 6, quad.Volume(), 1e-9)

	segment, err := NewElement(Segment, []Vector{{0, 0, 0}, {3, 4, 0}})
	require.NoError(t, err)
	assert.InDelta(t, 5, segment.Volume(), 1e-9)
}

// Gauss quadrature of a trilinear polynomial is exact with the 2-point
// rule.
func TestElement_GaussQuadrature(t *testing.T) {
	e := boxElement(t, Vector{0, 0, 0}, Vector{2, 2, 2})

	// Integrate 1 + 2u + 2uv + 3w over the reference cube: the odd terms
	// vanish, leaving the cube measure scaled by the constant Jacobian.
	result, err := e.GaussQuadrature(2, func(_ Element, gn GaussNode) float64 {
		u, v, w := gn.Position[0], gn.Position[1], gn.Position[2]
		return 1 + 2*u + 2*u*v + 3*w
	})
	require.NoError(t, err)
	assert.InDelta(t, 8, result, 1e-12)

	// Integrating x over [0,2]^3 in world space: volume * mean(x) = 8.
	result, err = e.GaussQuadrature(2, func(el Element, gn GaussNode) float64 {
		return el.WorldCoordinates(gn.Position)[0]
	})
	require.NoError(t, err)
	assert.InDelta(t, 8, result, 1e-12)

	_, err = e.GaussQuadrature(0, func(Element, GaussNode) float64 { return 1 })
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guparan/caribou/geometry"
)

func TestCellNumbering(t *testing.T) {
	g := newTestGrid(t)

	index, err := g.CellIndexAt(Coordinates{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 5, index)

	c, err := g.CellCoordinatesAt(5)
	require.NoError(t, err)
	assert.Equal(t, Coordinates{1, 0, 1}, c)
}

func TestNodeIndexRoundTrip(t *testing.T) {
	g := newTestGrid(t)
	for i := 0; i < g.NumberOfNodes(); i++ {
		c, err := g.NodeCoordinatesAt(i)
		require.NoError(t, err)
		index, err := g.NodeIndexAt(c)
		require.NoError(t, err)
		assert.Equal(t, i, index)
	}
}

func TestCellIndexRoundTrip(t *testing.T) {
	g, err := New(geometry.Vector{0, 0, 0}, Coordinates{3, 2, 4}, geometry.Vector{3, 2, 4})
	require.NoError(t, err)
	for i := 0; i < g.NumberOfCells(); i++ {
		c, err := g.CellCoordinatesAt(i)
		require.NoError(t, err)
		index, err := g.CellIndexAt(c)
		require.NoError(t, err)
		assert.Equal(t, i, index)
	}
}

func TestIndexing_OutOfRange(t *testing.T) {
	g := newTestGrid(t)

	_, err := g.NodeIndexAt(Coordinates{3, 0, 0})
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.NodeIndexAt(Coordinates{0, -1, 0})
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.NodeCoordinatesAt(27)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = g.CellIndexAt(Coordinates{2, 0, 0})
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.CellCoordinatesAt(8)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.CellCoordinatesAt(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = g.Edge(g.NumberOfEdges())
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.Face(g.NumberOfFaces())
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.Node(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.NodeIndicesOf(8)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// The canonical edge enumeration of the first layer, then the inter-layer
// block between layers 0 and 1.
func TestEdgeEnumeration(t *testing.T) {
	g := newTestGrid(t)

	expected := [][2]int{
		// Layer k=0: rows of x-edges interleaved with y-edge rows.
		{0, 1}, {1, 2},
		{0, 3}, {1, 4}, {2, 5},
		{3, 4}, {4, 5},
		{3, 6}, {4, 7}, {5, 8},
		{6, 7}, {7, 8},
		// Inter-layer z-edges between layers 0 and 1.
		{0, 9}, {1, 10}, {2, 11},
		{3, 12}, {4, 13}, {5, 14},
		{6, 15}, {7, 16}, {8, 17},
	}
	for index, want := range expected {
		edge, err := g.Edge(index)
		require.NoError(t, err)
		assert.Equal(t, want, edge, "edge %d", index)
	}
}

// The full edge set must cover every lattice-adjacent node pair exactly
// once, in every layer.
func TestEdgeEnumeration_Exhaustive(t *testing.T) {
	g, err := New(geometry.Vector{0, 0, 0}, Coordinates{3, 2, 4}, geometry.Vector{3, 2, 4})
	require.NoError(t, err)

	seen := make(map[[2]int]bool)
	for index := 0; index < g.NumberOfEdges(); index++ {
		edge, err := g.Edge(index)
		require.NoError(t, err)
		require.False(t, seen[edge], "edge %v emitted twice", edge)
		seen[edge] = true

		// Both endpoints must be lattice-adjacent along exactly one axis.
		a, err := g.NodeCoordinatesAt(edge[0])
		require.NoError(t, err)
		b, err := g.NodeCoordinatesAt(edge[1])
		require.NoError(t, err)
		var distance int
		for axis := 0; axis < 3; axis++ {
			distance += abs(b[axis] - a[axis])
		}
		assert.Equal(t, 1, distance, "edge %v is not lattice-adjacent", edge)
	}
	assert.Len(t, seen, g.NumberOfEdges())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// The canonical face enumeration: the z-normal faces of the first layer
// boundary, then the y-normal and x-normal faces of the first slab.
func TestFaceEnumeration(t *testing.T) {
	g := newTestGrid(t)

	expected := [][4]int{
		// z-normal faces of layer boundary k=0.
		{0, 1, 4, 3}, {1, 2, 5, 4},
		{3, 4, 7, 6}, {4, 5, 8, 7},
		// y-normal faces between layers 0 and 1.
		{0, 1, 10, 9}, {1, 2, 11, 10},
		{3, 4, 13, 12}, {4, 5, 14, 13},
		{6, 7, 16, 15}, {7, 8, 17, 16},
		// x-normal faces between layers 0 and 1.
		{0, 3, 12, 9}, {1, 4, 13, 10}, {2, 5, 14, 11},
		{3, 6, 15, 12}, {4, 7, 16, 13}, {5, 8, 17, 14},
	}
	for index, want := range expected {
		face, err := g.Face(index)
		require.NoError(t, err)
		assert.Equal(t, want, face, "face %d", index)
	}
}

func TestFaceEnumeration_Exhaustive(t *testing.T) {
	g, err := New(geometry.Vector{0, 0, 0}, Coordinates{3, 2, 4}, geometry.Vector{3, 2, 4})
	require.NoError(t, err)

	seen := make(map[[4]int]bool)
	for index := 0; index < g.NumberOfFaces(); index++ {
		face, err := g.Face(index)
		require.NoError(t, err)
		require.False(t, seen[face], "face %v emitted twice", face)
		seen[face] = true
	}
	assert.Len(t, seen, g.NumberOfFaces())
}

func TestNodeIndicesOf(t *testing.T) {
	g := newTestGrid(t)

	// Cell (0,0,0): bottom corners counter-clockwise, then the top layer.
	nodes, err := g.NodeIndicesOf(0)
	require.NoError(t, err)
	assert.Equal(t, [8]int{0, 1, 4, 3, 9, 10, 13, 12}, nodes)

	// Positions of the corner nodes must match the cell view.
	for index := 0; index < g.NumberOfCells(); index++ {
		nodes, err := g.NodeIndicesOf(index)
		require.NoError(t, err)
		cell, err := g.CellAt(index)
		require.NoError(t, err)
		corners := cell.Nodes()
		for n, node := range nodes {
			p, err := g.Node(node)
			require.NoError(t, err)
			assert.Equal(t, p, corners[n], "cell %d corner %d", index, n)
		}
	}
}

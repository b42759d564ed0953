package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidGeometry indicates construction parameters that cannot form
	// a grid: a subdivision count below 1 or a non-positive size component.
	// No partial grid is produced.
	ErrInvalidGeometry = errors.New("grid: subdivisions must be at least 1 and sizes must be positive")
	// ErrOutOfRange indicates a lattice coordinate or linear index outside
	// the valid range for nodes, cells, edges or faces. Recoverable: the
	// request was malformed, not the grid.
	ErrOutOfRange = errors.New("grid: coordinates or index out of range")
	// ErrNotFound indicates a point-localization query whose point lies
	// outside the grid bounding box: a valid query with no answer.
	ErrNotFound = errors.New("grid: no cell contains the point")
)

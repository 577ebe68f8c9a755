package lattice

import "errors"

var (
	// ErrInvalidSize indicates non-positive dimensions or a cell count that
	// does not fit in an int.
	ErrInvalidSize = errors.New("lattice: dimensions must be positive and addressable")

	// ErrIndexOutOfRange indicates a flat index outside [0, W·H).
	ErrIndexOutOfRange = errors.New("lattice: index out of range")
)

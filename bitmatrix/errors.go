package bitmatrix

import "errors"

// Sentinel errors returned by the bitmatrix package.
var (
	// ErrOutOfRange indicates a row index outside [0, NumRows()).
	ErrOutOfRange = errors.New("bitmatrix: row index out of range")
)

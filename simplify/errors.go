package simplify

import "errors"

// Sentinel errors returned by the simplify package.
var (
	// ErrDimensionMismatch indicates sat's row count does not match sys's
	// row count.
	ErrDimensionMismatch = errors.New("simplify: dimension mismatch between system and saturation matrix")
)

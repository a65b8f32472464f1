package conversion

import "errors"

// Sentinel errors returned by the conversion package.
var (
	// ErrDimensionMismatch indicates Src and Dst do not share a width.
	ErrDimensionMismatch = errors.New("conversion: dimension mismatch between source and destination systems")
)

package polyhedron

import "errors"

// Sentinel errors returned by the polyhedron package.
var (
	// ErrDimensionMismatch indicates two operands disagree on space
	// dimension, or a row's width does not match the polyhedron's.
	ErrDimensionMismatch = errors.New("polyhedron: dimension mismatch")

	// ErrTopologyMismatch indicates a strict relation was used in a
	// topologically closed polyhedron, or two operands disagree on
	// topology where agreement is required.
	ErrTopologyMismatch = errors.New("polyhedron: topology mismatch")

	// ErrInvalidArgument indicates a zero denominator in an affine
	// operation, a variable index out of range, or a malformed partial
	// function passed to MapSpaceDimensions.
	ErrInvalidArgument = errors.New("polyhedron: invalid argument")

	// ErrLengthOverflow indicates a requested space dimension exceeds
	// MaxSpaceDimension.
	ErrLengthOverflow = errors.New("polyhedron: space dimension exceeds the maximum supported")
)

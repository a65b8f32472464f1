package linrow

import "errors"

// Sentinel errors returned by the linrow package.
var (
	// ErrWidthTooSmall indicates an NNC row was constructed with width < 2,
	// leaving no room for the epsilon slack.
	ErrWidthTooSmall = errors.New("linrow: not-necessarily-closed row needs width >= 2")

	// ErrZeroDivisor indicates a point or closure point was constructed
	// with a zero divisor, which is never a valid generator.
	ErrZeroDivisor = errors.New("linrow: point divisor must be non-zero")

	// ErrBadKindForCombine indicates LinearCombine was asked to eliminate
	// a coefficient using a row whose pivot entry is zero.
	ErrBadKindForCombine = errors.New("linrow: pivot coefficient is zero")
)

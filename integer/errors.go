package integer

import "errors"

// Sentinel errors returned by the integer package. Callers branch on these
// with errors.Is; none of them are reformatted at the definition site.
var (
	// ErrDivByZero indicates a division (exact or truncating) by zero.
	ErrDivByZero = errors.New("integer: division by zero")

	// ErrNotExact indicates Div was asked for an exact quotient but the
	// dividend is not a multiple of the divisor.
	ErrNotExact = errors.New("integer: division is not exact")

	// ErrNegativeSqrt indicates Sqrt was called on a negative value.
	ErrNegativeSqrt = errors.New("integer: square root of negative value")

	// ErrOverflow is reserved for API completeness; math/big.Int has no
	// fixed-width overflow, so this is not reachable from ordinary
	// arithmetic in this package. See DESIGN.md.
	ErrOverflow = errors.New("integer: representable magnitude exceeded")
)

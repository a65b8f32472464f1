package ppl

import "errors"

// Sentinel errors returned by Load when parsing text produced outside of
// a round trip through Dump.
var (
	// ErrMalformed indicates a line or row did not match the expected
	// grammar (wrong field count, unparsable number, unknown tag).
	ErrMalformed = errors.New("ppl: malformed input")

	// ErrTruncated indicates the input ended before every declared row
	// was read.
	ErrTruncated = errors.New("ppl: truncated input")
)

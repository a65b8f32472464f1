package bitrow

import "errors"

// Sentinel errors returned by the bitrow package.
var (
	// ErrNegativeIndex indicates a bit index below zero was requested.
	ErrNegativeIndex = errors.New("bitrow: negative index")
)

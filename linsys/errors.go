package linsys

import "errors"

// Sentinel errors returned by the linsys package.
var (
	// ErrTopologyMismatch indicates a row's topology disagrees with the
	// system's declared topology.
	ErrTopologyMismatch = errors.New("linsys: topology mismatch")

	// ErrNotSorted indicates MergeRowsAssign was called on a system (or
	// argument) that is not currently sorted, or that has pending rows.
	ErrNotSorted = errors.New("linsys: system is not sorted or has pending rows")

	// ErrHasPending indicates pending rows remain where none are allowed.
	// No function of this package currently returns it; MergeRowsAssign
	// reports pending rows with ErrNotSorted.
	ErrHasPending = errors.New("linsys: system has pending rows")
)

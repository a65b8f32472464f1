// Package bitmatrix implements a dynamic sequence of bitrow.Row values
// sharing a declared column width: add/remove a row, transpose, sort rows
// and drop duplicates, resize (zero-filling new columns), per-row
// clear-from/set-until, and a sorted-contains test via binary search.
//
// Transpose is implemented by scanning each row's set bits and flipping
// (i, j) to (j, i), rather than any cleverer bit-parallel trick: a direct,
// readable implementation over a micro-optimized one, since transpose is
// not a hot-path operation.
package bitmatrix

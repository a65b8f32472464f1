// Package bitrow implements the dense bit-set over 0..n-1 used by bitmatrix
// and saturation: membership, insertion, deletion, range clears, boolean
// combination, subset tests, bit-scan, population count, and a
// lexicographic comparison that treats rows as sets of naturals (a proper
// subset always compares strictly less than its superset).
//
// Row is backed by github.com/bits-and-blooms/bitset, an ecosystem bitset
// implementation, rather than a hand-rolled []uint64 — see DESIGN.md.
package bitrow

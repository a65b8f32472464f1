package bitrow

import (
	"github.com/bits-and-blooms/bitset"
)

// Row is a dense set of non-negative integers. The zero value is an empty
// set ready to use; methods grow the backing store as needed, matching
// bits-and-blooms/bitset's own auto-extend behavior on Set.
type Row struct {
	bits *bitset.BitSet
}

// New returns an empty Row pre-sized to hold indices in [0, n).
// Complexity: O(n/64) for the initial allocation.
func New(n uint) Row {
	return Row{bits: bitset.New(n)}
}

func (r *Row) ensure() *bitset.BitSet {
	if r.bits == nil {
		r.bits = bitset.New(0)
	}
	return r.bits
}

// Len returns one past the highest bit this Row has ever addressed; it is
// not the population count (use PopCount for that).
func (r Row) Len() uint {
	if r.bits == nil {
		return 0
	}
	return r.bits.Len()
}

// Test reports whether index i is a member.
func (r Row) Test(i uint) bool {
	if r.bits == nil {
		return false
	}
	return r.bits.Test(i)
}

// Insert adds index i to the set.
// Complexity: amortized O(1), O(n/64) if backing storage must grow.
func (r *Row) Insert(i uint) {
	r.ensure().Set(i)
}

// Delete removes index i from the set. A no-op if absent.
func (r *Row) Delete(i uint) {
	if r.bits == nil {
		return
	}
	r.bits.Clear(i)
}

// ClearFrom clears every bit at index >= from, leaving [0, from) untouched.
func (r *Row) ClearFrom(from uint) {
	if r.bits == nil {
		return
	}
	n := r.bits.Len()
	for i := from; i < n; i++ {
		r.bits.Clear(i)
	}
}

// SetUntil sets every bit in [0, until), leaving [until, ...) untouched.
func (r *Row) SetUntil(until uint) {
	b := r.ensure()
	for i := uint(0); i < until; i++ {
		b.Set(i)
	}
}

// Clone returns an independent deep copy of r.
func (r Row) Clone() Row {
	if r.bits == nil {
		return Row{}
	}
	return Row{bits: r.bits.Clone()}
}

// Union returns r ∪ other as a new Row; r and other are unmodified.
func (r Row) Union(other Row) Row {
	a, b := r.ensure(), other.ensure()
	return Row{bits: a.Union(b)}
}

// Intersection returns r ∩ other as a new Row; r and other are unmodified.
func (r Row) Intersection(other Row) Row {
	a, b := r.ensure(), other.ensure()
	return Row{bits: a.Intersection(b)}
}

// Difference returns r \ other (members of r not in other) as a new Row.
func (r Row) Difference(other Row) Row {
	a, b := r.ensure(), other.ensure()
	return Row{bits: a.Difference(b)}
}

// Subset reports whether every member of r is also a member of other.
func (r Row) Subset(other Row) bool {
	a, b := r.ensure(), other.ensure()
	return a.DifferenceCardinality(b) == 0
}

// StrictSubset reports whether r is a subset of other and the two are not
// equal (other has at least one member r lacks).
func (r Row) StrictSubset(other Row) bool {
	return r.Subset(other) && !other.Subset(r)
}

// Equal reports whether r and other contain exactly the same members.
func (r Row) Equal(other Row) bool {
	return r.Subset(other) && other.Subset(r)
}

// PopCount returns the number of set bits.
func (r Row) PopCount() uint {
	if r.bits == nil {
		return 0
	}
	return r.bits.Count()
}

// FirstSet returns the lowest set index and true, or (0, false) if empty.
func (r Row) FirstSet() (uint, bool) {
	if r.bits == nil {
		return 0, false
	}
	return r.bits.NextSet(0)
}

// NextSet returns the lowest set index strictly greater than k, or
// (0, false) if none exists.
func (r Row) NextSet(k uint) (uint, bool) {
	if r.bits == nil {
		return 0, false
	}
	return r.bits.NextSet(k + 1)
}

// LastSet returns the highest set index and true, or (0, false) if empty.
// Complexity: O(n) — the library exposes only forward scanning, so the
// bits are tested one at a time from the top down.
func (r Row) LastSet() (uint, bool) {
	if r.bits == nil || r.bits.None() {
		return 0, false
	}
	n := r.bits.Len()
	for i := n; i > 0; i-- {
		if r.bits.Test(i - 1) {
			return i - 1, true
		}
	}
	return 0, false
}

// PrevSet returns the highest set index strictly less than k, or
// (0, false) if none exists.
func (r Row) PrevSet(k uint) (uint, bool) {
	if r.bits == nil || k == 0 {
		return 0, false
	}
	for i := k; i > 0; i-- {
		if r.bits.Test(i - 1) {
			return i - 1, true
		}
	}
	return 0, false
}

// Compare orders two Rows as sets of naturals: a proper subset compares
// strictly less than its superset; otherwise rows compare by their
// highest differing bit, treated as the most significant digit of a
// big-endian binary numeral. Compare(r, r) == 0 always.
func (r Row) Compare(other Row) int {
	if r.Equal(other) {
		return 0
	}
	if r.StrictSubset(other) {
		return -1
	}
	if other.StrictSubset(r) {
		return 1
	}
	// Neither is a subset of the other: order by highest differing bit.
	sym := r.Difference(other).Union(other.Difference(r))
	hi, ok := sym.LastSet()
	if !ok {
		return 0 // unreachable given the Equal check above
	}
	if r.Test(hi) {
		return 1
	}
	return -1
}

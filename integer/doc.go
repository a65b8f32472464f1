// Package integer provides the exact-integer arithmetic the rest of this
// module builds on: a Coefficient type wrapping math/big.Int with the
// small set of operations a double-description engine actually needs —
// gcd, lcm, extended gcd, exact division, truncating division, integer
// square root, sign, comparison, and the pervasive "normalize2" idiom that
// divides a pair of values by their gcd in one step.
//
// All results are exact. math/big.Int has no fixed-width overflow, so the
// "fatal on overflow" contract of the wider system is instead enforced one
// layer up, as a length-overflow guard on vector-space dimension (see the
// polyhedron package); Coefficient arithmetic itself never silently wraps
// or truncates.
//
// Zero is represented by the zero value of Coefficient, so a nil/empty
// Coefficient behaves as zero rather than panicking.
package integer

// Package saturation implements the saturation matrix: a bit matrix whose
// rows are indexed by generators and columns by constraints (or vice
// versa), where bit (i, j) = 1 iff generator i does NOT saturate
// constraint j — i.e. their scalar product is non-zero. This polarity
// choice is deliberate: the conversion and
// simplification engines both want the bit set to read directly as "the
// set of duals this row is still incompatible with", not the inverted
// "saturates" sense, so no negation is needed on the algorithms' hot path.
package saturation

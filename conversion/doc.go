// Package conversion implements the Chernikova-style double-description
// conversion engine: given a source linear system, a matched destination
// system, and the saturation matrix relating them (rows indexed by the
// destination, columns by the source), it incrementally consumes new
// source rows, updating the destination and saturation matrix so the
// pair remains a valid double description after every row.
//
// The two sub-cases of the inner loop — a line/equality of the
// destination violating the new row (Case A) versus every line/equality
// already saturating it (Case B) — are implemented as the two unexported
// methods caseA and caseB on State.
package conversion

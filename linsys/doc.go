// Package linsys implements the linear system: an ordered sequence of
// linrow.Row values sharing a width and topology, split into a settled
// prefix and a pending suffix by a first-pending index, with a sorted
// flag over the settled prefix.
//
// Mutating operations follow a staged construction style: validate, then
// mutate, then restore or drop the sorted flag as the operation's effect
// on ordering dictates.
package linsys

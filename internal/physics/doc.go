// Package physics implements the particle sandbox core: elastic
// pairwise collisions, static wall contacts, breakable spring bonds,
// and explicit Euler integration.
//
// One simulation tick is a single call to [Advance], which runs three
// phases in order:
//
//  1. Collision solver: an iterative scan over all particle pairs and
//     all particle/wall pairs, resolving overlapping closing contacts
//     until a full scan resolves nothing or the iteration cap is hit.
//  2. Bond forces: one-sided Hookean impulses on bonded pairs,
//     removing bonds whose required force exceeds the pair strength.
//  3. Integration: pos += vel * dt.
//
// The package keeps no state between calls; the caller owns the
// particle, wall, and bond collections and passes them in every tick.
// Solver convergence is reported through [Report] instead of being
// printed, so callers decide how to surface instability.
package physics

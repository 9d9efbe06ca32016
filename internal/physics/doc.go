// Package physics implements the 2D gravity engine.
//
// A tick is made of three passes over a [Population]:
//
//   - [Interact]: for every ordered pair of live particles, accumulate the
//     gravitational pull on the first, then merge the pair if the discs
//     overlap. Merges are immediate and visible to every later pair.
//   - [Advance]: explicit Euler integration of every survivor, followed by
//     its [Boundary] rule and a force reset.
//   - [Population.Compact]: drop the particles absorbed by merges.
//
// Initial populations come from a [Generator] through [Generate].
//
// # Degenerate distances
//
// The pair distance used by the force formula is clamped to
// [Params.MinSeparation], so coincident bodies never produce NaN or Inf.
package physics

// Package cartesian builds wfc.Topology values whose nodes form a
// D-dimensional grid, optionally periodic per axis.
//
// Each node at coordinate c has up to 2*D neighbors: slot 2*a is the
// negative-direction neighbor along axis a (c[a]-1, wrapping to size[a]-1
// when periodic), slot 2*a+1 is the positive-direction neighbor (c[a]+1,
// wrapping to 0 when periodic). A slot is absent — wfc.NoNeighbor — at the
// boundary of a non-periodic axis. For any slot i the opposite direction is
// i XOR 1; every compatibility mode below relies on this to orient its
// rules canonically.
//
// Four compatibility modes are offered, matching the four grid
// constructors of the original WFC reference implementation:
//
//   - NewFree: no constraint at all; any state may neighbor any state.
//   - NewAxisRules: one predicate per axis, stated in canonical
//     negative-to-positive orientation.
//   - NewAllowedNeighbors: explicit per-state, per-direction allow-lists.
//   - NewEdgeTokens: per-state, per-direction tokens; two states are
//     compatible across a shared edge when their facing tokens match.
//
// Index/Coord conversion is column-major: index(c) = sum_a c[a] * prod_{b<a}
// size[b], with the inverse computed by successive mod/div against
// size[0], size[1], .... Both round-trip for every valid coordinate.
package cartesian

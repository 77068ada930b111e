// Package wfc implements a generic constraint-propagation solver over an
// arbitrary graph of cells, following the Wave Function Collapse algorithm.
//
// Each Node holds a finite set of candidate states. Topology.Collapse
// iteratively forces the most-constrained node to a single state and
// propagates the consequences across the adjacency graph — by breadth-first
// reduction of neighboring candidate sets — until every node holds exactly
// one state (success) or some node's candidate set empties (failure).
//
// # What this package owns
//
//   - Node: a cell's live candidate set plus its adjacency list.
//   - Topology: owns all Nodes, a state→weight map, and a user-supplied
//     symmetric compatibility predicate; exposes Collapse, CollapseNode,
//     IsCollapsed and IsCorrect.
//   - A deterministic RNG seam: Collapse takes an optional seed and drives
//     every random choice (minimum-entropy tie-break, weighted state
//     sampling) through a single math/rand source.
//
// # What it does not own
//
// Building a Topology's adjacency is left to callers; the cartesian
// subpackage supplies one concrete family of builders (D-dimensional grids).
// This package never does I/O, never logs, and never retries on failure —
// a failed Collapse leaves the Topology in an unspecified state; callers
// wanting retry semantics should Clone before calling Collapse and retry
// the clone with a different seed.
//
// # Concurrency
//
// A Topology is not safe for concurrent mutation. Collapse runs to
// completion synchronously on the calling goroutine with no cancellation
// points; callers wanting a deadline should run it on a worker goroutine and
// abandon the Topology (and its clone, if any) on timeout.
package wfc

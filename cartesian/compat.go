package cartesian

import "github.com/charlotte000/wavefunctioncollapse"

// findDirection locates the adjacency slot i of a such that a.Adjacent[i]
// points at b and b.Adjacent[i^1] points back at a — the mutual-identity
// check the original library uses to orient a compatibility rule, ported
// directly from CartesianTopology.h's createCartRules/createCartAdjacent/
// createCartTokens. ok is false if a and b are not actually adjacent (can
// happen if a caller hand-wires adjacency inconsistently).
func findDirection[S comparable](a, b *wfc.Node[S]) (int, bool) {
	for i, idx := range a.Adjacent {
		if idx != b.Index {
			continue
		}
		j := i ^ 1
		if j < len(b.Adjacent) && b.Adjacent[j] == a.Index {
			return i, true
		}
	}

	return 0, false
}

// AxisRule is a compatibility predicate stated once per axis, in canonical
// negative-to-positive orientation: rule(left, right) decides whether left
// (the state on the negative side) may sit next to right (the state on the
// positive side) along that axis.
type AxisRule[S comparable] func(left, right S) bool

// NewAxisRules builds a grid whose compatibility is governed by one rule
// per axis. For a pair (a,aState,b,bState) meeting at direction i from a's
// perspective: if i is the positive slot (i&1==1, a negative, b positive),
// rules[i/2](aState,bState) is evaluated; otherwise (a positive, b
// negative) rules[i/2](bState,aState) is evaluated — always in
// negative-to-positive order regardless of which side a sits on.
func NewAxisRules[S comparable](size []int, states []S, rules []AxisRule[S], opts ...Option[S]) (*Topology[S], error) {
	if len(rules) != len(size) {
		return nil, ErrRuleCountMismatch
	}

	g, err := newGrid(size, states, newConfig(opts))
	if err != nil {
		return nil, err
	}

	g.Compatible = func(a *wfc.Node[S], aState S, b *wfc.Node[S], bState S) bool {
		i, ok := findDirection(a, b)
		if !ok {
			return false
		}
		axis := i / 2
		if i&1 == 1 {
			return rules[axis](aState, bState)
		}

		return rules[axis](bState, aState)
	}

	return g, nil
}

// NewAllowedNeighbors builds a grid whose compatibility is governed by
// explicit per-state, per-direction allow-lists: allowed[s][i] lists the
// states permitted in direction i from a node holding s. Each entry of
// allowed must have length 2*len(size) (one slot per direction); a missing
// key is treated as "nothing allowed in any direction" for that state.
func NewAllowedNeighbors[S comparable](size []int, states []S, allowed map[S][][]S, opts ...Option[S]) (*Topology[S], error) {
	for _, dirs := range allowed {
		if len(dirs) != len(size)*2 {
			return nil, ErrDirectionCountMismatch
		}
	}

	g, err := newGrid(size, states, newConfig(opts))
	if err != nil {
		return nil, err
	}

	contains := func(list []S, target S) bool {
		for _, s := range list {
			if s == target {
				return true
			}
		}

		return false
	}

	g.Compatible = func(a *wfc.Node[S], aState S, b *wfc.Node[S], bState S) bool {
		i, ok := findDirection(a, b)
		if !ok {
			return false
		}
		j := i ^ 1

		aDirs, ok := allowed[aState]
		if !ok || i >= len(aDirs) {
			return false
		}
		bDirs, ok := allowed[bState]
		if !ok || j >= len(bDirs) {
			return false
		}

		return contains(aDirs[i], bState) && contains(bDirs[j], aState)
	}

	return g, nil
}

// NewEdgeTokens builds a grid whose compatibility is governed by per-state,
// per-direction edge-token sets: two states are compatible across a shared
// edge when the token sets they each present to the other intersect — i.e.
// at least one token appears on both sides. tokens[s] must have length
// 2*len(size), one token list per direction; a missing key is treated as
// "no tokens in any direction" for that state.
func NewEdgeTokens[S comparable, T comparable](size []int, states []S, tokens map[S][][]T, opts ...Option[S]) (*Topology[S], error) {
	for _, dirs := range tokens {
		if len(dirs) != len(size)*2 {
			return nil, ErrDirectionCountMismatch
		}
	}

	g, err := newGrid(size, states, newConfig(opts))
	if err != nil {
		return nil, err
	}

	intersects := func(a, b []T) bool {
		for _, ta := range a {
			for _, tb := range b {
				if ta == tb {
					return true
				}
			}
		}

		return false
	}

	g.Compatible = func(a *wfc.Node[S], aState S, b *wfc.Node[S], bState S) bool {
		i, ok := findDirection(a, b)
		if !ok {
			return false
		}
		j := i ^ 1

		aDirs, ok := tokens[aState]
		if !ok || i >= len(aDirs) {
			return false
		}
		bDirs, ok := tokens[bState]
		if !ok || j >= len(bDirs) {
			return false
		}

		return intersects(aDirs[i], bDirs[j])
	}

	return g, nil
}

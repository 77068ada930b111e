package wfc

import (
	"fmt"
	"math/rand"
	"time"
)

// CompatibilityFunc decides whether node a holding aState may simultaneously
// be adjacent to node b holding bState. The caller-supplied implementation
// MUST be symmetric under the swap (a,aState) <-> (b,bState): the engine
// relies on this contract but does not enforce it.
type CompatibilityFunc[S comparable] func(a *Node[S], aState S, b *Node[S], bState S) bool

// Topology owns every Node, the per-state weight table used for random
// sampling, and the compatibility predicate defining the constraint system.
//
// Nodes is stable-addressed: once a Topology is built, its Nodes slice must
// not be re-sliced or appended to, since Node.Adjacent indices and every
// &t.Nodes[i] pointer handed out by GetNode-style accessors assume a fixed
// backing array.
//
// Weights maps a state to its sampling weight; a state absent from Weights
// defaults to weight 1. A weight of 0 excludes the state from sampling
// without removing it from any node's States.
type Topology[S comparable] struct {
	Nodes      []Node[S]
	Weights    map[S]float64
	Compatible CompatibilityFunc[S]
}

// NewTopology wraps a pre-built, index-complete slice of Nodes into a
// Topology with an empty weight table and an always-true compatibility
// predicate (callers almost always replace Compatible before collapsing
// anything interesting). Nodes[i].Index is expected to already equal i —
// callers building adjacency by hand are responsible for that invariant.
func NewTopology[S comparable](nodes []Node[S]) *Topology[S] {
	return &Topology[S]{
		Nodes:   nodes,
		Weights: make(map[S]float64),
		Compatible: func(*Node[S], S, *Node[S], S) bool {
			return true
		},
	}
}

// Collapse drives the topology to a fully collapsed state: repeatedly
// picking the least-entropy node, sampling a weighted state for it, forcing
// it, and propagating the consequences — until every node is singleton.
//
// seed, if given, seeds the deterministic RNG driving every random choice;
// the same Topology collapsed twice with the same seed produces identical
// final states (P6). With no seed, the current wall-clock second is used,
// matching the original library's time(NULL) default.
//
// Collapse returns ErrNoValidStates on contradiction; it never returns
// ErrInvalidForcedState, since every sampled state is drawn from the node's
// own candidate set. On error the Topology is left in
// an unspecified intermediate state; callers wanting retry semantics should
// Clone before calling Collapse.
func (t *Topology[S]) Collapse(seed ...int64) error {
	s := time.Now().Unix()
	if len(seed) > 0 {
		s = seed[0]
	}
	rng := rand.New(rand.NewSource(s))

	for !t.IsCollapsed() {
		n, err := t.minEntropyNode(rng)
		if err != nil {
			return err
		}
		state, err := t.sampleState(n, rng)
		if err != nil {
			return err
		}
		if err := t.CollapseNode(n, state); err != nil {
			return err
		}
	}

	return nil
}

// CollapseNode forces node n to hold exactly state, then propagates the
// consequences across n's neighbors.
//
// state must be a current member of n.States; otherwise CollapseNode
// returns ErrInvalidForcedState and does not mutate n or any other node
// (P3). n must belong to this Topology — passing a node from a different
// Topology (or a stale pointer from before a Clone) is a programmer error
// with unspecified results.
func (t *Topology[S]) CollapseNode(n *Node[S], state S) error {
	found := false
	for _, s := range n.States {
		if s == state {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: node %d, state %v", ErrInvalidForcedState, n.Index, state)
	}

	n.States = []S{state}

	return t.propagate(n)
}

// IsCorrect reports whether every node holds exactly one state, and every
// present neighbor of every node is itself singleton and compatible with
// it. Unlike IsCollapsed, this re-checks the constraint system; it is the
// definition of "successfully solved" (P1).
func (t *Topology[S]) IsCorrect() bool {
	for i := range t.Nodes {
		a := &t.Nodes[i]
		if len(a.States) != 1 {
			return false
		}
		for _, slot := range a.Adjacent {
			if slot == NoNeighbor {
				continue
			}
			b := &t.Nodes[slot]
			if len(b.States) != 1 {
				return false
			}
			if !t.Compatible(a, a.States[0], b, b.States[0]) {
				return false
			}
		}
	}

	return true
}

// IsCollapsed reports whether every node holds exactly one state. It does
// not re-check compatibility, so a Topology built with singleton nodes that
// are already incompatible reports collapsed without being correct.
func (t *Topology[S]) IsCollapsed() bool {
	for i := range t.Nodes {
		if len(t.Nodes[i].States) != 1 {
			return false
		}
	}

	return true
}

// Clone returns a self-contained deep copy: independent Nodes (fresh States
// and Adjacent slices, same Index values) and an independent Weights map.
// Compatible is copied by reference, since a well-behaved predicate closes
// only over state-keyed tables, never over the Topology itself — collapsing
// the clone never mutates the original (P7).
func (t *Topology[S]) Clone() *Topology[S] {
	nodes := make([]Node[S], len(t.Nodes))
	for i := range t.Nodes {
		nodes[i] = t.Nodes[i].clone()
	}

	weights := make(map[S]float64, len(t.Weights))
	for s, w := range t.Weights {
		weights[s] = w
	}

	return &Topology[S]{
		Nodes:      nodes,
		Weights:    weights,
		Compatible: t.Compatible,
	}
}

// neighborAt resolves an adjacency index (a value drawn from some node's
// Adjacent slice) to its target Node, or nil if the index marks an absent
// slot.
func (t *Topology[S]) neighborAt(idx int) *Node[S] {
	if idx == NoNeighbor {
		return nil
	}

	return &t.Nodes[idx]
}

package wfc

import "math/rand"

// minEntropyNode returns a uniformly random node among those with the
// smallest candidate-set size that is still >= 2. rng is advanced exactly
// once (a single Intn draw over the tied set).
//
// minEntropyNode must only be called when IsCollapsed is false — Collapse
// guarantees this, so at least one node with >= 2 candidates always
// exists and the result is never ambiguous.
func (t *Topology[S]) minEntropyNode(rng *rand.Rand) (*Node[S], error) {
	min := -1
	for i := range t.Nodes {
		l := len(t.Nodes[i].States)
		if l >= 2 && (min == -1 || l < min) {
			min = l
		}
	}

	candidates := make([]*Node[S], 0, 1)
	for i := range t.Nodes {
		if len(t.Nodes[i].States) == min {
			candidates = append(candidates, &t.Nodes[i])
		}
	}

	return candidates[rng.Intn(len(candidates))], nil
}

package wfc

// propagate runs a breadth-first reduction starting from seed: every
// present, not-yet-visited neighbor has reduceStates applied; if that
// strictly shrinks its candidate set, it is enqueued and marked visited.
// Re-enqueue is prevented by the visited set, so a node is processed at
// most once per propagate call — neighbors are iterated in the order they
// appear in the current node's Adjacent slice, and the queue is strict
// FIFO, so propagation order is fully deterministic for a given topology.
//
// propagate terminates after at most len(t.Nodes) enqueues, since each
// enqueue requires a strict shrink and candidate-set sizes are bounded
// below by 1.
func (t *Topology[S]) propagate(seed *Node[S]) error {
	queue := []*Node[S]{seed}
	visited := make(map[int]bool, len(t.Nodes))
	visited[seed.Index] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, idx := range current.Adjacent {
			nb := t.neighborAt(idx)
			if nb == nil || visited[nb.Index] {
				continue
			}

			changed, err := t.reduceStates(nb)
			if err != nil {
				return err
			}
			if changed {
				visited[nb.Index] = true
				queue = append(queue, nb)
			}
		}
	}

	return nil
}

// reduceStates rebuilds n.States as the stable filter of its current
// members by isPlaceable, and reports whether the length changed. An empty
// result is a contradiction: ErrNoValidStates.
func (t *Topology[S]) reduceStates(n *Node[S]) (bool, error) {
	filtered := make([]S, 0, len(n.States))
	for _, s := range n.States {
		if t.isPlaceable(n, s) {
			filtered = append(filtered, s)
		}
	}

	changed := len(filtered) != len(n.States)
	n.States = filtered
	if len(filtered) == 0 {
		return changed, ErrNoValidStates
	}

	return changed, nil
}

// isPlaceable reports whether, for every present neighbor of n, some
// candidate state of that neighbor is compatible with n holding s —
// universal over neighbors, existential over each neighbor's candidates.
func (t *Topology[S]) isPlaceable(n *Node[S], s S) bool {
	for _, idx := range n.Adjacent {
		m := t.neighborAt(idx)
		if m == nil {
			continue
		}

		ok := false
		for _, ms := range m.States {
			if t.Compatible(n, s, m, ms) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	return true
}

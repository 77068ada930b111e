package cartesian

import "github.com/charlotte000/wavefunctioncollapse"

// newGrid allocates the N = prod(size) nodes of a D-dimensional grid in
// column-major order and wires up each node's 2*D adjacency slots per
// doc.go's convention. It does not set Compatible — callers install the
// mode-specific predicate afterward.
func newGrid[S comparable](size []int, states []S, cfg config[S]) (*Topology[S], error) {
	if len(size) == 0 {
		return nil, ErrEmptySize
	}
	for _, s := range size {
		if s <= 0 {
			return nil, ErrInvalidSize
		}
	}
	if len(states) == 0 {
		return nil, ErrNoStates
	}

	periods := cfg.periods
	if periods == nil {
		periods = make([]bool, len(size))
	} else if len(periods) != len(size) {
		return nil, ErrPeriodsMismatch
	}

	dim := len(size)
	total := 1
	for _, s := range size {
		total *= s
	}

	g := &Topology[S]{
		Topology: wfc.NewTopology(make([]wfc.Node[S], total)),
		Size:     append([]int(nil), size...),
	}
	for s, w := range cfg.weights {
		g.Weights[s] = w
	}

	for i := 0; i < total; i++ {
		coord := g.Coord(i)

		st := make([]S, len(states))
		copy(st, states)

		adjacent := make([]int, dim*2)
		for a := 0; a < dim; a++ {
			negCoord := append([]int(nil), coord...)
			posCoord := append([]int(nil), coord...)

			atLowerBound := coord[a] == 0
			if atLowerBound {
				negCoord[a] = size[a] - 1
			} else {
				negCoord[a] = coord[a] - 1
			}

			atUpperBound := coord[a] == size[a]-1
			if atUpperBound {
				posCoord[a] = 0
			} else {
				posCoord[a] = coord[a] + 1
			}

			if atLowerBound && !periods[a] {
				adjacent[2*a] = wfc.NoNeighbor
			} else {
				adjacent[2*a] = g.Index(negCoord)
			}

			if atUpperBound && !periods[a] {
				adjacent[2*a+1] = wfc.NoNeighbor
			} else {
				adjacent[2*a+1] = g.Index(posCoord)
			}
		}

		g.Nodes[i] = wfc.Node[S]{Index: i, States: st, Adjacent: adjacent}
	}

	return g, nil
}

// NewFree builds an unconstrained grid topology: every state is compatible
// with every neighboring state. size gives the axis lengths; states is the
// candidate set every node starts with.
func NewFree[S comparable](size []int, states []S, opts ...Option[S]) (*Topology[S], error) {
	g, err := newGrid(size, states, newConfig(opts))
	if err != nil {
		return nil, err
	}

	g.Compatible = func(*wfc.Node[S], S, *wfc.Node[S], S) bool {
		return true
	}

	return g, nil
}

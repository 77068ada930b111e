package cartesian

import "github.com/charlotte000/wavefunctioncollapse"

// Topology extends wfc.Topology with grid shape and coordinate-indexed
// access. Size[a] is the length of axis a; len(Size) is the grid's
// dimension D. Every node carries 2*D adjacency slots in the order
// described in doc.go.
type Topology[S comparable] struct {
	*wfc.Topology[S]
	Size []int
}

// GetIndex is an alias for Index, matching the external accessor naming
// convention used throughout this package.
func (g *Topology[S]) GetIndex(coord []int) int {
	return g.Index(coord)
}

// GetCoord is an alias for Coord.
func (g *Topology[S]) GetCoord(index int) []int {
	return g.Coord(index)
}

// GetNode returns the node at the given grid coordinate.
func (g *Topology[S]) GetNode(coord []int) *wfc.Node[S] {
	return &g.Nodes[g.Index(coord)]
}

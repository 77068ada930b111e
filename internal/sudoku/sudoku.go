// Package sudoku is a test fixture: a 9x9 grid with hand-built,
// non-Cartesian adjacency (every other cell sharing a row, column, or 3x3
// block) and a "states differ" compatibility predicate. It ports
// Sudoku.h/Sudoku.cpp from the original WFC reference implementation
// directly onto wfc.Topology, bypassing the cartesian package entirely —
// the point of this fixture is to exercise adjacency where only set
// membership matters, not directional slot order. Internal, exercised only
// as a scenario fixture from tests.
package sudoku

import (
	"strconv"
	"strings"

	wfc "github.com/charlotte000/wavefunctioncollapse"
)

const side = 9

// Index maps a (x,y) coordinate to its row-major node index, matching
// Sudoku::getIndex.
func Index(x, y int) int {
	return y*side + x
}

// Coord is the inverse of Index, matching Sudoku::getCoord.
func Coord(index int) (x, y int) {
	return index % side, index / side
}

// New builds the 81-cell Sudoku topology: states 1..9 at every cell,
// adjacency to every other cell in the same row, column, or 3x3 block, and
// compatible = (a != b).
func New() *wfc.Topology[int] {
	states := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	nodes := make([]wfc.Node[int], side*side)

	for i := range nodes {
		x, y := Coord(i)

		st := make([]int, len(states))
		copy(st, states)

		var adjacent []int
		for xx := 0; xx < side; xx++ {
			if xx == x {
				continue
			}
			adjacent = append(adjacent, Index(xx, y))
		}
		for yy := 0; yy < side; yy++ {
			if yy == y {
				continue
			}
			adjacent = append(adjacent, Index(x, yy))
		}
		blockX, blockY := x/3*3, y/3*3
		for xx := blockX; xx < blockX+3; xx++ {
			for yy := blockY; yy < blockY+3; yy++ {
				if xx == x || yy == y {
					continue
				}
				adjacent = append(adjacent, Index(xx, yy))
			}
		}

		nodes[i] = wfc.Node[int]{Index: i, States: st, Adjacent: adjacent}
	}

	t := wfc.NewTopology(nodes)
	t.Compatible = func(_ *wfc.Node[int], a int, _ *wfc.Node[int], b int) bool {
		return a != b
	}

	return t
}

// PreCollapse forces the 3x3 block starting at (x0,y0) to the given 3x3
// digit grid, row-major — used to seed fixed clues (e.g. a puzzle's center
// block) before Collapse runs.
func PreCollapse(t *wfc.Topology[int], x0, y0 int, values [3][3]int) error {
	for yy := 0; yy < 3; yy++ {
		for xx := 0; xx < 3; xx++ {
			idx := Index(x0+xx, y0+yy)
			if err := t.CollapseNode(&t.Nodes[idx], values[yy][xx]); err != nil {
				return err
			}
		}
	}

	return nil
}

// Render prints the grid with Sudoku::print's box layout, using a '.' for
// any cell not yet collapsed.
func Render(t *wfc.Topology[int]) string {
	var sb strings.Builder
	rule := func(left, mid, sep, right string) {
		sb.WriteString(left)
		for b := 0; b < 3; b++ {
			sb.WriteString(strings.Repeat(mid, 3))
			if b < 2 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString(right)
		sb.WriteByte('\n')
	}

	rule("┌", "─", "┬", "┐")
	for y := 0; y < side; y++ {
		if y > 0 && y%3 == 0 {
			rule("├", "─", "┼", "┤")
		}
		for x := 0; x < side; x++ {
			if x%3 == 0 {
				sb.WriteString("│")
			}
			n := &t.Nodes[Index(x, y)]
			if len(n.States) == 1 {
				sb.WriteString(strconv.Itoa(n.States[0]))
			} else {
				sb.WriteString(".")
			}
		}
		sb.WriteString("│\n")
	}
	rule("└", "─", "┴", "┘")

	return sb.String()
}

// Package pipes is a test fixture: a 2D grid of box-drawing glyphs whose
// open/closed edges must match across every adjacent pair. It ports the
// Pipes.h/Pipes.cpp fixture from the original WFC reference implementation,
// keyed by real Unicode box-drawing runes instead of the original's CP437
// byte codes. It is internal, exercised only as a scenario fixture from
// tests.
package pipes

import (
	"strconv"
	"strings"

	"github.com/charlotte000/wavefunctioncollapse/cartesian"
)

// edge records whether a glyph connects (true) or is blank (false) on its
// left, right, up and down side, in that direction order — matching the
// cartesian package's 2a/2a+1 slot convention for a 2-axis grid: axis 0 is
// X (0=left, 1=right), axis 1 is Y (2=up, 3=down).
type edge = [4]bool

// Tokens maps each of the 12 pipe glyphs to its four edge connections.
// Ported verbatim from Pipes.cpp's table (originally char(179) etc.),
// reordered from that table's l,r,u,d layout into this package's
// left,right,up,down == direction 0,1,2,3 order (they already coincide).
var Tokens = map[rune]edge{
	' ': {false, false, false, false},
	'│': {false, false, true, true},
	'┤': {true, false, true, true},
	'┐': {true, false, false, true},
	'└': {false, true, true, false},
	'┴': {true, true, true, false},
	'┬': {true, true, false, true},
	'├': {false, true, true, true},
	'─': {true, true, false, false},
	'┼': {true, true, true, true},
	'┘': {true, false, true, false},
	'┌': {false, true, false, true},
}

// glyphs is Tokens' key set in a fixed, deterministic order — map
// iteration order is not stable in Go, and the grid's states order affects
// entropy tie-breaking, so this explicit ordering replaces the original's
// implicit std::map<char,...> key ordering.
var glyphs = []rune{' ', '│', '┤', '┐', '└', '┴', '┬', '├', '─', '┼', '┘', '┌'}

// tokenTable adapts Tokens (bool per edge) into the token-set form
// cartesian.NewEdgeTokens expects: one single-element token list per
// direction, so two glyphs connect across a shared edge exactly when their
// facing sides carry the same bool.
func tokenTable() map[rune][][]bool {
	out := make(map[rune][][]bool, len(Tokens))
	for g, e := range Tokens {
		out[g] = [][]bool{{e[0]}, {e[1]}, {e[2]}, {e[3]}}
	}

	return out
}

// New builds a w x h non-periodic pipe grid: every state is one of the 12
// glyphs, and compatibility requires matching connects/blank tokens across
// every shared edge, so a solved grid has no dangling connections.
func New(w, h int) (*cartesian.Topology[rune], error) {
	return cartesian.NewEdgeTokens([]int{w, h}, glyphs, tokenTable())
}

// Render prints the grid the way Pipes::print does: a collapsed cell shows
// its glyph, an uncollapsed cell shows its remaining candidate count.
func Render(g *cartesian.Topology[rune], w, h int) string {
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := g.GetNode([]int{x, y})
			if len(n.States) == 1 {
				sb.WriteRune(n.States[0])
			} else {
				sb.WriteString(strconv.Itoa(len(n.States)))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

package cartesian

import (
	"errors"
	"testing"

	wfc "github.com/charlotte000/wavefunctioncollapse"
)

func TestNewFreeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		size   []int
		states []int
		want   error
	}{
		{"empty size", nil, []int{1}, ErrEmptySize},
		{"zero axis", []int{0, 2}, []int{1}, ErrInvalidSize},
		{"negative axis", []int{2, -1}, []int{1}, ErrInvalidSize},
		{"no states", []int{2, 2}, nil, ErrNoStates},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFree(tc.size, tc.states)
			if !errors.Is(err, tc.want) {
				t.Fatalf("NewFree(%v, %v) error = %v; want %v", tc.size, tc.states, err, tc.want)
			}
		})
	}
}

func TestNewFreePeriodsMismatch(t *testing.T) {
	_, err := NewFree([]int{2, 2}, []int{1}, WithPeriods[int]([]bool{true}))
	if !errors.Is(err, ErrPeriodsMismatch) {
		t.Fatalf("error = %v; want ErrPeriodsMismatch", err)
	}
}

func TestPeriodicAxisGivesEveryNodeFullNeighborCount(t *testing.T) {
	g, err := NewFree([]int{4, 4}, []int{1}, WithPeriods[int]([]bool{true, true}))
	if err != nil {
		t.Fatalf("NewFree: %v", err)
	}

	for i := range g.Nodes {
		for _, a := range g.Nodes[i].Adjacent {
			if a == wfc.NoNeighbor {
				t.Fatalf("node %d has a NoNeighbor slot in a fully periodic grid", i)
			}
		}
	}
}

func TestNonPeriodicAxisLeavesBoundaryNeighborsAbsent(t *testing.T) {
	g, err := NewFree([]int{3, 3}, []int{1})
	if err != nil {
		t.Fatalf("NewFree: %v", err)
	}

	corner := g.GetNode([]int{0, 0})
	// direction order: axis0-, axis0+, axis1-, axis1+
	if corner.Adjacent[0] != wfc.NoNeighbor {
		t.Errorf("corner's axis0- neighbor = %d; want NoNeighbor", corner.Adjacent[0])
	}
	if corner.Adjacent[2] != wfc.NoNeighbor {
		t.Errorf("corner's axis1- neighbor = %d; want NoNeighbor", corner.Adjacent[2])
	}
	if corner.Adjacent[1] == wfc.NoNeighbor || corner.Adjacent[3] == wfc.NoNeighbor {
		t.Errorf("corner's positive-side neighbors should both be present, got %v", corner.Adjacent)
	}
}

func TestNewAxisRulesRuleCountMismatch(t *testing.T) {
	_, err := NewAxisRules([]int{2, 2}, []int{1, 2}, []AxisRule[int]{func(a, b int) bool { return true }})
	if !errors.Is(err, ErrRuleCountMismatch) {
		t.Fatalf("error = %v; want ErrRuleCountMismatch", err)
	}
}

func TestNewAxisRulesMonotoneAlongAxis(t *testing.T) {
	g, err := NewAxisRules(
		[]int{3, 1},
		[]int{1, 2, 3},
		[]AxisRule[int]{
			func(left, right int) bool { return left <= right },
			func(left, right int) bool { return true },
		},
	)
	if err != nil {
		t.Fatalf("NewAxisRules: %v", err)
	}

	if err := g.Collapse(11); err != nil {
		t.Fatalf("Collapse: %v", err)
	}
	if !g.IsCorrect() {
		t.Fatalf("expected a correct solution")
	}
	for x := 1; x < 3; x++ {
		left := g.GetNode([]int{x - 1, 0}).States[0]
		right := g.GetNode([]int{x, 0}).States[0]
		if left > right {
			t.Errorf("row not monotone at x=%d: %d then %d", x, left, right)
		}
	}
}

func TestNewAllowedNeighborsDirectionCountMismatch(t *testing.T) {
	allowed := map[int][][]int{
		1: {{1}, {1}}, // only 2 entries, need 4 for a 2-axis grid
	}
	_, err := NewAllowedNeighbors([]int{2, 2}, []int{1}, allowed)
	if !errors.Is(err, ErrDirectionCountMismatch) {
		t.Fatalf("error = %v; want ErrDirectionCountMismatch", err)
	}
}

func TestNewAllowedNeighborsRestrictsToListedStates(t *testing.T) {
	// States "A" and "B" may only ever sit next to themselves, in any direction.
	allowed := map[string][][]string{
		"A": {{"A"}, {"A"}, {"A"}, {"A"}},
		"B": {{"B"}, {"B"}, {"B"}, {"B"}},
	}
	g, err := NewAllowedNeighbors([]int{4, 4}, []string{"A", "B"}, allowed)
	if err != nil {
		t.Fatalf("NewAllowedNeighbors: %v", err)
	}

	if err := g.Collapse(2); err != nil {
		t.Fatalf("Collapse: %v", err)
	}
	if !g.IsCorrect() {
		t.Fatalf("expected a correct solution")
	}

	state := g.GetNode([]int{0, 0}).States[0]
	for i := range g.Nodes {
		if g.Nodes[i].States[0] != state {
			t.Fatalf("grid is not uniform: node %d holds %q, node 0 holds %q", i, g.Nodes[i].States[0], state)
		}
	}
}

func TestNewEdgeTokensDirectionCountMismatch(t *testing.T) {
	tokens := map[int][][]bool{
		1: {{true}, {true}}, // only 2, need 4
	}
	_, err := NewEdgeTokens([]int{2, 2}, []int{1}, tokens)
	if !errors.Is(err, ErrDirectionCountMismatch) {
		t.Fatalf("error = %v; want ErrDirectionCountMismatch", err)
	}
}

func TestNewEdgeTokensMatchesOnAnySharedToken(t *testing.T) {
	// "multi" presents both red and blue on every side; "red" and "blue"
	// present only their own color. multi must be placeable next to either.
	tokens := map[string][][]string{
		"multi": {{"red", "blue"}, {"red", "blue"}, {"red", "blue"}, {"red", "blue"}},
		"red":   {{"red"}, {"red"}, {"red"}, {"red"}},
		"blue":  {{"blue"}, {"blue"}, {"blue"}, {"blue"}},
	}
	g, err := NewEdgeTokens([]int{2, 1}, []string{"multi", "red", "blue"}, tokens)
	if err != nil {
		t.Fatalf("NewEdgeTokens: %v", err)
	}

	a, b := g.GetNode([]int{0, 0}), g.GetNode([]int{1, 0})
	if !g.Compatible(a, "multi", b, "red") {
		t.Errorf("multi should be compatible with red via the shared \"red\" token")
	}
	if !g.Compatible(a, "multi", b, "blue") {
		t.Errorf("multi should be compatible with blue via the shared \"blue\" token")
	}
	if g.Compatible(a, "red", b, "blue") {
		t.Errorf("red and blue share no token and should be incompatible")
	}
}

func TestNewEdgeTokensStateAbsentFromMapIsIncompatibleNotPanic(t *testing.T) {
	tokens := map[int][][]bool{
		1: {{true}, {true}, {true}, {true}},
	}
	// state 2 is a valid candidate state but has no entry in tokens.
	g, err := NewEdgeTokens([]int{2, 1}, []int{1, 2}, tokens)
	if err != nil {
		t.Fatalf("NewEdgeTokens: %v", err)
	}

	a, b := g.GetNode([]int{0, 0}), g.GetNode([]int{1, 0})
	if g.Compatible(a, 2, b, 1) {
		t.Errorf("state absent from the token map should be treated as incompatible, not matched")
	}
}

func TestNewAllowedNeighborsStateAbsentFromMapIsIncompatibleNotPanic(t *testing.T) {
	allowed := map[string][][]string{
		"A": {{"A"}, {"A"}, {"A"}, {"A"}},
	}
	// "B" is a valid candidate state but has no entry in allowed.
	g, err := NewAllowedNeighbors([]int{2, 1}, []string{"A", "B"}, allowed)
	if err != nil {
		t.Fatalf("NewAllowedNeighbors: %v", err)
	}

	a, b := g.GetNode([]int{0, 0}), g.GetNode([]int{1, 0})
	if g.Compatible(a, "B", b, "A") {
		t.Errorf("state absent from the allowed map should be treated as incompatible, not matched")
	}
	if g.Compatible(a, "A", b, "B") {
		t.Errorf("state absent from the allowed map on the neighbor side should also be incompatible")
	}
}

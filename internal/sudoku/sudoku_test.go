package sudoku

import (
	"errors"
	"testing"

	wfc "github.com/charlotte000/wavefunctioncollapse"
)

func TestIndexCoordRoundTrip(t *testing.T) {
	for i := 0; i < side*side; i++ {
		x, y := Coord(i)
		if got := Index(x, y); got != i {
			t.Errorf("Index(Coord(%d)) = %d; want %d", i, got, i)
		}
	}
}

func TestPreCollapseSeedsFixedBlock(t *testing.T) {
	t1 := New()
	values := [3][3]int{
		{5, 3, 4},
		{6, 7, 2},
		{1, 9, 8},
	}
	if err := PreCollapse(t1, 0, 0, values); err != nil {
		t.Fatalf("PreCollapse: %v", err)
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			n := &t1.Nodes[Index(x, y)]
			if len(n.States) != 1 || n.States[0] != values[y][x] {
				t.Errorf("cell (%d,%d) States = %v; want [%d]", x, y, n.States, values[y][x])
			}
		}
	}
}

func TestPreCollapseDuplicateInBlockIsContradiction(t *testing.T) {
	t1 := New()
	values := [3][3]int{
		{5, 5, 4},
		{6, 7, 2},
		{1, 9, 8},
	}
	err := PreCollapse(t1, 0, 0, values)
	if !errors.Is(err, wfc.ErrNoValidStates) {
		t.Fatalf("PreCollapse error = %v; want ErrNoValidStates", err)
	}
}

func TestSolveFromPartialBoardIsCorrect(t *testing.T) {
	t1 := New()
	values := [3][3]int{
		{5, 3, 4},
		{6, 7, 2},
		{1, 9, 8},
	}
	if err := PreCollapse(t1, 3, 3, values); err != nil {
		t.Fatalf("PreCollapse: %v", err)
	}

	if err := t1.Collapse(3); err != nil {
		t.Fatalf("Collapse: %v", err)
	}
	if !t1.IsCorrect() {
		t.Fatalf("expected a correct sudoku solution")
	}

	for y := 0; y < side; y++ {
		seen := map[int]bool{}
		for x := 0; x < side; x++ {
			v := t1.Nodes[Index(x, y)].States[0]
			if seen[v] {
				t.Errorf("row %d has a repeated value %d", y, v)
			}
			seen[v] = true
		}
	}
}

func TestRenderMarksUncollapsedCells(t *testing.T) {
	t1 := New()
	out := Render(t1)
	if len(out) == 0 {
		t.Fatalf("Render returned empty output")
	}
	found := false
	for _, r := range out {
		if r == '.' {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected uncollapsed cells to render as '.'")
	}
}

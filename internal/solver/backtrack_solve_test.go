package solver

import (
	"context"
	"errors"
	"testing"

	"ninegrid.dev/engine/internal/domain"
)

// A classic, solvable board (0 = empty).
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// patternSolution builds a valid complete solution from the classic
// shift pattern: value = (r*3 + r/3 + c) mod 9 + 1.
func patternSolution() domain.Grid {
	var g domain.Grid
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			g[r][c] = uint8((r*3+r/3+c)%9 + 1)
		}
	}
	return g
}

func TestSolveSample(t *testing.T) {
	s := NewBacktrackingSolver()
	in := sample
	out, st, err := s.Solve(context.Background(), &in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d)", err, st.Nodes)
	}
	if in != sample {
		t.Fatal("Solve mutated the caller's grid")
	}
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if out[r][c] == domain.Empty {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
			if !out.Admits(r, c, out[r][c]) {
				t.Fatalf("invalid value at r=%d c=%d", r, c)
			}
			// givens survive
			if sample[r][c] != domain.Empty && out[r][c] != sample[r][c] {
				t.Fatalf("given overwritten at r=%d c=%d", r, c)
			}
		}
	}
}

func TestSolveDeterministic(t *testing.T) {
	s := NewBacktrackingSolver()
	in := sample
	first, _, err := s.Solve(context.Background(), &in)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		again, _, err := s.Solve(context.Background(), &in)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatal("repeated Solve produced a different grid")
		}
	}
}

func TestSolveCompleteGridUnchanged(t *testing.T) {
	s := NewBacktrackingSolver()
	full := patternSolution()
	out, _, err := s.Solve(context.Background(), &full)
	if err != nil {
		t.Fatalf("Solve on a complete grid failed: %v", err)
	}
	if out != full {
		t.Fatal("complete grid came back changed")
	}
}

func TestSolveUnsatisfiable(t *testing.T) {
	// Two 3s in row 0, otherwise empty.
	var g domain.Grid
	g[0][0] = 3
	g[0][4] = 3
	s := NewBacktrackingSolver()
	if _, _, err := s.Solve(context.Background(), &g); !errors.Is(err, ErrNoSolution) {
		t.Fatalf("expected ErrNoSolution, got %v", err)
	}
}

func TestSolveForcedCell(t *testing.T) {
	// A known solution with only (0,0) blanked: the solver must restore
	// exactly the original value.
	full := patternSolution()
	g := full
	g[0][0] = domain.Empty

	s := NewBacktrackingSolver()
	out, _, err := s.Solve(context.Background(), &g)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if out != full {
		t.Fatalf("expected the original solution back, got %d at (0,0)", out[0][0])
	}
}

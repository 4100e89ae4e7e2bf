package solver

import (
	"context"
	"testing"

	"ninegrid.dev/engine/internal/domain"
)

func TestCountSolutionsComplete(t *testing.T) {
	s := NewBacktrackingSolver()
	full := patternSolution()
	n, _, err := s.CountSolutions(context.Background(), &full, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("complete grid counted %d solutions, want 1", n)
	}
}

func TestCountSolutionsForcedCell(t *testing.T) {
	g := patternSolution()
	g[0][0] = domain.Empty
	s := NewBacktrackingSolver()
	n, _, err := s.CountSolutions(context.Background(), &g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("one-blank solution counted %d completions, want 1", n)
	}
}

func TestCountSolutionsUnsatisfiable(t *testing.T) {
	var g domain.Grid
	g[0][0] = 3
	g[0][4] = 3
	s := NewBacktrackingSolver()
	n, _, err := s.CountSolutions(context.Background(), &g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("contradictory grid counted %d solutions, want 0", n)
	}
}

func TestCountSolutionsCapsAtLimit(t *testing.T) {
	var empty domain.Grid
	s := NewBacktrackingSolver()
	n, _, err := s.CountSolutions(context.Background(), &empty, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("empty grid counted %d, want the cap 2", n)
	}
}

func TestCountSolutionsLeavesInputUntouched(t *testing.T) {
	g := sample
	s := NewBacktrackingSolver()
	if _, _, err := s.CountSolutions(context.Background(), &g, 2); err != nil {
		t.Fatal(err)
	}
	if g != sample {
		t.Fatal("CountSolutions mutated the caller's grid")
	}
}

func TestCountSolutionsRepeatable(t *testing.T) {
	g := patternSolution()
	g[3][3] = domain.Empty
	g[6][6] = domain.Empty
	s := NewBacktrackingSolver()
	first, _, err := s.CountSolutions(context.Background(), &g, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		again, _, err := s.CountSolutions(context.Background(), &g, 2)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("count changed between calls: %d then %d", first, again)
		}
	}
}

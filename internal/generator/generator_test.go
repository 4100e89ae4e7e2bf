package generator

import (
	"context"
	"math/rand"
	"testing"

	"ninegrid.dev/engine/internal/domain"
	"ninegrid.dev/engine/internal/solver"
)

func checkSolution(t *testing.T, g *domain.Grid) {
	t.Helper()
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			v := g[r][c]
			if v < 1 || v > 9 {
				t.Fatalf("cell (%d,%d) holds %d, want 1-9", r, c, v)
			}
			if !g.Admits(r, c, v) {
				t.Fatalf("duplicate %d at (%d,%d)", v, r, c)
			}
		}
	}
	// Each row/col/box holding nine valid, non-duplicate values is a
	// permutation of 1..9 by pigeonhole.
}

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := New(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, st, err := g.Generate(context.Background(), 12345, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			checkSolution(t, &p.Solution)

			// Greedy carving guarantees a floor, never an exact count.
			if givens := p.Givens.Filled(); givens < tc.diff.Clues() {
				t.Fatalf("%s: %d givens, want >= %d", tc.name, givens, tc.diff.Clues())
			}

			// Every given matches the answer key.
			for r := 0; r < domain.Size; r++ {
				for c := 0; c < domain.Size; c++ {
					if v := p.Givens[r][c]; v != domain.Empty && v != p.Solution[r][c] {
						t.Fatalf("given at (%d,%d) disagrees with solution", r, c)
					}
				}
			}

			// The puzzle must have exactly one completion.
			n, _, err := s.CountSolutions(context.Background(), &p.Givens, 2)
			if err != nil {
				t.Fatal(err)
			}
			if n != 1 {
				t.Fatalf("%s: puzzle has %d completions, want 1", tc.name, n)
			}

			// And the deterministic solver must recover the answer key.
			solved, _, err := s.Solve(context.Background(), &p.Givens)
			if err != nil {
				t.Fatalf("solving generated puzzle failed: %v", err)
			}
			if solved != p.Solution {
				t.Fatalf("%s: solve(puzzle) differs from the answer key", tc.name)
			}

			t.Logf("%s: givens=%d nodes=%d dur=%v", tc.name, p.Givens.Filled(), st.Nodes, st.Duration)
		})
	}
}

func TestGenerateSeedReproducible(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := New(s)

	a, _, err := g.Generate(context.Background(), 42, domain.Medium)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := g.Generate(context.Background(), 42, domain.Medium)
	if err != nil {
		t.Fatal(err)
	}
	if a.Givens != b.Givens || a.Solution != b.Solution {
		t.Fatal("equal seeds produced different puzzles")
	}

	c, _, err := g.Generate(context.Background(), 43, domain.Medium)
	if err != nil {
		t.Fatal(err)
	}
	if a.Givens == c.Givens {
		t.Fatal("different seeds produced identical givens")
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := New(solver.NewBacktrackingSolver())
	if _, _, err := g.Generate(ctx, 1, domain.Easy); err == nil {
		t.Fatal("expected an error from a canceled context")
	}
}

func TestFillProducesValidSolution(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		var g domain.Grid
		if !fill(context.Background(), rand.New(rand.NewSource(seed)), &g) {
			t.Fatalf("fill failed for seed %d; an empty grid is always completable", seed)
		}
		checkSolution(t, &g)
	}
}

package generator

import (
	"context"
	"math/rand"
	"time"

	"ninegrid.dev/engine/internal/domain"
	"ninegrid.dev/engine/internal/ports"
)

// CarveGenerator builds puzzles with a unique solution: fill a random full
// board, then greedily blank cells in a shuffled order, keeping each removal
// only if the solver still counts exactly one completion.
type CarveGenerator struct {
	Solver ports.Solver
}

// New wires a generator that uses the given solver for uniqueness checks.
func New(s ports.Solver) *CarveGenerator {
	return &CarveGenerator{Solver: s}
}

// Generate creates a puzzle for seed and difficulty. All randomness comes
// from the seeded RNG, so equal seeds yield equal puzzles.
//
// Carving is a single greedy pass over one shuffled permutation of the 81
// coordinates: a removal that breaks uniqueness is restored and never
// retried, and no alternate ordering is attempted if the pass falls short of
// the removal target. The finished puzzle therefore has at least
// difficulty.Clues() givens, sometimes more. That floor is the intended
// contract, not a shortfall to search harder for.
func (g *CarveGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var solution domain.Grid
	if !fill(ctx, rng, &solution) {
		return nil, ports.Stats{Duration: time.Since(start)}, ctx.Err()
	}

	puzzle := solution
	target := domain.Size*domain.Size - diff.Clues()
	removed := 0
	nodes := 0

	for _, pos := range rng.Perm(domain.Size * domain.Size) {
		if removed >= target {
			break
		}
		r, c := pos/domain.Size, pos%domain.Size
		old := puzzle[r][c]
		puzzle[r][c] = domain.Empty
		n, st, err := g.Solver.CountSolutions(ctx, &puzzle, 2)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if n == 1 {
			removed++
		} else {
			puzzle[r][c] = old
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Givens:     puzzle,
		Solution:   solution,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

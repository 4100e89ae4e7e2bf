package ports

import (
	"context"
	"time"

	"ninegrid.dev/engine/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes boards and counts completions up to a cap.
type Solver interface {
	// Solve returns a full completion of g, leaving g untouched. It fails
	// only when no completion exists or ctx is canceled.
	Solve(ctx context.Context, g *domain.Grid) (domain.Grid, Stats, error)
	// CountSolutions returns the number of distinct completions of g,
	// stopping as soon as the running total reaches limit.
	CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator reports every filled cell violating a row/col/box constraint.
type Validator interface {
	Conflicts(ctx context.Context, g *domain.Grid) ([]domain.CellCoord, Stats, error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}

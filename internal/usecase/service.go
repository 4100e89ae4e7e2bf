package usecase

import (
	"context"
	"errors"

	"ninegrid.dev/engine/internal/domain"
	"ninegrid.dev/engine/internal/ports"
)

// Service is the synchronous engine surface the front-end calls into. Every
// method runs to completion on the caller's goroutine over an explicit grid
// snapshot; callers needing responsiveness move the call onto their own
// worker.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Solve(ctx context.Context, g *domain.Grid) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.CountSolutions(ctx, g, limit)
}

func (u *Service) Conflicts(ctx context.Context, g *domain.Grid) ([]domain.CellCoord, ports.Stats, error) {
	if u.Validator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Validator.Conflicts(ctx, g)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b, max)
}

// PlacementOK reports whether v at (r,c) is consistent with the rest of the
// board. The cell may already hold v or be a hypothetical placement; either
// way the cell itself is excluded from the scan.
func (u *Service) PlacementOK(g *domain.Grid, r, c int, v uint8) bool {
	return g.Admits(r, c, v)
}

// Complete reports whether the play grid matches the solution cell for cell.
func (u *Service) Complete(g, solution *domain.Grid) bool {
	return *g == *solution
}

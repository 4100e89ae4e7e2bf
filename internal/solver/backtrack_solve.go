package solver

import (
	"context"
	"time"

	"ninegrid.dev/engine/internal/domain"
	"ninegrid.dev/engine/internal/ports"
)

// Solve completes g by deterministic backtracking: first empty cell in
// row-major order, candidates tried in ascending order, place and undo on a
// private copy. The caller's grid is never mutated; an already-complete grid
// comes back unchanged.
func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	grid := *g
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := grid.FirstEmpty()
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if grid.CanPlace(r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = domain.Empty
			}
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, st, err
		}
		return domain.Grid{}, st, ErrNoSolution
	}
	return grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

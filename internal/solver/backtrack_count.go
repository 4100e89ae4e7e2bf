package solver

import (
	"context"
	"time"

	"ninegrid.dev/engine/internal/domain"
	"ninegrid.dev/engine/internal/ports"
)

// CountSolutions counts distinct completions of g, returning early once the
// running total reaches limit. Only "one vs. more than one" matters to the
// carver, so limit is 2 there.
//
// Unlike Solve, every branch recurses on its own copy of the grid. Several
// branches are explored for the same cell and their partial states must not
// leak into each other; the grid's value semantics make the copy a plain
// assignment, which is cheaper than getting mutate-and-undo right across
// siblings.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var count func(grid domain.Grid) int
	count = func(grid domain.Grid) int {
		if ctx.Err() != nil {
			return 0
		}
		r, c, ok := grid.FirstEmpty()
		if !ok {
			return 1
		}
		total := 0
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if !grid.CanPlace(r, c, v) {
				continue
			}
			branch := grid
			branch[r][c] = v
			total += count(branch)
			if total >= limit {
				return limit
			}
		}
		return total
	}
	n := count(*g)
	return n, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}

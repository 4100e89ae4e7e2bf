package generator

import (
	"context"
	"math/rand"

	"ninegrid.dev/engine/internal/domain"
)

// fill solves an empty grid into a full valid solution by backtracking in
// row-major order with a shuffled digit order at each cell. The shuffle only
// decides which solution comes out; an empty grid is always completable, so
// fill fails only on cancellation.
func fill(ctx context.Context, rng *rand.Rand, g *domain.Grid) bool {
	var digits [domain.Size]uint8
	for i := range digits {
		digits[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == domain.Size {
			return true
		}
		nr, nc := r, c+1
		if nc == domain.Size {
			nr, nc = r+1, 0
		}
		rng.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
		for _, v := range digits {
			if g.CanPlace(r, c, v) {
				g[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				g[r][c] = domain.Empty
			}
		}
		return false
	}
	return dfs(0, 0)
}

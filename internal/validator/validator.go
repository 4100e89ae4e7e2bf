package validator

import (
	"context"
	"time"

	"ninegrid.dev/engine/internal/domain"
	"ninegrid.dev/engine/internal/ports"
)

// CellValidator reports every filled cell that violates a row, column, or
// box constraint. Both members of a duplicate pair are reported, since the
// front-end highlights all offending cells during editing. The grid may be
// arbitrarily inconsistent or unsolvable; nothing here assumes otherwise.
type CellValidator struct{}

func New() *CellValidator { return &CellValidator{} }

func (v *CellValidator) Conflicts(ctx context.Context, g *domain.Grid) ([]domain.CellCoord, ports.Stats, error) {
	start := time.Now()
	conf := make([]domain.CellCoord, 0, 8)
	scanned := 0
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			val := g[r][c]
			if val == domain.Empty {
				continue
			}
			scanned++
			if !g.Admits(r, c, val) {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return conf, ports.Stats{Nodes: scanned, Duration: time.Since(start)}, nil
}

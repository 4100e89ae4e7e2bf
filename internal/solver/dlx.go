package solver

import (
	"context"
	"time"

	"ninegrid.dev/engine/internal/domain"
	"ninegrid.dev/engine/internal/ports"
)

// DLXSolver implements Algorithm X with dancing links.
// Exact-cover mapping: 324 constraint columns, 729 candidate rows (r,c,v).
// Columns: 0..80    -> cell (r,c) is filled
//          81..161  -> row r holds digit v
//          162..242 -> col c holds digit v
//          243..323 -> box b holds digit v, b = (r/3)*3 + (c/3)
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

const (
	dlxCells = domain.Size * domain.Size // 81
	dlxCols  = 4 * dlxCells              // 324
	dlxRows  = dlxCells * domain.Size    // 729

	colCellBase = 0
	colRowBase  = 81
	colColBase  = 162
	colBoxBase  = 243
)

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxHeader
	candidate             int // 0..728 identifies (r,c,v)
}

type dlxHeader struct {
	dlxNode
	size   int
	active bool // constraint still uncovered
}

type dlxMatrix struct {
	cols      [dlxCols]*dlxHeader
	rowHead   [dlxRows]*dlxNode
	chosen    [dlxCells]*dlxNode
	chosenLen int
	nodes     int
	activeCnt int
}

func newMatrix() *dlxMatrix {
	m := &dlxMatrix{}
	for i := 0; i < dlxCols; i++ {
		h := &dlxHeader{active: true}
		h.up = &h.dlxNode
		h.down = &h.dlxNode
		m.cols[i] = h
	}
	m.activeCnt = dlxCols

	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			for v := 1; v <= domain.Size; v++ {
				row := candidateIndex(r, c, v)
				var first, prev *dlxNode
				for _, colID := range candidateColumns(r, c, v) {
					h := m.cols[colID]
					n := &dlxNode{col: h, candidate: row}
					// vertical insert at the bottom of the column
					n.down = &h.dlxNode
					n.up = h.dlxNode.up
					h.dlxNode.up.down = n
					h.dlxNode.up = n
					h.size++
					// horizontal ring of the 4 nodes in this candidate
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				m.rowHead[row] = first
			}
		}
	}
	return m
}

func candidateIndex(r, c, v int) int {
	return (r*domain.Size+c)*domain.Size + (v - 1)
}

func candidateColumns(r, c, v int) [4]int {
	box := (r/domain.Box)*domain.Box + c/domain.Box
	return [4]int{
		colCellBase + r*domain.Size + c,
		colRowBase + r*domain.Size + (v - 1),
		colColBase + c*domain.Size + (v - 1),
		colBoxBase + box*domain.Size + (v - 1),
	}
}

func decodeCandidate(row int) (r, c int, v uint8) {
	cell := row / domain.Size
	return cell / domain.Size, cell % domain.Size, uint8(row%domain.Size) + 1
}

func (m *dlxMatrix) cover(h *dlxHeader) {
	if h.active {
		h.active = false
		m.activeCnt--
	}
	for i := h.down; i != &h.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (m *dlxMatrix) uncover(h *dlxHeader) {
	for i := h.up; i != &h.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !h.active {
		h.active = true
		m.activeCnt++
	}
}

// chooseColumn picks the active constraint with the fewest candidates.
func (m *dlxMatrix) chooseColumn() *dlxHeader {
	var best *dlxHeader
	for _, h := range m.cols {
		if !h.active {
			continue
		}
		if best == nil || h.size < best.size {
			best = h
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// search explores completions depth-first, stopping once found reaches want.
// Returns true when the search should unwind.
func (m *dlxMatrix) search(ctx context.Context, k, want int, found *int) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	if m.activeCnt == 0 {
		m.chosenLen = k
		(*found)++
		return *found >= want
	}

	h := m.chooseColumn()
	if h == nil || h.size == 0 {
		return false
	}
	m.cover(h)
	for r := h.down; r != &h.dlxNode; r = r.down {
		m.nodes++
		m.chosen[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				m.cover(j.col)
			}
		}
		if m.search(ctx, k+1, want, found) {
			for j := r.left; j != r; j = j.left {
				m.uncover(j.col)
			}
			m.uncover(h)
			return true
		}
		for j := r.left; j != r; j = j.left {
			m.uncover(j.col)
		}
	}
	m.uncover(h)
	return false
}

// placeGiven commits a filled cell by covering its candidate's columns.
// A column that is already covered means the given contradicts an earlier
// one, which makes the grid unsatisfiable.
func (m *dlxMatrix) placeGiven(r, c int, v uint8) bool {
	head := m.rowHead[candidateIndex(r, c, int(v))]
	for j := head; ; j = j.right {
		if !j.col.active {
			return false
		}
		m.cover(j.col)
		if j.right == head {
			break
		}
	}
	return true
}

func (m *dlxMatrix) load(g *domain.Grid) bool {
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if v := g[r][c]; v != domain.Empty {
				if !m.placeGiven(r, c, v) {
					return false
				}
			}
		}
	}
	return true
}

func (s *DLXSolver) Solve(ctx context.Context, g *domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	m := newMatrix()
	if !m.load(g) {
		return domain.Grid{}, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
	}
	found := 0
	_ = m.search(ctx, 0, 1, &found)
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if found < 1 {
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, st, err
		}
		return domain.Grid{}, st, ErrNoSolution
	}
	out := *g
	for i := 0; i < m.chosenLen; i++ {
		r, c, v := decodeCandidate(m.chosen[i].candidate)
		out[r][c] = v
	}
	return out, st, nil
}

func (s *DLXSolver) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	m := newMatrix()
	if !m.load(g) {
		return 0, ports.Stats{Duration: time.Since(start)}, nil
	}
	found := 0
	_ = m.search(ctx, 0, limit, &found)
	if found > limit {
		found = limit
	}
	return found, ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}, ctx.Err()
}

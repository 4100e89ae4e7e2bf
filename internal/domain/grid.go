package domain

// Size is the board edge length; Box is the edge of one subgrid.
const (
	Size = 9
	Box  = 3
)

// Empty marks an unfilled cell. Filled cells hold 1..9.
const Empty uint8 = 0

// Grid is a 9x9 board in row-major order. It is an array type, so plain
// assignment copies the whole board; the bounded solution counter relies on
// that for branch isolation, and equality is the built-in ==.
type Grid [Size][Size]uint8

// CanPlace reports whether v may be placed at the empty cell (r,c): no cell
// in row r, column c, or the containing box may already hold v.
func (g *Grid) CanPlace(r, c int, v uint8) bool {
	for i := 0; i < Size; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/Box)*Box, (c/Box)*Box
	for dr := 0; dr < Box; dr++ {
		for dc := 0; dc < Box; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// Admits reports whether the value v held at (r,c) is consistent with the
// rest of the board. The scan skips (r,c) itself, so a cell never conflicts
// with its own value. Used for live validation of edits.
func (g *Grid) Admits(r, c int, v uint8) bool {
	for i := 0; i < Size; i++ {
		if i != c && g[r][i] == v {
			return false
		}
		if i != r && g[i][c] == v {
			return false
		}
	}
	br, bc := (r/Box)*Box, (c/Box)*Box
	for dr := 0; dr < Box; dr++ {
		for dc := 0; dc < Box; dc++ {
			rr, cc := br+dr, bc+dc
			if (rr != r || cc != c) && g[rr][cc] == v {
				return false
			}
		}
	}
	return true
}

// FirstEmpty returns the first unfilled cell in row-major order.
func (g *Grid) FirstEmpty() (int, int, bool) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == Empty {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Filled counts non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

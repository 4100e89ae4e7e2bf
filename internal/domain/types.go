package domain

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board pairs current values with which cells are fixed givens. It is the
// snapshot handed to the front-end, which seeds its own mutable play grid
// from it; the engine itself never holds one across calls.
type Board struct {
	Values Grid       `json:"board"`
	Fixed  [9][9]bool `json:"fixed,omitempty"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is one generated game: the carved givens plus the answer key.
// Givens is frozen at creation and is the baseline for telling clues apart
// from user-entered values; Solution is the unique completion of Givens.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Givens     Grid       `json:"givens"`
	Solution   Grid       `json:"solution"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// Board returns the front-end snapshot: given cells marked fixed.
func (p *Puzzle) Board() Board {
	b := Board{Values: p.Givens}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.Fixed[r][c] = p.Givens[r][c] != Empty
		}
	}
	return b
}

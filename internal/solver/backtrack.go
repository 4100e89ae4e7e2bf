package solver

import "errors"

// ErrNoSolution reports that a grid has no valid completion.
var ErrNoSolution = errors.New("no solution")

// BacktrackingSolver is a straightforward recursive solver. Solve walks a
// single mutable copy with undo; CountSolutions copies the grid per branch
// (see backtrack_count.go for why the two differ).
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

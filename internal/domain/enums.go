package domain

import "fmt"

// Difficulty labels target puzzle generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// Clues returns the target number of given cells for a difficulty. The
// carver treats this as a floor: a finished puzzle has at least this many
// givens, possibly more when greedy removal runs out of candidates.
func (d Difficulty) Clues() int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return 32
	case Hard:
		return 26
	case Expert:
		return 22
	default:
		return 32
	}
}

// String returns the lowercase tier name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a tier name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return Medium, fmt.Errorf("unknown difficulty: %q", s)
	}
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // singles / sole candidates
	StrategyPairs                       // naked/hidden pairs
	StrategyAdvanced                    // pointing/claiming, triples, etc.
	StrategyXWing                       // advanced fish (placeholder for cap)
)

package domain

import (
	"fmt"
	"strings"
)

// ParseGrid reads an 81-character row-major board. Digits 1-9 are values,
// '.' and '0' are empty; whitespace is ignored so single-line and 9-line
// layouts both parse.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	i := 0
	for _, ch := range s {
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			continue
		case ch == '.' || ch == '0':
			// leave cell empty
		case ch >= '1' && ch <= '9':
			if i < 81 {
				g[i/Size][i%Size] = uint8(ch - '0')
			}
		default:
			return Grid{}, fmt.Errorf("invalid character %q at cell %d", ch, i)
		}
		i++
	}
	if i != 81 {
		return Grid{}, fmt.Errorf("expected 81 cells, got %d", i)
	}
	return g, nil
}

// Compact returns the 81-character row-major form, '.' for empty.
func (g *Grid) Compact() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := g[r][c]; v == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}

// String renders a bordered board for terminal output.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 && r%Box == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				if c%Box == 0 {
					sb.WriteString(" | ")
				} else {
					sb.WriteByte(' ')
				}
			}
			if v := g[r][c]; v == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

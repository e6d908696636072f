package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseDigits reads a digit grid: one row per line, one cell per rune
// '0'..'9'. Carriage returns and blank lines are skipped, so trailing
// newlines and CRLF input are accepted.
//
// Returns ErrBadDigit (with line and column) for any other rune,
// ErrNonRectangular for lines of differing length and ErrEmptyGrid when
// the input holds no rows.
func ParseDigits(r io.Reader) (*CostGrid, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrBadDigit, ch, line, col+1)
			}
			row = append(row, int(ch-'0'))
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read digits: %w", err)
	}

	return NewCostGrid(rows)
}

// ParseDigitLines is ParseDigits over an in-memory slice of lines.
func ParseDigitLines(lines []string) (*CostGrid, error) {
	return ParseDigits(strings.NewReader(strings.Join(lines, "\n")))
}

// String renders the grid back into digit form when every cost is a single
// digit; wider costs are separated by spaces.
func (g *CostGrid) String() string {
	var b strings.Builder
	sep := ""
	if g.maxCost > 9 {
		sep = " "
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				b.WriteString(sep)
			}
			fmt.Fprintf(&b, "%d", g.costs[y*g.width+x])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

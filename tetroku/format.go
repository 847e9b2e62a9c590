package tetroku

import (
	"fmt"
	"strings"
)

// formatGrid renders a rows x columns grid as newline separated lines of '0'
// and '1', one line per row.
func formatGrid(rows, columns int, filled func(x, y int) bool) string {
	var sb strings.Builder
	sb.Grow(rows * (columns + 1))
	for y := range rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range columns {
			if filled(x, y) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

// parseGrid reads rows of '0'/'.' (empty) and '1'/'#' (filled) characters,
// calling set for every filled cell. Every row must have exactly columns
// characters and there must be exactly rows of them.
func parseGrid(lines []string, rows, columns int, set func(x, y int)) error {
	if len(lines) != rows {
		return fmt.Errorf("%w: got %d rows, want %d", ErrMalformedGrid, len(lines), rows)
	}
	for y, line := range lines {
		if len(line) != columns {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(line), columns)
		}
		for x := range columns {
			switch line[x] {
			case '1', '#':
				set(x, y)
			case '0', '.':
			default:
				return fmt.Errorf("%w: row %d: unexpected %q", ErrMalformedGrid, y, line[x])
			}
		}
	}
	return nil
}

// ParseBoard builds a board from BoardSize rows of BoardSize characters each,
// top row first. '1' or '#' marks a filled cell, '0' or '.' an empty one.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	err := parseGrid(rows, int(BoardSize), int(BoardSize), func(x, y int) {
		b.Set(positionUnchecked(Coordinate(x), Coordinate(y)), true)
	})
	if err != nil {
		return Board{}, err
	}
	return b, nil
}

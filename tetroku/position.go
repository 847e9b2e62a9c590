package tetroku

import "iter"

// Position is a single cell of the board, stored as its row-major index.
type Position struct {
	index uint8
}

// NewPosition returns the position at (x, y). ok is false if either coordinate
// lies outside the board.
func NewPosition(x, y Coordinate) (pos Position, ok bool) {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return Position{}, false
	}
	return positionUnchecked(x, y), true
}

// positionUnchecked packs (x, y) without range checks. Callers must have
// proven 0 <= x, y < BoardSize; otherwise the wrong cell is addressed. The
// index is reduced modulo NumPositions so it never leaves the bitmap.
func positionUnchecked(x, y Coordinate) Position {
	index := (int(y)*int(BoardSize) + int(x)) % NumPositions
	if index < 0 {
		index += NumPositions
	}
	return Position{index: uint8(index)}
}

// X returns the column of the position.
func (p Position) X() Coordinate {
	return Coordinate(p.index % uint8(BoardSize))
}

// Y returns the row of the position.
func (p Position) Y() Coordinate {
	return Coordinate(p.index / uint8(BoardSize))
}

// XY returns the position as a Point.
func (p Position) XY() Point {
	return Point{X: p.X(), Y: p.Y()}
}

// Index returns the row-major index of the position, in [0, NumPositions).
func (p Position) Index() int {
	return int(p.index)
}

// AllPositions yields every position on the board in row-major order.
// The sequence always has exactly NumPositions elements.
func AllPositions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for i := range NumPositions {
			if !yield(Position{index: uint8(i)}) {
				return
			}
		}
	}
}

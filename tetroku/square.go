package tetroku

import "iter"

// The stride arithmetic below is only valid for a 9x9 board; these fail to
// compile if BoardSize changes.
const (
	_ = uint(BoardSize - 9)
	_ = uint(9 - BoardSize)
)

const (
	// NumSquares is the number of 3x3 boxes tiling the board.
	NumSquares = 9

	squaresPerRow     = 3
	squareHorizStride = 3
	squareVertStride  = 27
)

// squareOffsets are the index offsets of a box's cells from its top-left.
var squareOffsets = [NumSquares]uint8{0, 1, 2, 9, 10, 11, 18, 19, 20}

// SquareIndex identifies one of the 3x3 boxes, numbered row-major.
type SquareIndex uint8

// TopLeft returns the box's top-left cell.
func (s SquareIndex) TopLeft() Position {
	row := uint8(s) / squaresPerRow * squareVertStride
	col := uint8(s) % squaresPerRow * squareHorizStride
	return Position{index: row + col}
}

// AllWithin returns the nine cells of the box in row-major order.
func (s SquareIndex) AllWithin() [NumSquares]Position {
	topLeft := s.TopLeft().index
	var out [NumSquares]Position
	for i, offset := range squareOffsets {
		out[i] = Position{index: topLeft + offset}
	}
	return out
}

// AllSquares yields every box index in row-major order.
func AllSquares() iter.Seq[SquareIndex] {
	return func(yield func(SquareIndex) bool) {
		for i := range SquareIndex(NumSquares) {
			if !yield(i) {
				return
			}
		}
	}
}

// SquareOf returns the box containing pos.
func SquareOf(pos Position) SquareIndex {
	return SquareIndex(pos.Y()/3*squaresPerRow + pos.X()/3)
}

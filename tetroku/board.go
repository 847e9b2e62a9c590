package tetroku

import "math/bits"

// Board is the occupancy bitmap of the play field, one bit per Position.
// The zero value is an empty board. Boards are plain values: assigning one
// copies it.
type Board struct {
	squares [boardBytes]byte
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// Occupied reports whether the cell at pos is filled.
func (b Board) Occupied(pos Position) bool {
	return b.squares[pos.index/8]&(1<<(pos.index%8)) != 0
}

// Set fills or clears the cell at pos.
func (b *Board) Set(pos Position, value bool) {
	byteIdx, bit := pos.index/8, pos.index%8
	if value {
		b.squares[byteIdx] |= 1 << bit
	} else {
		b.squares[byteIdx] &^= 1 << bit
	}
}

// IsEmpty reports whether no cell is filled.
func (b Board) IsEmpty() bool {
	for _, square := range b.squares {
		if square != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of filled cells.
func (b Board) Count() int {
	n := 0
	for _, square := range b.squares {
		n += bits.OnesCount8(square)
	}
	return n
}

// String renders the board as BoardSize lines of '0' and '1', top row first.
func (b Board) String() string {
	return formatGrid(int(BoardSize), int(BoardSize), func(x, y int) bool {
		return b.Occupied(positionUnchecked(Coordinate(x), Coordinate(y)))
	})
}

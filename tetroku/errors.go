package tetroku

import "errors"

var (
	// ErrOutOfBounds is returned when a cell, or a cell of a translated mino,
	// lies outside the board.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrConflicts is returned when a placement would cover a filled cell.
	ErrConflicts = errors.New("conflicts with occupied cells")
	// ErrMalformedGrid is returned by ParseBoard and ParseMino for bad input.
	ErrMalformedGrid = errors.New("malformed grid")
)

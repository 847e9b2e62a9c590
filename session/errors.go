package session

import "errors"

var (
	// ErrNotPlacing is returned when a placement is requested with no mino
	// selected.
	ErrNotPlacing = errors.New("no mino is being placed")
	// ErrGameOver is returned for moves attempted after the game was lost.
	ErrGameOver = errors.New("game over")
	// ErrEmptySlot is returned when selecting a tray slot with no mino in it.
	ErrEmptySlot = errors.New("tray slot is empty")
	// ErrInvalidSlot is returned for tray slots outside [0, TrayCapacity).
	ErrInvalidSlot = errors.New("invalid tray slot")
)

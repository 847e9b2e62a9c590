package session

import "github.com/plus3/tetroku/tetroku"

// Frame carries the state of the turn being resolved.
type Frame struct {
	Turn     int
	Game     *Game
	Commands *Commands

	// Move is the placement that started the turn.
	Move Move
	// Squares is the area of the placed mino.
	Squares int
	// Cleared lists the units removed this turn.
	Cleared []tetroku.WouldRemove
	// Points is what the turn scored.
	Points int

	dealt bool
	err   error
}

// Move is a request to drop the mino in tray slot Slot with its container
// origin at At.
type Move struct {
	Slot int
	At   tetroku.Point
}

// Abort stops the turn. Remaining systems are skipped and queued commands
// are discarded.
func (f *Frame) Abort(err error) {
	if f.err == nil {
		f.err = err
	}
}

// Err returns the error the turn was aborted with, if any.
func (f *Frame) Err() error {
	return f.err
}

func newFrame(turn int, game *Game, move Move) *Frame {
	return &Frame{
		Turn:     turn,
		Game:     game,
		Commands: newCommands(),
		Move:     move,
	}
}

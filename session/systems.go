package session

import "fmt"

// Points returns the score for a turn that placed a mino of the given area
// and removed units filled units. Every unit is worth 3, and every unit
// beyond the first another 3.
func Points(squares, units int) int {
	return squares + 3*units + 3*max(units-1, 0)
}

// PlaceSystem drops the mino of the turn's move onto the board. It aborts
// the turn, before changing anything, if the move is invalid.
type PlaceSystem struct{}

func (s *PlaceSystem) Execute(frame *Frame) {
	g := frame.Game
	move := frame.Move

	m, err := g.checkSlot(move.Slot)
	if err != nil {
		frame.Abort(err)
		return
	}
	if err := g.board.PlaceAt(m, move.At); err != nil {
		frame.Abort(fmt.Errorf("place slot %d at %v: %w", move.Slot, move.At, err))
		return
	}

	g.inTray[move.Slot] = false
	g.placing = nil
	g.dragging = nil
	frame.Squares = m.NumSquares()

	frame.Commands.Emit(Placed{Turn: frame.Turn, Slot: move.Slot, Mino: m, At: move.At})
}

// ClearSystem removes every filled row, column and box.
type ClearSystem struct{}

func (s *ClearSystem) Execute(frame *Frame) {
	g := frame.Game

	frame.Cleared = g.board.FindFilled()
	if g.board.RemoveFilled() == 0 {
		return
	}

	frame.Commands.Emit(Cleared{Turn: frame.Turn, Units: frame.Cleared})
}

// ScoreSystem adds the turn's points to the score.
type ScoreSystem struct{}

func (s *ScoreSystem) Execute(frame *Frame) {
	g := frame.Game

	frame.Points = Points(frame.Squares, len(frame.Cleared))
	g.score += frame.Points
	g.lastPoints = frame.Points

	frame.Commands.Emit(Scored{Turn: frame.Turn, Points: frame.Points, Total: g.score})
}

// DealSystem refills the tray once every mino in it has been placed.
type DealSystem struct{}

func (s *DealSystem) Execute(frame *Frame) {
	g := frame.Game
	if !g.trayEmpty() {
		return
	}

	g.deal()
	frame.dealt = true

	frame.Commands.Emit(Dealt{Turn: frame.Turn, Tray: g.tray})
}

// LossSystem ends the game when no mino left in the tray fits anywhere.
type LossSystem struct{}

func (s *LossSystem) Execute(frame *Frame) {
	g := frame.Game

	g.updateLost()
	if g.lost {
		frame.Commands.Emit(Lost{Turn: frame.Turn, Score: g.score})
	}
}

// SelectSystem selects the first tray mino that fits somewhere.
type SelectSystem struct{}

func (s *SelectSystem) Execute(frame *Frame) {
	frame.Game.startPlacingNext()
}

package session

import (
	"context"

	"github.com/plus3/tetroku/tetroku"
)

// Autoplayer plays a Game greedily: every turn it takes the placement that
// clears the most units, preferring earlier tray slots and then the first
// position in row-major order.
type Autoplayer struct {
	game *Game
}

// NewAutoplayer returns an autoplayer driving g.
func NewAutoplayer(g *Game) *Autoplayer {
	return &Autoplayer{game: g}
}

// Choose returns the move the autoplayer would make next. ok is false if no
// mino in the tray fits anywhere.
func (a *Autoplayer) Choose() (move Move, ok bool) {
	g := a.game
	board := g.Board()
	best := -1

	for slot := range TrayCapacity {
		m, inTray := g.Mino(slot)
		if !inTray {
			continue
		}
		for at := range board.Placements(m) {
			units, err := board.FindWouldRemove(m, at)
			if err != nil {
				continue
			}
			if len(units) > best {
				best = len(units)
				move = Move{Slot: slot, At: at}
			}
		}
	}
	return move, best >= 0
}

// Step plays one turn.
func (a *Autoplayer) Step() (Outcome, error) {
	if a.game.Lost() {
		return Outcome{}, ErrGameOver
	}
	move, ok := a.Choose()
	if !ok {
		return Outcome{}, ErrGameOver
	}
	return a.game.Play(move)
}

// Play takes turns until the game is lost, maxTurns turns have been played
// (if maxTurns > 0) or ctx is done. It returns the number of turns played.
func (a *Autoplayer) Play(ctx context.Context, maxTurns int) (int, error) {
	played := 0
	for !a.game.Lost() && (maxTurns <= 0 || played < maxTurns) {
		if err := ctx.Err(); err != nil {
			return played, err
		}
		if _, err := a.Step(); err != nil {
			return played, err
		}
		played++
	}
	return played, nil
}

// Hint returns the board cells the autoplayer's next move would fill, for
// hosts that want to suggest a move.
func (a *Autoplayer) Hint() (tetroku.Board, bool) {
	move, ok := a.Choose()
	if !ok {
		return tetroku.Board{}, false
	}
	var hint tetroku.Board
	if err := hint.PlaceAt(a.game.tray[move.Slot], move.At); err != nil {
		return tetroku.Board{}, false
	}
	return hint, true
}

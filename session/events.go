package session

import "github.com/plus3/tetroku/tetroku"

// Event is something a turn did, delivered to listeners once the turn has
// been fully resolved.
type Event interface {
	event()
}

// Placed reports a mino dropped on the board.
type Placed struct {
	Turn int
	Slot int
	Mino tetroku.Mino
	At   tetroku.Point
}

// Cleared reports the units removed after a placement.
type Cleared struct {
	Turn  int
	Units []tetroku.WouldRemove
}

// Scored reports the points earned by a turn and the new total.
type Scored struct {
	Turn   int
	Points int
	Total  int
}

// Dealt reports a fresh tray.
type Dealt struct {
	Turn int
	Tray [TrayCapacity]tetroku.Mino
}

// Lost reports that no mino left in the tray fits on the board.
type Lost struct {
	Turn  int
	Score int
}

func (Placed) event()  {}
func (Cleared) event() {}
func (Scored) event()  {}
func (Dealt) event()   {}
func (Lost) event()    {}

// Listener receives events.
type Listener func(Event)

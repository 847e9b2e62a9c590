package session

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/tetroku/tetroku"
)

// placeability memoizes CanPlaceAnywhere per mino for one board state. The
// tray is asked about repeatedly between moves (loss check, auto-select,
// MinoState) while the board stays the same.
type placeability struct {
	board tetroku.Board
	valid bool
	known *intmap.Map[uint32, bool]
}

func newPlaceability() *placeability {
	return &placeability{known: intmap.New[uint32, bool](TrayCapacity)}
}

func (p *placeability) canPlace(b *tetroku.Board, m tetroku.Mino) bool {
	if !p.valid || p.board != *b {
		p.known.Clear()
		p.board = *b
		p.valid = true
	}

	key := m.Key()
	if fits, ok := p.known.Get(key); ok {
		return fits
	}
	fits := b.CanPlaceAnywhere(m)
	p.known.Put(key, fits)
	return fits
}

func (p *placeability) len() int {
	return p.known.Len()
}

package session

import (
	"math/rand/v2"

	"github.com/plus3/tetroku/tetroku"
)

// Source supplies the minos dealt into the tray.
type Source interface {
	Deal() tetroku.Mino
}

// Dealer draws random minos: a uniformly chosen catalog shape, optionally
// mirrored on each axis, then turned by a uniformly chosen multiple of 90
// degrees.
type Dealer struct {
	rng *rand.Rand
}

// NewDealer returns a dealer whose sequence is fully determined by seed.
func NewDealer(seed uint64) *Dealer {
	return &Dealer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

var turns = [...]tetroku.Transform{
	tetroku.Identity,
	tetroku.RotateCW90,
	tetroku.Rotate180,
	tetroku.RotateCCW90,
}

// Deal returns the next mino.
func (d *Dealer) Deal() tetroku.Mino {
	m := tetroku.Tile(d.rng.IntN(tetroku.NumTiles()))

	if d.rng.IntN(2) == 1 {
		m = m.FlipHorizontal()
	}
	if d.rng.IntN(2) == 1 {
		m = m.FlipVertical()
	}
	return turns[d.rng.IntN(len(turns))].Apply(m)
}

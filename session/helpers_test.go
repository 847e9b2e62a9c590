package session_test

import (
	"testing"

	"github.com/plus3/tetroku/tetroku"
	"github.com/stretchr/testify/require"
)

const (
	tileOneByOne = 3
	tileTwoBar   = 7
	tilePlus     = 15
)

var (
	single = tetroku.Tile(tileOneByOne)
	twoBar = tetroku.Tile(tileTwoBar)
)

// cycle deals its minos in order, starting over at the end.
type cycle struct {
	minos []tetroku.Mino
	next  int
}

func dealing(minos ...tetroku.Mino) *cycle {
	return &cycle{minos: minos}
}

func (c *cycle) Deal() tetroku.Mino {
	m := c.minos[c.next%len(c.minos)]
	c.next++
	return m
}

func parseBoard(t *testing.T, rows ...string) tetroku.Board {
	t.Helper()
	b, err := tetroku.ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

func mustPosition(t *testing.T, x, y tetroku.Coordinate) tetroku.Position {
	t.Helper()
	pos, ok := tetroku.NewPosition(x, y)
	require.True(t, ok)
	return pos
}

// singleAt is the origin that puts the 1x1 tile's cell on (x, y).
func singleAt(x, y tetroku.Coordinate) tetroku.Point {
	return tetroku.Point{X: x - 2, Y: y - 2}
}

// checkerboard has every cell with odd x+y filled, so no two holes touch.
func checkerboard(t *testing.T) tetroku.Board {
	t.Helper()
	var b tetroku.Board
	for pos := range tetroku.AllPositions() {
		b.Set(pos, (pos.X()+pos.Y())%2 == 1)
	}
	return b
}

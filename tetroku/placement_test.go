package tetroku_test

import (
	"testing"

	"github.com/plus3/tetroku/tetroku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// single is the 1x1 tile; its only cell sits at (2, 2) of the container.
var single = tetroku.Tile(tileOneByOne)

// placeSingle fills the board cell (x, y) with the 1x1 tile.
func placeSingle(t *testing.T, b *tetroku.Board, x, y tetroku.Coordinate) {
	t.Helper()
	require.NoError(t, b.PlaceAt(single, tetroku.Point{X: x - 2, Y: y - 2}))
}

func TestPlaceSingleCell(t *testing.T) {
	b := tetroku.NewBoard()
	placeSingle(t, &b, 4, 4)

	target := mustPosition(t, 4, 4)
	assert.True(t, b.Occupied(target))
	for pos := range tetroku.AllPositions() {
		if pos != target {
			assert.False(t, b.Occupied(pos), "%v", pos.XY())
		}
	}
}

func TestPlaceAtUnionsCells(t *testing.T) {
	b := tetroku.NewBoard()
	placeSingle(t, &b, 0, 0)

	plus := tetroku.Tile(tilePlus)
	require.NoError(t, b.PlaceAt(plus, tetroku.Point{X: 2, Y: 2}))

	assert.Equal(t, 6, b.Count())
	for _, p := range []tetroku.Point{{X: 4, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 5}} {
		assert.True(t, b.Occupied(mustPosition(t, p.X, p.Y)), "%v", p)
	}
}

func TestPlaceAtFailureLeavesBoardUntouched(t *testing.T) {
	b, err := tetroku.ParseBoard(
		"100000000",
		"000000000",
		"000000000",
		"000000000",
		"000010000",
		"000000000",
		"000000000",
		"000000000",
		"000000001",
	)
	require.NoError(t, err)

	plus := tetroku.Tile(tilePlus)
	tests := []struct {
		name string
		at   tetroku.Point
		want error
	}{
		{"conflict at centre", tetroku.Point{X: 2, Y: 2}, tetroku.ErrConflicts},
		{"conflict on an arm", tetroku.Point{X: 1, Y: 2}, tetroku.ErrConflicts},
		{"off the left edge", tetroku.Point{X: -2, Y: 3}, tetroku.ErrOutOfBounds},
		{"off the bottom edge", tetroku.Point{X: 3, Y: 6}, tetroku.ErrOutOfBounds},
		{"far away", tetroku.Point{X: 100, Y: -100}, tetroku.ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := b
			err := b.PlaceAt(plus, tt.at)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, b)
		})
	}
}

func TestIsInBounds(t *testing.T) {
	tests := []struct {
		at   tetroku.Point
		want bool
	}{
		{tetroku.Point{X: -2, Y: -2}, true},
		{tetroku.Point{X: -3, Y: -2}, false},
		{tetroku.Point{X: -2, Y: -3}, false},
		{tetroku.Point{X: 6, Y: 6}, true},
		{tetroku.Point{X: 7, Y: 6}, false},
		{tetroku.Point{X: 6, Y: 7}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tetroku.IsInBounds(single, tt.at), "%v", tt.at)
	}

	// Empty container cells may hang off the board.
	bar := tetroku.Tile(tileFiveBar)
	assert.True(t, tetroku.IsInBounds(bar, tetroku.Point{X: 0, Y: -2}))
	assert.True(t, tetroku.IsInBounds(bar, tetroku.Point{X: 4, Y: 6}))
	assert.False(t, tetroku.IsInBounds(bar, tetroku.Point{X: 5, Y: 6}))
}

func TestCanPlaceAnywhereOnEmptyBoard(t *testing.T) {
	b := tetroku.NewBoard()
	for i, m := range tetroku.Catalog() {
		for _, o := range m.Orientations() {
			assert.True(t, b.CanPlaceAnywhere(o), "tile %d\n%v", i, o)
		}
	}
}

func TestCanPlaceAnywhereOnFullBoard(t *testing.T) {
	b := fullBoard()
	assert.False(t, b.CanPlaceAnywhere(single))
	for i, m := range tetroku.Catalog() {
		assert.False(t, b.CanPlaceAnywhere(m), "tile %d", i)
	}
}

func TestCanPlaceAnywhereSingleHole(t *testing.T) {
	b := fullBoard()
	b.Set(mustPosition(t, 8, 0), false)

	assert.True(t, b.CanPlaceAnywhere(single))
	assert.False(t, b.CanPlaceAnywhere(tetroku.Tile(tileTwoBar)))

	b.Set(mustPosition(t, 7, 0), false)
	assert.True(t, b.CanPlaceAnywhere(tetroku.Tile(tileTwoBar)))
	assert.False(t, b.CanPlaceAnywhere(tetroku.Tile(tileTwoBar).RotateCW90()))
}

func TestPlacements(t *testing.T) {
	b := tetroku.NewBoard()

	count := 0
	var first tetroku.Point
	for at := range b.Placements(single) {
		if count == 0 {
			first = at
		}
		count++
	}
	assert.Equal(t, tetroku.NumPositions, count)
	assert.Equal(t, tetroku.Point{X: -2, Y: -2}, first)

	count = 0
	for range b.Placements(tetroku.Tile(tileFiveBar)) {
		count++
	}
	assert.Equal(t, 5*9, count)

	placeSingle(t, &b, 4, 4)
	for at := range b.Placements(single) {
		assert.NotEqual(t, tetroku.Point{X: 2, Y: 2}, at)
	}
}

func TestClampMinoPosition(t *testing.T) {
	bar := tetroku.Tile(tileFiveBar)
	tests := []struct {
		name string
		mino tetroku.Mino
		at   tetroku.Point
		want tetroku.Point
	}{
		{"already on board", bar, tetroku.Point{X: 2, Y: 2}, tetroku.Point{X: 2, Y: 2}},
		{"top left overhang", bar, tetroku.Point{X: -3, Y: -5}, tetroku.Point{X: 0, Y: -2}},
		{"bottom right overhang", bar, tetroku.Point{X: 7, Y: 9}, tetroku.Point{X: 4, Y: 6}},
		{"single far away", single, tetroku.Point{X: 40, Y: -40}, tetroku.Point{X: 6, Y: -2}},
		{"plus at corner", tetroku.Tile(tilePlus), tetroku.Point{X: -1, Y: 6}, tetroku.Point{X: -1, Y: 5}},
		{"single at 125", single, tetroku.Point{X: 125, Y: 0}, tetroku.Point{X: 6, Y: 0}},
		{"single at 126", single, tetroku.Point{X: 126, Y: 0}, tetroku.Point{X: 6, Y: 0}},
		{"single at coordinate limits", single, tetroku.Point{X: 127, Y: -128}, tetroku.Point{X: 6, Y: -2}},
		{"bar at coordinate limits", bar, tetroku.Point{X: -128, Y: 127}, tetroku.Point{X: 0, Y: 6}},
		{"bar right of board", bar, tetroku.Point{X: 127, Y: 2}, tetroku.Point{X: 4, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tetroku.ClampMinoPosition(tt.mino, tt.at)
			assert.Equal(t, tt.want, got)
			assert.True(t, tetroku.IsInBounds(tt.mino, got))
		})
	}
}

func TestFindConflicts(t *testing.T) {
	b := tetroku.NewBoard()
	placeSingle(t, &b, 4, 4)
	placeSingle(t, &b, 4, 3)
	placeSingle(t, &b, 0, 0)

	plus := tetroku.Tile(tilePlus)

	conflicts, err := b.FindConflicts(plus, tetroku.Point{X: 2, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, conflicts.Count())
	assert.True(t, conflicts.Occupied(mustPosition(t, 4, 4)))
	assert.True(t, conflicts.Occupied(mustPosition(t, 4, 3)))

	conflicts, err = b.FindConflicts(plus, tetroku.Point{X: 4, Y: 4})
	require.NoError(t, err)
	assert.True(t, conflicts.IsEmpty())

	_, err = b.FindConflicts(plus, tetroku.Point{X: -2, Y: 0})
	assert.ErrorIs(t, err, tetroku.ErrOutOfBounds)
}

func TestRemoveFilledRow(t *testing.T) {
	b := tetroku.NewBoard()
	placeSingle(t, &b, 4, 4)
	for x := range tetroku.BoardSize {
		placeSingle(t, &b, x, 0)
	}

	assert.Equal(t, 1, b.RemoveFilled())
	for x := range tetroku.BoardSize {
		assert.False(t, b.Occupied(mustPosition(t, x, 0)))
	}
	assert.Equal(t, 1, b.Count())
	assert.True(t, b.Occupied(mustPosition(t, 4, 4)))

	assert.Equal(t, 0, b.RemoveFilled())
}

func TestFindFilledSquare(t *testing.T) {
	for s := range tetroku.AllSquares() {
		b := tetroku.NewBoard()
		for _, pos := range s.AllWithin() {
			placeSingle(t, &b, pos.X(), pos.Y())
		}

		assert.Equal(t, []tetroku.WouldRemove{tetroku.Square{Index: s}}, b.FindFilled())
	}
}

func TestFindFilledOrder(t *testing.T) {
	b := fullBoard()
	filled := b.FindFilled()
	require.Len(t, filled, 27)

	for i := range 9 {
		assert.Equal(t, tetroku.HorizontalLine{Y: tetroku.Coordinate(i)}, filled[i])
		assert.Equal(t, tetroku.VerticalLine{X: tetroku.Coordinate(i)}, filled[9+i])
		assert.Equal(t, tetroku.Square{Index: tetroku.SquareIndex(i)}, filled[18+i])
	}

	assert.Empty(t, tetroku.NewBoard().FindFilled())
}

func TestRemoveFilledCountsUnitsNotCells(t *testing.T) {
	b := tetroku.NewBoard()
	for i := range tetroku.BoardSize {
		placeSingle(t, &b, i, 0)
		if i > 0 {
			placeSingle(t, &b, 0, i)
		}
	}
	require.Equal(t, 17, b.Count())

	assert.Equal(t, 2, b.RemoveFilled())
	assert.True(t, b.IsEmpty())
}

func TestFindWouldRemove(t *testing.T) {
	b := tetroku.NewBoard()
	for x := range tetroku.Coordinate(8) {
		placeSingle(t, &b, x, 8)
	}
	for y := range tetroku.Coordinate(8) {
		placeSingle(t, &b, 8, y)
	}
	before := b

	got, err := b.FindWouldRemove(single, tetroku.Point{X: 6, Y: 6})
	require.NoError(t, err)
	assert.Equal(t, []tetroku.WouldRemove{
		tetroku.HorizontalLine{Y: 8},
		tetroku.VerticalLine{X: 8},
	}, got)
	assert.Equal(t, before, b)

	got, err = b.FindWouldRemove(single, tetroku.Point{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, before, b)

	_, err = b.FindWouldRemove(single, tetroku.Point{X: 5, Y: 6})
	assert.ErrorIs(t, err, tetroku.ErrConflicts)
	assert.Equal(t, before, b)

	_, err = b.FindWouldRemove(single, tetroku.Point{X: 7, Y: 0})
	assert.ErrorIs(t, err, tetroku.ErrOutOfBounds)
	assert.Equal(t, before, b)
}

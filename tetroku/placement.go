package tetroku

import "iter"

// minoPositions yields the board position of every filled cell of m when
// the origin of m's container sits at at. A cell that falls off the board is
// yielded with ok == false.
func minoPositions(m Mino, at Point) iter.Seq2[Position, bool] {
	return func(yield func(Position, bool) bool) {
		for cell := range m.Cells() {
			p := at.Add(cell)
			pos, ok := NewPosition(p.X, p.Y)
			if !yield(pos, ok) {
				return
			}
		}
	}
}

// IsInBounds reports whether every filled cell of m lands on the board when
// placed at at.
func IsInBounds(m Mino, at Point) bool {
	for _, ok := range minoPositions(m, at) {
		if !ok {
			return false
		}
	}
	return true
}

// fits reports whether m placed at at is on the board and covers no filled
// cell.
func (b Board) fits(m Mino, at Point) bool {
	for pos, ok := range minoPositions(m, at) {
		if !ok || b.Occupied(pos) {
			return false
		}
	}
	return true
}

// placementRange returns the smallest and largest placement origins that keep
// m's bounding box on the board.
func placementRange(m Mino) (lo, hi Point) {
	minP, maxP := m.MinPoint(), m.MaxPoint()
	lo = minP.Neg()
	hi = Point{X: BoardSize - 1 - maxP.X, Y: BoardSize - 1 - maxP.Y}
	return lo, hi
}

// Placements yields every origin at which m can be placed without conflicts,
// scanning row-major.
func (b Board) Placements(m Mino) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		lo, hi := placementRange(m)
		for y := lo.Y; y <= hi.Y; y++ {
			for x := lo.X; x <= hi.X; x++ {
				at := Point{X: x, Y: y}
				if b.fits(m, at) && !yield(at) {
					return
				}
			}
		}
	}
}

// CanPlaceAnywhere reports whether m fits somewhere on the board.
func (b Board) CanPlaceAnywhere(m Mino) bool {
	for range b.Placements(m) {
		return true
	}
	return false
}

// ClampMinoPosition shifts at along each axis by the least amount that brings
// m's bounding box onto the board. Occupancy is ignored. Any at is accepted,
// however far off the board.
func ClampMinoPosition(m Mino, at Point) Point {
	minP, maxP := m.MinPoint(), m.MaxPoint()
	clamp := func(pos, lo, hi Coordinate) Coordinate {
		// int, since pos+hi overflows a Coordinate near its limits.
		p := int(pos)
		first, last := p+int(lo), p+int(hi)
		switch {
		case first < 0:
			return Coordinate(-int(lo))
		case last >= int(BoardSize):
			return Coordinate(int(BoardSize) - 1 - int(hi))
		default:
			return pos
		}
	}
	return Point{
		X: clamp(at.X, minP.X, maxP.X),
		Y: clamp(at.Y, minP.Y, maxP.Y),
	}
}

// FindConflicts returns a board marking the cells m would cover at at that
// are already filled. It returns ErrOutOfBounds if any cell of m falls off
// the board.
func (b Board) FindConflicts(m Mino, at Point) (Board, error) {
	var conflicts Board
	for pos, ok := range minoPositions(m, at) {
		if !ok {
			return Board{}, ErrOutOfBounds
		}
		if b.Occupied(pos) {
			conflicts.Set(pos, true)
		}
	}
	return conflicts, nil
}

// PlaceAt fills the cells of m placed at at. It returns ErrOutOfBounds or
// ErrConflicts without touching the board if the placement is invalid.
func (b *Board) PlaceAt(m Mino, at Point) error {
	scratch := *b
	for pos, ok := range minoPositions(m, at) {
		if !ok {
			return ErrOutOfBounds
		}
		if b.Occupied(pos) {
			return ErrConflicts
		}
		scratch.Set(pos, true)
	}
	*b = scratch
	return nil
}

// FindWouldRemove returns the units that would be filled after placing m at
// at. The board is not modified.
func (b Board) FindWouldRemove(m Mino, at Point) ([]WouldRemove, error) {
	after := b
	if err := after.PlaceAt(m, at); err != nil {
		return nil, err
	}
	return after.FindFilled(), nil
}

func (b Board) rowFilled(y Coordinate) bool {
	for x := range BoardSize {
		if !b.Occupied(positionUnchecked(x, y)) {
			return false
		}
	}
	return true
}

func (b Board) columnFilled(x Coordinate) bool {
	for y := range BoardSize {
		if !b.Occupied(positionUnchecked(x, y)) {
			return false
		}
	}
	return true
}

func (b Board) squareFilled(s SquareIndex) bool {
	for _, pos := range s.AllWithin() {
		if !b.Occupied(pos) {
			return false
		}
	}
	return true
}

// FindFilled returns every completely filled unit: rows top to bottom, then
// columns left to right, then boxes in row-major order. A cell in several
// filled units is reported once per unit.
func (b Board) FindFilled() []WouldRemove {
	var filled []WouldRemove
	for y := range BoardSize {
		if b.rowFilled(y) {
			filled = append(filled, HorizontalLine{Y: y})
		}
	}
	for x := range BoardSize {
		if b.columnFilled(x) {
			filled = append(filled, VerticalLine{X: x})
		}
	}
	for s := range AllSquares() {
		if b.squareFilled(s) {
			filled = append(filled, Square{Index: s})
		}
	}
	return filled
}

// RemoveFilled clears every unit FindFilled reports and returns how many
// units were removed. Units are found against the board before any cell is
// cleared, so overlapping units are all removed.
func (b *Board) RemoveFilled() int {
	scratch := *b
	filled := b.FindFilled()
	for _, unit := range filled {
		for _, pos := range unit.Positions() {
			scratch.Set(pos, false)
		}
	}
	*b = scratch
	return len(filled)
}

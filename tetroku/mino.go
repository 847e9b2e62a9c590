package tetroku

import (
	"iter"
	"math/bits"
)

// Mino is a piece shape drawn in a MinoSize x MinoSize container. It is an
// immutable value: every transformation returns a new Mino.
type Mino struct {
	bits [minoBytes]byte
}

// minoFromFunc builds a Mino by asking filled about every container cell.
func minoFromFunc(filled func(x, y Coordinate) bool) Mino {
	var m Mino
	for y := range MinoSize {
		for x := range MinoSize {
			if filled(x, y) {
				index := int(y)*int(MinoSize) + int(x)
				m.bits[index/8] |= 1 << (index % 8)
			}
		}
	}
	return m
}

// ParseMino builds a Mino from MinoSize rows of MinoSize characters each, top
// row first. '1' or '#' marks a filled cell, '0' or '.' an empty one.
func ParseMino(rows ...string) (Mino, error) {
	var m Mino
	err := parseGrid(rows, int(MinoSize), int(MinoSize), func(x, y int) {
		index := y*int(MinoSize) + x
		m.bits[index/8] |= 1 << (index % 8)
	})
	if err != nil {
		return Mino{}, err
	}
	return m, nil
}

// MustParseMino is like ParseMino but panics on malformed input.
func MustParseMino(rows ...string) Mino {
	m, err := ParseMino(rows...)
	if err != nil {
		panic("tetroku: " + err.Error())
	}
	return m
}

// At reports whether the container cell (x, y) is filled. ok is false if
// (x, y) lies outside the container.
func (m Mino) At(x, y Coordinate) (filled, ok bool) {
	if x < 0 || y < 0 || x >= MinoSize || y >= MinoSize {
		return false, false
	}
	return m.at(x, y), true
}

func (m Mino) at(x, y Coordinate) bool {
	index := int(y)*int(MinoSize) + int(x)
	return m.bits[index/8]&(1<<(index%8)) != 0
}

// NumSquares returns the number of filled cells.
func (m Mino) NumSquares() int {
	n := 0
	for _, b := range m.bits {
		n += bits.OnesCount8(b)
	}
	return n
}

// Key packs the shape's cells into the low MinoSize*MinoSize bits of a
// uint32. Two minos are equal iff their keys are.
func (m Mino) Key() uint32 {
	var key uint32
	for i, b := range m.bits {
		key |= uint32(b) << (8 * i)
	}
	return key
}

const maxCell = MinoSize - 1

// FlipHorizontal mirrors the shape across its vertical axis.
func (m Mino) FlipHorizontal() Mino {
	return minoFromFunc(func(x, y Coordinate) bool { return m.at(maxCell-x, y) })
}

// FlipVertical mirrors the shape across its horizontal axis.
func (m Mino) FlipVertical() Mino {
	return minoFromFunc(func(x, y Coordinate) bool { return m.at(x, maxCell-y) })
}

// RotateCW90 rotates the shape a quarter turn clockwise.
func (m Mino) RotateCW90() Mino {
	return minoFromFunc(func(x, y Coordinate) bool { return m.at(y, maxCell-x) })
}

// Rotate180 rotates the shape a half turn.
func (m Mino) Rotate180() Mino {
	return minoFromFunc(func(x, y Coordinate) bool { return m.at(maxCell-x, maxCell-y) })
}

// RotateCCW90 rotates the shape a quarter turn counterclockwise.
func (m Mino) RotateCCW90() Mino {
	return minoFromFunc(func(x, y Coordinate) bool { return m.at(maxCell-y, x) })
}

// MinPoint returns the top-left corner of the tightest box around the filled
// cells. It panics if the mino has no filled cells.
func (m Mino) MinPoint() Point {
	minX, minY := Coordinate(-1), Coordinate(-1)
	for x := Coordinate(0); x < MinoSize && minX < 0; x++ {
		if m.columnFilled(x) {
			minX = x
		}
	}
	for y := Coordinate(0); y < MinoSize && minY < 0; y++ {
		if m.rowFilled(y) {
			minY = y
		}
	}
	if minX < 0 || minY < 0 {
		panic("tetroku: MinPoint of an empty mino")
	}
	return Point{X: minX, Y: minY}
}

// MaxPoint returns the bottom-right corner of the tightest box around the
// filled cells. It panics if the mino has no filled cells.
func (m Mino) MaxPoint() Point {
	maxX, maxY := Coordinate(-1), Coordinate(-1)
	for x := maxCell; x >= 0 && maxX < 0; x-- {
		if m.columnFilled(x) {
			maxX = x
		}
	}
	for y := maxCell; y >= 0 && maxY < 0; y-- {
		if m.rowFilled(y) {
			maxY = y
		}
	}
	if maxX < 0 || maxY < 0 {
		panic("tetroku: MaxPoint of an empty mino")
	}
	return Point{X: maxX, Y: maxY}
}

func (m Mino) columnFilled(x Coordinate) bool {
	for y := range MinoSize {
		if m.at(x, y) {
			return true
		}
	}
	return false
}

func (m Mino) rowFilled(y Coordinate) bool {
	for x := range MinoSize {
		if m.at(x, y) {
			return true
		}
	}
	return false
}

// Cells yields the container offsets of the filled cells in row-major order.
func (m Mino) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := range MinoSize {
			for x := range MinoSize {
				if m.at(x, y) && !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// String renders the container as MinoSize lines of '0' and '1'.
func (m Mino) String() string {
	return formatGrid(int(MinoSize), int(MinoSize), func(x, y int) bool {
		return m.at(Coordinate(x), Coordinate(y))
	})
}

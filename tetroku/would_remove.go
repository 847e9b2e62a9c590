package tetroku

import "fmt"

// WouldRemove describes one completely filled unit of the board: a row
// (HorizontalLine), a column (VerticalLine) or a 3x3 box (Square).
type WouldRemove interface {
	// Positions returns the cells the unit covers, in row-major order.
	Positions() [BoardSize]Position
	fmt.Stringer

	wouldRemove()
}

// HorizontalLine is the full row Y.
type HorizontalLine struct {
	Y Coordinate
}

// VerticalLine is the full column X.
type VerticalLine struct {
	X Coordinate
}

// Square is the full box Index.
type Square struct {
	Index SquareIndex
}

func (HorizontalLine) wouldRemove() {}
func (VerticalLine) wouldRemove()   {}
func (Square) wouldRemove()         {}

func (h HorizontalLine) Positions() [BoardSize]Position {
	var out [BoardSize]Position
	for x := range BoardSize {
		out[x] = positionUnchecked(x, h.Y)
	}
	return out
}

func (v VerticalLine) Positions() [BoardSize]Position {
	var out [BoardSize]Position
	for y := range BoardSize {
		out[y] = positionUnchecked(v.X, y)
	}
	return out
}

func (s Square) Positions() [BoardSize]Position {
	return s.Index.AllWithin()
}

func (h HorizontalLine) String() string { return fmt.Sprintf("row %d", h.Y) }
func (v VerticalLine) String() string   { return fmt.Sprintf("column %d", v.X) }
func (s Square) String() string         { return fmt.Sprintf("square %d", s.Index) }

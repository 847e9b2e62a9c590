// Package tetroku is the rules engine of a block-placement puzzle: a packed
// occupancy board, piece shapes and their rigid transformations, placement
// validation and detection and removal of filled rows, columns and boxes.
package tetroku

// Coordinate is one axis of a cell address. It is signed so that translations
// can leave the board before being range checked.
type Coordinate = int8

const (
	// BoardSize is the length of an edge of the board.
	BoardSize Coordinate = 9
	// MinoSize is the length of an edge of the container a Mino is drawn in.
	MinoSize Coordinate = 5

	// NumPositions is the number of cells on the board.
	NumPositions = int(BoardSize) * int(BoardSize)
	numMinoCells = int(MinoSize) * int(MinoSize)

	boardBytes = (NumPositions + 7) / 8
	minoBytes  = (numMinoCells + 7) / 8
)

// Point is a pair of coordinates. It addresses a cell inside a Mino's
// container or the board location of a Mino's container origin, and may lie
// outside either.
type Point struct {
	X, Y Coordinate
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Package session plays tetroku without a user interface: it deals minos into
// a tray, moves a placement cursor, resolves turns through a Scheduler of
// systems and keeps the score.
package session

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/plus3/tetroku/tetroku"
)

// TrayCapacity is the number of minos dealt at a time.
const TrayCapacity = 3

// Game is a headless play session: a board, a tray of minos to place and
// the score. A Game is not safe for concurrent use.
type Game struct {
	board  tetroku.Board
	tray   [TrayCapacity]tetroku.Mino
	inTray [TrayCapacity]bool

	placing  *placing
	dragging *dragging

	score      int
	lastPoints int
	lost       bool
	turn       int

	start     tetroku.Board
	dealer    Source
	scheduler *Scheduler
	listeners []Listener
	fits      *placeability
}

// placing is the mino being positioned. At is where the origin of its
// container sits on the board.
type placing struct {
	slot int
	at   tetroku.Point
}

// dragging holds the offset from the pointer to the placing position, so
// the mino does not jump to the pointer when a drag starts. The offset is
// kept in int: pointer and cursor can be far enough apart to overflow a
// Coordinate.
type dragging struct {
	dx, dy int
}

// saturate converts v to a Coordinate, pinning it to the representable
// range. ClampMinoPosition gives the same result for any value that far off
// the board.
func saturate(v int) tetroku.Coordinate {
	return tetroku.Coordinate(min(max(v, math.MinInt8), math.MaxInt8))
}

// Option configures a Game.
type Option func(*Game)

// WithSeed makes the dealt minos a deterministic function of seed.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.dealer = NewDealer(seed)
	}
}

// WithDealer deals minos from src.
func WithDealer(src Source) Option {
	return func(g *Game) {
		g.dealer = src
	}
}

// WithBoard starts the game, and every Reset, from b instead of an empty
// board.
func WithBoard(b tetroku.Board) Option {
	return func(g *Game) {
		g.start = b
	}
}

// WithScheduler resolves turns with s instead of NewTurnScheduler().
func WithScheduler(s *Scheduler) Option {
	return func(g *Game) {
		g.scheduler = s
	}
}

// WithListener subscribes l to turn events.
func WithListener(l Listener) Option {
	return func(g *Game) {
		g.listeners = append(g.listeners, l)
	}
}

// New starts a game: it deals a tray and selects the first mino that fits.
func New(opts ...Option) *Game {
	g := &Game{fits: newPlaceability()}
	for _, opt := range opts {
		opt(g)
	}
	if g.dealer == nil {
		g.dealer = NewDealer(rand.Uint64())
	}
	if g.scheduler == nil {
		g.scheduler = NewTurnScheduler()
	}
	for _, l := range g.listeners {
		g.scheduler.Subscribe(l)
	}
	g.Reset()
	return g
}

// Reset discards the current game and starts over with a fresh tray.
func (g *Game) Reset() {
	g.board = g.start
	g.inTray = [TrayCapacity]bool{}
	g.placing = nil
	g.dragging = nil
	g.score = 0
	g.lastPoints = 0
	g.lost = false
	g.turn = 0

	g.deal()
	g.updateLost()
	g.startPlacingNext()
}

func (g *Game) deal() {
	for i := range g.tray {
		g.tray[i] = g.dealer.Deal()
		g.inTray[i] = true
	}
}

func (g *Game) trayEmpty() bool {
	for _, ok := range g.inTray {
		if ok {
			return false
		}
	}
	return true
}

func (g *Game) updateLost() {
	g.lost = true
	for i, ok := range g.inTray {
		if ok && g.fits.canPlace(&g.board, g.tray[i]) {
			g.lost = false
			return
		}
	}
}

func (g *Game) startPlacingNext() {
	for i, ok := range g.inTray {
		if ok && g.fits.canPlace(&g.board, g.tray[i]) {
			g.placing = &placing{slot: i, at: g.tray[i].MinPoint().Neg()}
			return
		}
	}
}

// Mino returns the mino in tray slot i. ok is false if the slot is empty or
// out of range.
func (g *Game) Mino(i int) (m tetroku.Mino, ok bool) {
	if i < 0 || i >= TrayCapacity || !g.inTray[i] {
		return tetroku.Mino{}, false
	}
	return g.tray[i], true
}

func (g *Game) checkSlot(i int) (tetroku.Mino, error) {
	if i < 0 || i >= TrayCapacity {
		return tetroku.Mino{}, fmt.Errorf("%w: %d", ErrInvalidSlot, i)
	}
	if !g.inTray[i] {
		return tetroku.Mino{}, fmt.Errorf("%w: %d", ErrEmptySlot, i)
	}
	return g.tray[i], nil
}

// StartPlacing selects tray slot i. The mino starts with its filled cells
// against the board's top-left corner.
func (g *Game) StartPlacing(i int) error {
	m, err := g.checkSlot(i)
	if err != nil {
		return err
	}
	g.placing = &placing{slot: i, at: m.MinPoint().Neg()}
	g.dragging = nil
	return nil
}

// Placing returns the mino being positioned and its container origin.
func (g *Game) Placing() (slot int, at tetroku.Point, ok bool) {
	if g.placing == nil {
		return 0, tetroku.Point{}, false
	}
	return g.placing.slot, g.placing.at, true
}

// MovePlacing shifts the mino being placed by (dx, dy). A move that would
// push the mino off the board instead slides it back as far as possible in
// the opposite direction while it stays on the board.
func (g *Game) MovePlacing(dx, dy tetroku.Coordinate) error {
	if g.placing == nil {
		return ErrNotPlacing
	}
	m := g.tray[g.placing.slot]
	step := tetroku.Point{X: dx, Y: dy}

	next := g.placing.at.Add(step)
	if tetroku.IsInBounds(m, next) {
		g.placing.at = next
		return nil
	}

	next = g.placing.at
	for (dx != 0 || dy != 0) && tetroku.IsInBounds(m, next.Sub(step)) {
		next = next.Sub(step)
	}
	g.placing.at = next
	return nil
}

// DragTo moves the mino being placed so its container origin is as close to
// at as the board edges allow.
func (g *Game) DragTo(at tetroku.Point) error {
	if g.placing == nil {
		return ErrNotPlacing
	}
	g.placing.at = tetroku.ClampMinoPosition(g.tray[g.placing.slot], at)
	return nil
}

// StartDragging anchors a drag at pointer, in board cells.
func (g *Game) StartDragging(pointer tetroku.Point) error {
	if g.placing == nil {
		return ErrNotPlacing
	}
	at := g.placing.at
	g.dragging = &dragging{
		dx: int(at.X) - int(pointer.X),
		dy: int(at.Y) - int(pointer.Y),
	}
	return nil
}

// ContinueDragging moves the mino with the pointer. It does nothing unless a
// drag was started.
func (g *Game) ContinueDragging(pointer tetroku.Point) {
	if g.placing == nil || g.dragging == nil {
		return
	}
	at := tetroku.Point{
		X: saturate(int(pointer.X) + g.dragging.dx),
		Y: saturate(int(pointer.Y) + g.dragging.dy),
	}
	g.placing.at = tetroku.ClampMinoPosition(g.tray[g.placing.slot], at)
}

// FinishDragging ends a drag. The mino stays where it was dragged to.
func (g *Game) FinishDragging() {
	g.dragging = nil
}

// Outcome summarizes a resolved turn.
type Outcome struct {
	Turn    int
	Squares int
	Cleared []tetroku.WouldRemove
	Points  int
	Dealt   bool
	Lost    bool
}

// FinishPlacing drops the mino being placed where it is. On error nothing
// changes.
func (g *Game) FinishPlacing() (Outcome, error) {
	if g.lost {
		return Outcome{}, ErrGameOver
	}
	if g.placing == nil {
		return Outcome{}, ErrNotPlacing
	}
	return g.Play(Move{Slot: g.placing.slot, At: g.placing.at})
}

// Play resolves a turn that drops the mino in move.Slot at move.At,
// regardless of which mino is currently selected. On error nothing changes.
func (g *Game) Play(move Move) (Outcome, error) {
	if g.lost {
		return Outcome{}, ErrGameOver
	}

	frame := newFrame(g.turn+1, g, move)
	if err := g.scheduler.Once(frame); err != nil {
		return Outcome{}, err
	}
	g.turn = frame.Turn

	return Outcome{
		Turn:    frame.Turn,
		Squares: frame.Squares,
		Cleared: frame.Cleared,
		Points:  frame.Points,
		Dealt:   frame.dealt,
		Lost:    g.lost,
	}, nil
}

// WouldRemoveBoard marks every cell that placing the selected mino where it
// is would clear. It is empty when nothing is selected or the placement is
// invalid.
func (g *Game) WouldRemoveBoard() tetroku.Board {
	var out tetroku.Board
	if g.placing == nil {
		return out
	}

	units, err := g.board.FindWouldRemove(g.tray[g.placing.slot], g.placing.at)
	if err != nil {
		return out
	}
	for _, unit := range units {
		for _, pos := range unit.Positions() {
			out.Set(pos, true)
		}
	}
	return out
}

// MinoState describes a tray slot for display.
type MinoState struct {
	Mino tetroku.Mino
	// CanPlace is false if the mino fits nowhere on the board.
	CanPlace bool
	// IsPlacing is true for the selected mino.
	IsPlacing bool
}

// MinoState returns the state of tray slot i. ok is false for empty slots.
func (g *Game) MinoState(i int) (state MinoState, ok bool) {
	m, ok := g.Mino(i)
	if !ok {
		return MinoState{}, false
	}
	return MinoState{
		Mino:      m,
		CanPlace:  g.fits.canPlace(&g.board, m),
		IsPlacing: g.placing != nil && g.placing.slot == i,
	}, true
}

// Board returns a copy of the board.
func (g *Game) Board() tetroku.Board {
	return g.board
}

// Occupied reports whether the board cell at pos is filled.
func (g *Game) Occupied(pos tetroku.Position) bool {
	return g.board.Occupied(pos)
}

// Score returns the total points scored.
func (g *Game) Score() int {
	return g.score
}

// LastPoints returns the points scored by the most recent turn.
func (g *Game) LastPoints() int {
	return g.lastPoints
}

// Lost reports whether no mino left in the tray fits on the board.
func (g *Game) Lost() bool {
	return g.lost
}

// Turn returns the number of turns played.
func (g *Game) Turn() int {
	return g.turn
}

// Stats returns the scheduler's execution statistics.
func (g *Game) Stats() *SchedulerStats {
	return g.scheduler.GetStats()
}

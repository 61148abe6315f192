package game

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned by NewEngine for boards no piece fits on.
var ErrInvalidDimensions = errors.New("invalid board dimensions")

const (
	MinBoardWidth  = 4
	MinBoardHeight = 4
)

// Randomizer picks piece types. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// Events are invoked synchronously from inside the command that caused them.
// Nil callbacks are skipped.
type Events struct {
	ScoreChanged     func(score int)
	NextPieceChanged func(next PieceType)
	GameOver         func(finalScore int)
}

type Phase int

const (
	PhaseFalling Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseGameOver:
		return "game over"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Engine owns the board and the active and next pieces and applies every
// rule of the game. It is not safe for concurrent use; callers serialise
// commands on a single goroutine.
type Engine struct {
	board  *Board
	active *Piece
	next   *Piece
	spawnX int
	spawnY int
	score  int
	phase  Phase
	rng    Randomizer
	events Events
}

// NewEngine creates a game on an empty height×width board, draws the active
// and next pieces and stamps the active piece at the spawn point
// (width/2-2, 0).
func NewEngine(height, width int, rng Randomizer, ev Events) (*Engine, error) {
	if height < MinBoardHeight || width < MinBoardWidth {
		return nil, fmt.Errorf("%w: %dx%d is smaller than %dx%d",
			ErrInvalidDimensions, height, width, MinBoardHeight, MinBoardWidth)
	}
	if width%2 != 0 {
		return nil, fmt.Errorf("%w: width %d is odd", ErrInvalidDimensions, width)
	}
	if rng == nil {
		return nil, errors.New("nil randomizer")
	}

	e := &Engine{
		board:  NewBoard(height, width),
		spawnX: width/2 - 2,
		spawnY: 0,
		rng:    rng,
		events: ev,
	}
	e.active = e.drawPiece()
	e.next = e.drawPiece()
	e.notifyNext()
	e.stamp(e.active)
	return e, nil
}

func (e *Engine) drawPiece() *Piece {
	t := pieceTypes[e.rng.Intn(len(pieceTypes))]
	return NewPiece(t, e.spawnX, e.spawnY)
}

// --- Queries ---

func (e *Engine) Width() int   { return e.board.Width() }
func (e *Engine) Height() int  { return e.board.Height() }
func (e *Engine) Score() int   { return e.score }
func (e *Engine) Phase() Phase { return e.phase }

// Board returns a copy of the grid including the falling piece.
func (e *Engine) Board() [][]Cell { return e.board.Snapshot() }

func (e *Engine) Active() PieceView { return e.active.View() }
func (e *Engine) Next() PieceView   { return e.next.View() }

// --- Placement ---

func (e *Engine) stamp(p *Piece) {
	p.cells(p.X, p.Y, p.Rotation, func(row, col int) {
		if row >= 0 {
			e.board.Set(row, col, Cell(p.Type))
		}
	})
}

func (e *Engine) erase(p *Piece) {
	p.cells(p.X, p.Y, p.Rotation, func(row, col int) {
		if row >= 0 {
			e.board.Set(row, col, Empty)
		}
	})
}

// fits reports whether p could occupy (x, y) in rotation r. The piece's own
// footprint must be erased first. Cells above the grid always fit.
func (e *Engine) fits(p *Piece, x, y int, r Rotation) bool {
	ok := true
	p.cells(x, y, r, func(row, col int) {
		switch {
		case !ok:
		case col < 0 || col >= e.board.Width() || row >= e.board.Height():
			ok = false
		case row >= 0 && e.board.At(row, col).Filled():
			ok = false
		}
	})
	return ok
}

// pinned reports whether the active piece sticks out above the grid or rests
// on the last row. Sideways moves and rotations are refused while it is.
func (e *Engine) pinned() bool {
	return e.active.Top() < 0 || e.active.Bottom() == e.board.Height()-1
}

// --- Commands ---

// TickDown advances gravity by one row. Afterwards exactly one of these has
// happened: the piece moved down, the piece locked and the next one spawned,
// or the game ended.
func (e *Engine) TickDown() {
	if e.phase == PhaseGameOver {
		return
	}
	p := e.active
	if p.Bottom() == e.board.Height()-1 {
		e.lock()
		return
	}

	e.erase(p)
	if !e.fits(p, p.X, p.Y+1, p.Rotation) {
		e.stamp(p)
		e.lock()
		return
	}
	p.Y++
	e.stamp(p)
}

// Rotate turns the active piece to its next rotation, or does nothing if the
// new rotation would leave the board or overlap locked cells.
func (e *Engine) Rotate() {
	if e.phase == PhaseGameOver || e.pinned() {
		return
	}
	p := e.active
	next := p.Rotation.Next()

	e.erase(p)
	if e.fits(p, p.X, p.Y, next) {
		p.Rotation = next
	}
	e.stamp(p)
}

func (e *Engine) MoveLeft()  { e.shift(-1) }
func (e *Engine) MoveRight() { e.shift(1) }

func (e *Engine) shift(dx int) {
	if e.phase == PhaseGameOver || e.pinned() {
		return
	}
	p := e.active

	e.erase(p)
	if e.fits(p, p.X+dx, p.Y, p.Rotation) {
		p.X += dx
	}
	e.stamp(p)
}

// Reset starts a new game: the board is emptied, the score zeroed and the
// queued next piece becomes active.
func (e *Engine) Reset() {
	e.board.Clear()
	e.score = 0
	e.notifyScore()

	e.promote()
	e.stamp(e.active)
	e.phase = PhaseFalling
}

// --- Locking ---

// lock merges the active piece (already stamped) into the board, clears
// completed rows and either spawns the next piece or ends the game.
func (e *Engine) lock() {
	e.clearCompletedRows()

	if e.active.Top() <= 0 {
		e.phase = PhaseGameOver
		if e.events.GameOver != nil {
			e.events.GameOver(e.score)
		}
		return
	}

	e.promote()
	e.spawn()
}

// promote makes the next piece active at the spawn point and draws a new
// next piece.
func (e *Engine) promote() {
	e.active = e.next
	e.active.Rotation = RotBase
	e.active.X = e.spawnX
	e.active.Y = e.spawnY

	e.next = e.drawPiece()
	e.notifyNext()
}

// spawn stamps the freshly promoted piece. When fewer clean rows than the
// piece height remain at the top, only its lowest rows are placed, pressed
// against row 0, and the rest stays above the grid.
func (e *Engine) spawn() {
	p := e.active
	clean := e.cleanRows(p)
	if clean < p.Height() {
		p.Y = clean - 1 - p.Shape().Bottom
	}
	e.stamp(p)
}

// cleanRows counts the fully empty rows at the top of the board across the
// columns p spans.
func (e *Engine) cleanRows(p *Piece) int {
	n := 0
	for row := 0; row < e.board.Height(); row++ {
		for col := p.Left(); col <= p.Right(); col++ {
			if e.board.At(row, col).Filled() {
				return n
			}
		}
		n++
	}
	return n
}

// completedRows lists, top to bottom, the complete rows within the active
// piece's vertical span.
func (e *Engine) completedRows() []int {
	var rows []int
	for row := max(e.active.Top(), 0); row <= e.active.Bottom(); row++ {
		if e.board.RowComplete(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (e *Engine) clearCompletedRows() int {
	rows := e.completedRows()
	if len(rows) == 0 {
		return 0
	}

	// Remove bottom-up. Each removal pulls the rows above it down one, so a
	// higher row has moved by the number already removed.
	for i, offset := len(rows)-1, 0; i >= 0; i, offset = i-1, offset+1 {
		e.board.collapseRow(rows[i] + offset)
	}

	e.score += rowScore(len(rows))
	e.notifyScore()
	return len(rows)
}

// rowScore is the score for clearing n rows with one lock.
func rowScore(n int) int {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return 10
	default:
		return 15 * n
	}
}

func (e *Engine) notifyScore() {
	if e.events.ScoreChanged != nil {
		e.events.ScoreChanged(e.score)
	}
}

func (e *Engine) notifyNext() {
	if e.events.NextPieceChanged != nil {
		e.events.NextPieceChanged(e.next.Type)
	}
}

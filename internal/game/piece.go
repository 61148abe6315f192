package game

// Piece is a live instance of a catalog shape. X and Y locate the origin
// (top-left) of the local matrix on the board; the origin itself need not be
// occupied, and Y is negative while part of the piece is above the grid.
type Piece struct {
	Type     PieceType
	Rotation Rotation
	X, Y     int
}

func NewPiece(t PieceType, x, y int) *Piece {
	return &Piece{Type: t, Rotation: RotBase, X: x, Y: y}
}

func (p *Piece) Shape() Shape {
	return Geometry(p.Type, p.Rotation)
}

// Board-space borders of the occupied cells.

func (p *Piece) Top() int    { return p.Y + p.Shape().Top }
func (p *Piece) Bottom() int { return p.Y + p.Shape().Bottom }
func (p *Piece) Left() int   { return p.X + p.Shape().Left }
func (p *Piece) Right() int  { return p.X + p.Shape().Right }

// Height is the number of rows the piece occupies in its current rotation.
func (p *Piece) Height() int { return p.Shape().Rows() }

// cells calls fn with the board coordinates of every occupied cell of the
// piece as if it were at (x, y) in rotation r.
func (p *Piece) cells(x, y int, r Rotation, fn func(row, col int)) {
	s := Geometry(p.Type, r)
	for i := s.Top; i <= s.Bottom; i++ {
		for j := s.Left; j <= s.Right; j++ {
			if s.Occupied(i, j) {
				fn(y+i, x+j)
			}
		}
	}
}

// PieceView is a read-only description of a piece handed out to callers.
type PieceView struct {
	Type     PieceType
	Rotation Rotation
	X, Y     int
	Shape    Shape
}

func (p *Piece) View() PieceView {
	return PieceView{
		Type:     p.Type,
		Rotation: p.Rotation,
		X:        p.X,
		Y:        p.Y,
		Shape:    p.Shape(),
	}
}

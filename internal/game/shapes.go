package game

import "fmt"

type PieceType uint8

// Order matters: the randomizer indexes into pieceTypes.
const (
	PieceI PieceType = iota + 1
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

var pieceTypes = []PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	}
	return fmt.Sprintf("PieceType(%d)", uint8(t))
}

// Cell is a single grid square. The zero value is Empty; any other value is
// the PieceType tag of the block occupying it.
type Cell uint8

const Empty Cell = 0

func (c Cell) Filled() bool { return c != Empty }

// Piece returns the piece type a filled cell came from.
func (c Cell) Piece() PieceType { return PieceType(c) }

type Rotation uint8

const (
	RotBase Rotation = iota
	Rot90
	Rot180
	Rot270
	numRotations
)

// Next returns the clockwise successor, wrapping Rot270 back to RotBase.
func (r Rotation) Next() Rotation {
	return (r + 1) % numRotations
}

func (r Rotation) String() string {
	switch r {
	case RotBase:
		return "0"
	case Rot90:
		return "90"
	case Rot180:
		return "180"
	case Rot270:
		return "270"
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}

// Shape is the local occupancy matrix of one piece type in one rotation,
// together with the tight bounding box of its occupied cells.
type Shape struct {
	Cells  [][]Cell
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Rows is the number of occupied rows, i.e. the piece height.
func (s Shape) Rows() int { return s.Bottom - s.Top + 1 }

func (s Shape) Occupied(row, col int) bool {
	return s.Cells[row][col].Filled()
}

var pieceShapes = map[PieceType][numRotations][]string{
	PieceI: {
		{"####", "....", "....", "...."},
		{"..#.", "..#.", "..#.", "..#."},
		{"....", "####", "....", "...."},
		{".#..", ".#..", ".#..", ".#.."},
	},
	PieceJ: {
		{".#...", ".###.", "....."},
		{"..##.", "..#..", "..#..", "....."},
		{".....", ".###.", "...#.", "....."},
		{"..#.", "..#.", ".##.", "...."},
	},
	PieceL: {
		{"...#.", ".###.", "....."},
		{"..#..", "..#..", "..##.", "....."},
		{".....", ".###.", ".#...", "....."},
		{".##.", "..#.", "..#.", "...."},
	},
	PieceO: {
		{".##.", ".##.", "...."},
		{".##.", ".##.", "...."},
		{".##.", ".##.", "...."},
		{".##.", ".##.", "...."},
	},
	PieceS: {
		{"..##.", ".##..", "....."},
		{"..#..", "..##.", "...#.", "....."},
		{"..##.", ".##..", "....."},
		{".#..", ".##.", "..#.", "...."},
	},
	PieceT: {
		{"..#..", ".###.", "....."},
		{"..#..", "..##.", "..#..", "....."},
		{".....", ".###.", "..#..", "....."},
		{"..#.", ".##.", "..#.", "...."},
	},
	PieceZ: {
		{".##..", "..##.", "....."},
		{"...#.", "..##.", "..#..", "....."},
		{".##..", "..##.", "....."},
		{"..#.", ".##.", ".#..", "...."},
	},
}

// catalog is built once from pieceShapes and shared by every piece.
var catalog = buildCatalog()

func buildCatalog() map[PieceType][numRotations]Shape {
	out := make(map[PieceType][numRotations]Shape, len(pieceShapes))
	for t, rows := range pieceShapes {
		var shapes [numRotations]Shape
		for r := range rows {
			shapes[r] = parseShape(t, rows[r])
		}
		out[t] = shapes
	}
	return out
}

func parseShape(t PieceType, rows []string) Shape {
	s := Shape{
		Cells:  make([][]Cell, len(rows)),
		Top:    -1,
		Left:   len(rows[0]),
		Right:  -1,
		Bottom: -1,
	}
	for i, row := range rows {
		s.Cells[i] = make([]Cell, len(row))
		for j, ch := range row {
			if ch != '#' {
				continue
			}
			s.Cells[i][j] = Cell(t)
			if s.Top < 0 {
				s.Top = i
			}
			s.Bottom = i
			s.Left = min(s.Left, j)
			s.Right = max(s.Right, j)
		}
	}
	if s.Top < 0 {
		panic(fmt.Sprintf("game: empty shape for piece %s", t))
	}
	return s
}

// Geometry returns the shape of piece type t in rotation r. The returned
// matrix is shared and must not be modified.
func Geometry(t PieceType, r Rotation) Shape {
	shapes, ok := catalog[t]
	if !ok || r >= numRotations {
		panic(fmt.Sprintf("game: no geometry for piece %s rotation %s", t, r))
	}
	return shapes[r]
}

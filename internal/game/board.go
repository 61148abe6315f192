package game

import (
	"fmt"
	"strings"
)

// Board is the grid of locked cells plus the stamped footprint of the
// falling piece. It holds no game rules.
type Board struct {
	cells  [][]Cell
	width  int
	height int
}

func NewBoard(height, width int) *Board {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Board{
		cells:  cells,
		width:  width,
		height: height,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) checkBounds(row, col int) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		panic(fmt.Sprintf("game: cell (%d,%d) outside %dx%d board", row, col, b.height, b.width))
	}
}

func (b *Board) At(row, col int) Cell {
	b.checkBounds(row, col)
	return b.cells[row][col]
}

func (b *Board) Set(row, col int, c Cell) {
	b.checkBounds(row, col)
	b.cells[row][col] = c
}

// Clear empties every cell.
func (b *Board) Clear() {
	for _, row := range b.cells {
		clear(row)
	}
}

// RowComplete reports whether every column of row is filled.
func (b *Board) RowComplete(row int) bool {
	b.checkBounds(row, 0)
	for _, c := range b.cells[row] {
		if !c.Filled() {
			return false
		}
	}
	return true
}

// collapseRow removes row, shifting every row above it down by one and
// leaving row 0 empty.
func (b *Board) collapseRow(row int) {
	b.checkBounds(row, 0)
	for y := row; y > 0; y-- {
		copy(b.cells[y], b.cells[y-1])
	}
	clear(b.cells[0])
}

// Snapshot returns a copy of the grid, indexed [row][col].
func (b *Board) Snapshot() [][]Cell {
	out := make([][]Cell, b.height)
	for i, row := range b.cells {
		out[i] = make([]Cell, b.width)
		copy(out[i], row)
	}
	return out
}

// String draws the grid one line per row, '.' for empty cells and the piece
// letter otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.cells {
		for _, c := range row {
			if c.Filled() {
				sb.WriteString(c.Piece().String())
			} else {
				sb.WriteByte('.')
			}
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

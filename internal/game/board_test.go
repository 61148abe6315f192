package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardSetAndClear(t *testing.T) {
	b := NewBoard(3, 4)
	b.Set(0, 0, Cell(PieceT))
	b.Set(2, 3, Cell(PieceI))

	assert.Equal(t, Cell(PieceT), b.At(0, 0))
	assert.Equal(t, "T...\n....\n...I", b.String())

	b.Clear()
	assert.Equal(t, "....\n....\n....", b.String())
}

func TestBoardBoundsPanic(t *testing.T) {
	b := NewBoard(3, 4)
	assert.Panics(t, func() { b.At(3, 0) })
	assert.Panics(t, func() { b.At(0, -1) })
	assert.Panics(t, func() { b.Set(-1, 0, Cell(PieceO)) })
}

func TestBoardRowComplete(t *testing.T) {
	b := NewBoard(2, 4)
	for col := 0; col < 3; col++ {
		b.Set(1, col, Cell(PieceJ))
	}
	assert.False(t, b.RowComplete(1))

	b.Set(1, 3, Cell(PieceJ))
	assert.True(t, b.RowComplete(1))
	assert.False(t, b.RowComplete(0))
}

func TestBoardCollapseRow(t *testing.T) {
	b := NewBoard(4, 2)
	b.Set(0, 0, Cell(PieceS))
	b.Set(1, 1, Cell(PieceZ))
	b.Set(2, 0, Cell(PieceO))
	b.Set(2, 1, Cell(PieceO))
	b.Set(3, 0, Cell(PieceL))

	b.collapseRow(2)

	assert.Equal(t, "..\nS.\n.Z\nL.", b.String())
}

func TestBoardSnapshotIsCopy(t *testing.T) {
	b := NewBoard(2, 2)
	snap := b.Snapshot()
	snap[0][0] = Cell(PieceI)

	assert.Equal(t, Empty, b.At(0, 0))
}

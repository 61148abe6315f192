package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometryBoundingBoxes(t *testing.T) {
	for _, pt := range pieceTypes {
		for r := RotBase; r < numRotations; r++ {
			s := Geometry(pt, r)

			filled := 0
			rowsUsed := map[int]bool{}
			colsUsed := map[int]bool{}
			for i, row := range s.Cells {
				for j, c := range row {
					if !c.Filled() {
						continue
					}
					filled++
					rowsUsed[i] = true
					colsUsed[j] = true
					assert.Equal(t, pt, c.Piece())
					assert.True(t, i >= s.Top && i <= s.Bottom, "%s/%s row %d", pt, r, i)
					assert.True(t, j >= s.Left && j <= s.Right, "%s/%s col %d", pt, r, j)
				}
			}

			assert.Equal(t, 4, filled, "%s/%s", pt, r)
			assert.True(t, rowsUsed[s.Top] && rowsUsed[s.Bottom], "%s/%s rows not tight", pt, r)
			assert.True(t, colsUsed[s.Left] && colsUsed[s.Right], "%s/%s cols not tight", pt, r)
		}
	}
}

func TestBaseRotationStartsOnTopRow(t *testing.T) {
	for _, pt := range pieceTypes {
		assert.Equal(t, 0, Geometry(pt, RotBase).Top, pt.String())
	}
}

func TestPaddedOrientations(t *testing.T) {
	l180 := Geometry(PieceL, Rot180)
	assert.Equal(t, 1, l180.Top)
	assert.Equal(t, 2, l180.Bottom)

	assert.Equal(t, 2, Geometry(PieceL, Rot90).Left)
	assert.Equal(t, 2, Geometry(PieceS, Rot90).Left)
	assert.Equal(t, 1, Geometry(PieceS, Rot270).Left)

	assert.Equal(t, 2, Geometry(PieceO, RotBase).Rows())
	assert.Equal(t, 4, Geometry(PieceI, Rot90).Rows())
}

func TestGeometryPanicsOnUnknownValues(t *testing.T) {
	assert.Panics(t, func() { Geometry(PieceType(0), RotBase) })
	assert.Panics(t, func() { Geometry(PieceT, Rotation(4)) })
}

func TestRotationCycle(t *testing.T) {
	r := RotBase
	for _, want := range []Rotation{Rot90, Rot180, Rot270, RotBase} {
		r = r.Next()
		assert.Equal(t, want, r)
	}
}

func TestPieceTypeString(t *testing.T) {
	var names string
	for _, pt := range pieceTypes {
		names += pt.String()
	}
	assert.Equal(t, "IJLOSTZ", names)
	assert.Equal(t, "PieceType(9)", PieceType(9).String())
}

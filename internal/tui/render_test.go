package tui

import (
	"strings"
	"testing"

	"github.com/hersh/blockfall/internal/config"
	"github.com/hersh/blockfall/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestRenderPiece(t *testing.T) {
	assert.Equal(t, "████████", RenderPiece(game.PieceI))
	assert.Equal(t, "████\n████", RenderPiece(game.PieceO))
	assert.Equal(t, "    ██\n██████", RenderPiece(game.PieceL))
}

func TestRenderBoardSize(t *testing.T) {
	cells := make([][]game.Cell, 6)
	for i := range cells {
		cells[i] = make([]game.Cell, 4)
	}
	cells[5][0] = game.Cell(game.PieceZ)

	out := RenderBoard(cells)
	lines := strings.Split(out, "\n")

	// Grid rows plus the top and bottom border.
	assert.Len(t, lines, 8)
	assert.Contains(t, lines[6], "██")
	assert.NotContains(t, lines[1], "██")
}

func TestRenderControlsListsBindings(t *testing.T) {
	out := RenderControls(config.Default().Keys)
	assert.Contains(t, out, "left/h")
	assert.Contains(t, out, "q/ctrl+c")
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/blockfall/internal/config"
	"github.com/hersh/blockfall/internal/game"
)

var (
	// Indexed by game.Cell; 0 is empty.
	colors = []string{
		"0",
		"51",  // I
		"21",  // J
		"208", // L
		"226", // O
		"46",  // S
		"201", // T
		"196", // Z
	}

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("15"))

	infoStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	gainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Align(lipgloss.Center)

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226"))
)

func cellColor(c game.Cell) string {
	if int(c) < len(colors) {
		return colors[c]
	}
	return "248"
}

func RenderBoard(cells [][]game.Cell) string {
	var sb strings.Builder

	for y, row := range cells {
		for _, c := range row {
			if !c.Filled() {
				sb.WriteString("  ")
				continue
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(cellColor(c))).
				Render("██"))
		}
		if y < len(cells)-1 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

// RenderPiece draws the occupied rows and columns of a piece in its spawn
// rotation.
func RenderPiece(t game.PieceType) string {
	var sb strings.Builder
	s := game.Geometry(t, game.RotBase)
	pieceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(cellColor(game.Cell(t))))

	for i := s.Top; i <= s.Bottom; i++ {
		for j := s.Left; j <= s.Right; j++ {
			if s.Occupied(i, j) {
				sb.WriteString(pieceStyle.Render("██"))
			} else {
				sb.WriteString("  ")
			}
		}
		if i < s.Bottom {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func RenderInfo(playerName string, score, lastGain int, next game.PieceType) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("BLOCKFALL") + "\n\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Player: %s", playerName)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Score: %d", score)))
	if lastGain > 0 {
		sb.WriteString(" " + gainStyle.Render(fmt.Sprintf("+%d", lastGain)))
	}
	sb.WriteString("\n\n")

	sb.WriteString(titleStyle.Render("NEXT") + "\n")
	sb.WriteString(RenderPiece(next) + "\n")

	return sb.String()
}

func RenderControls(k config.KeyConfig) string {
	line := func(label string, keys []string) string {
		return fmt.Sprintf("  %-8s %s\n", label, strings.Join(keys, "/"))
	}
	return infoStyle.Render("Controls:\n" +
		line("Left", k.Left) +
		line("Right", k.Right) +
		line("Rotate", k.Rotate) +
		line("Down", k.Down) +
		line("Pause", k.Pause) +
		line("Quit", k.Quit))
}

func RenderPaused(resume []string) string {
	return pausedStyle.Render("PAUSED - press " + strings.Join(resume, "/") + " to resume")
}

func RenderGameOver(score int) string {
	return gameOverStyle.Render(fmt.Sprintf("\n\n\n     GAME OVER     \n     Score: %d     \n\n\n", score))
}

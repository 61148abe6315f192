package tui

import (
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/blockfall/internal/config"
	"github.com/hersh/blockfall/internal/game"
)

// GameTickMsg is one gravity step. Ticks from an older generation (before a
// pause or restart) are dropped.
type GameTickMsg struct {
	gen int
}

// --- Screens ---

type Screen int

const (
	ScreenPlaying Screen = iota
	ScreenPaused
	ScreenGameOver
)

type action int

const (
	actionNone action = iota
	actionLeft
	actionRight
	actionRotate
	actionDown
	actionPause
	actionRestart
	actionQuit
)

func bindKeys(k config.KeyConfig) map[string]action {
	keys := make(map[string]action)
	bind := func(names []string, a action) {
		for _, n := range names {
			keys[n] = a
		}
	}
	bind(k.Left, actionLeft)
	bind(k.Right, actionRight)
	bind(k.Rotate, actionRotate)
	bind(k.Down, actionDown)
	bind(k.Pause, actionPause)
	bind(k.Restart, actionRestart)
	bind(k.Quit, actionQuit)
	return keys
}

// hud is filled in by engine notifications. Model is passed by value, so it
// holds a pointer.
type hud struct {
	score      int
	lastGain   int
	next       game.PieceType
	over       bool
	finalScore int
	games      int
}

func (h *hud) events() game.Events {
	return game.Events{
		ScoreChanged: func(score int) {
			h.lastGain = max(score-h.score, 0)
			h.score = score
			if h.lastGain > 0 {
				log.Printf("cleared rows: +%d, score %d", h.lastGain, score)
			}
		},
		NextPieceChanged: func(next game.PieceType) {
			h.next = next
		},
		GameOver: func(finalScore int) {
			h.over = true
			h.finalScore = finalScore
			log.Printf("game %d over, final score %d", h.games, finalScore)
		},
	}
}

// --- Model ---

type Model struct {
	screen     Screen
	engine     *game.Engine
	hud        *hud
	keys       map[string]action
	keyConfig  config.KeyConfig
	interval   time.Duration
	playerName string
	gen        int
	width      int
	height     int
}

// NewModel starts a game sized by cfg. Pieces are drawn from rng.
func NewModel(cfg *config.Config, playerName string, rng game.Randomizer) (Model, error) {
	h := &hud{games: 1}
	engine, err := game.NewEngine(cfg.Board.Height, cfg.Board.Width, rng, h.events())
	if err != nil {
		return Model{}, err
	}
	return Model{
		screen:     ScreenPlaying,
		engine:     engine,
		hud:        h,
		keys:       bindKeys(cfg.Keys),
		keyConfig:  cfg.Keys,
		interval:   cfg.Gravity.Interval.Std(),
		playerName: playerName,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return gameTickCmd(m.interval, m.gen)
}

func gameTickCmd(speed time.Duration, gen int) tea.Cmd {
	return tea.Tick(speed, func(time.Time) tea.Msg {
		return GameTickMsg{gen: gen}
	})
}

// restartTicks invalidates any tick in flight and schedules a fresh one.
func (m Model) restartTicks() (Model, tea.Cmd) {
	m.gen++
	return m, gameTickCmd(m.interval, m.gen)
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case GameTickMsg:
		return m.handleGameTick(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.keys[msg.String()]
	if a == actionQuit {
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenPlaying:
		return m.handlePlayingKeys(a)
	case ScreenPaused:
		if a == actionPause {
			m.screen = ScreenPlaying
			return m.restartTicks()
		}
	case ScreenGameOver:
		if a == actionRestart {
			return m.restart()
		}
	}
	return m, nil
}

func (m Model) handlePlayingKeys(a action) (tea.Model, tea.Cmd) {
	switch a {
	case actionLeft:
		m.engine.MoveLeft()
	case actionRight:
		m.engine.MoveRight()
	case actionRotate:
		m.engine.Rotate()
	case actionDown:
		m.engine.TickDown()
	case actionPause:
		m.screen = ScreenPaused
		m.gen++
		return m, nil
	}
	if m.hud.over {
		m.screen = ScreenGameOver
	}
	return m, nil
}

func (m Model) handleGameTick(msg GameTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.screen != ScreenPlaying {
		return m, nil
	}

	m.engine.TickDown()
	if m.hud.over {
		m.screen = ScreenGameOver
		return m, nil
	}
	return m, gameTickCmd(m.interval, m.gen)
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	m.hud.over = false
	m.hud.lastGain = 0
	m.hud.games++
	m.engine.Reset()
	log.Printf("game %d started", m.hud.games)

	m.screen = ScreenPlaying
	return m.restartTicks()
}

// --- View ---

func (m Model) View() string {
	switch m.screen {
	case ScreenPlaying:
		return m.renderPlaying("")
	case ScreenPaused:
		return m.renderPlaying(RenderPaused(m.keyConfig.Pause))
	case ScreenGameOver:
		return m.renderCentered(RenderGameOver(m.hud.finalScore) +
			"\n\nPress " + strings.ToUpper(strings.Join(m.keyConfig.Restart, "/")) + " to play again")
	}
	return ""
}

func (m Model) renderCentered(content string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m Model) renderPlaying(banner string) string {
	board := RenderBoard(m.engine.Board())
	info := RenderInfo(m.playerName, m.hud.score, m.hud.lastGain, m.hud.next)

	leftPanel := lipgloss.NewStyle().
		Width(24).
		Render(info + "\n" + RenderControls(m.keyConfig))

	centerPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(board)

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		centerPanel,
	)
	if banner != "" {
		mainContent = lipgloss.JoinVertical(lipgloss.Center, mainContent, banner)
	}

	return m.renderCentered(mainContent)
}

func (m Model) Screen() Screen { return m.screen }

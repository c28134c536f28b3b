// Package tui provides the Bubble Tea integration: the program loop, key
// bindings and the conversion of the game's screen buffer to styled text.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sevens/internal/core"
	"github.com/vovakirdan/sevens/internal/registry"
)

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	gameState core.GameState
	termW     int
	termH     int
	logger    *log.Logger
	err       error
	quitting  bool
}

// NewModel creates a new Bubble Tea model for a game that has already
// been Reset with cfg.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		gameState: game.State(),
		logger:    logger,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
		return m.restart()
	}

	result := m.game.Step(core.FrameOf(action))
	m.gameState = result.State
	return m, nil
}

// restart begins a new game with a fresh seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("restart failed", "game", m.game.ID(), "err", err)
		m.err = fmt.Errorf("tui: restart %s: %w", m.game.ID(), err)
		m.quitting = true
		return m, tea.Quit
	}
	m.gameState = m.game.State()
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termW, m.termH = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout gives the game everything above the help footer.
func (m *Model) layout() {
	if m.termW == 0 && m.termH == 0 {
		return
	}
	h := max(m.termH-lipgloss.Height(m.help.View(m.keys)), 0)
	m.config.ScreenW = m.termW
	m.config.ScreenH = h
	m.screen.Resize(m.termW, h)
	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.termW, h)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run resets the game and starts the Bubble Tea program. cfg holds the
// terminal size; one line of it is kept for the help footer.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-1, 0)
	if err := game.Reset(cfg); err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}

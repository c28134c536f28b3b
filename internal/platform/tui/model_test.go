package tui

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sevens/internal/core"
)

// fakeGame records the frames and resets it receives.
type fakeGame struct {
	frames   []core.InputFrame
	resets   int
	over     bool
	resetErr error
	w, h     int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) error {
	g.resets++
	g.over = false
	return g.resetErr
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawTextColored(0, 0, "fake board", core.ColorBrightGreen)
}

func (g *fakeGame) State() core.GameState { return core.GameState{GameOver: g.over} }

func (g *fakeGame) Resize(w, h int) { g.w, g.h = w, h }

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, log.New(io.Discard))
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelForwardsActions(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(m, runeKey('u'))
	_, _ = update(m, runeKey('x'))

	if len(g.frames) != 2 {
		t.Fatalf("game got %d frames, want 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionUp) || !g.frames[1].Has(core.ActionUndo) {
		t.Errorf("frames = %v, %v", g.frames[0].Actions, g.frames[1].Actions)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{})
	m, cmd := update(m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(m, runeKey('r'))
	if g.resets != 0 {
		t.Error("restart during play should be ignored")
	}

	g.over = true
	m, _ = update(m, runeKey('u')) // picks up the game-over state
	m, _ = update(m, runeKey('r'))
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if m.gameState.GameOver {
		t.Error("state should be refreshed after restart")
	}
}

func TestModelRestartFailure(t *testing.T) {
	g := &fakeGame{over: true}
	m := newTestModel(g)
	g.resetErr = errors.New("boom")

	m, cmd := update(m, runeKey('r'))
	if cmd == nil || !errors.Is(m.Err(), g.resetErr) {
		t.Errorf("Err() = %v, want wrapped reset error", m.Err())
	}
}

func TestModelResizeAndHelp(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if g.w != 60 || g.h != 19 {
		t.Errorf("game area = %dx%d, want 60x19", g.w, g.h)
	}

	m, _ = update(m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	if g.h >= 19 {
		t.Errorf("full help should shrink the game area, got height %d", g.h)
	}

	view := m.View()
	if !strings.Contains(view, "fake board") {
		t.Errorf("View() missing game output:\n%s", view)
	}
	if !strings.Contains(view, "free move") {
		t.Errorf("View() missing help:\n%s", view)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 1, 'x', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, want 2", len(lines))
	}
	if lines[0] != "ab  " {
		t.Errorf("uncolored row = %q, want plain text", lines[0])
	}
	if !strings.Contains(lines[1], "x") {
		t.Errorf("colored row lost its rune: %q", lines[1])
	}
}

// Package sevens adapts the Sevens engine to the platform's Game interface:
// a cursor and selection state machine that turns input actions into
// engine commands, plus rendering of the board and HUD.
package sevens

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sevens/internal/config"
	"github.com/vovakirdan/sevens/internal/core"
	"github.com/vovakirdan/sevens/internal/engine"
	"github.com/vovakirdan/sevens/internal/registry"
)

// Variant describes one registered board size.
type Variant struct {
	ID   string
	Size int
}

// Variants lists the registered board sizes.
var Variants = []Variant{
	{ID: "sevens", Size: 7},
	{ID: "sevens8", Size: 8},
	{ID: "sevens9", Size: 9},
	{ID: "sevens10", Size: 10},
}

// Package-level settings applied on the next Reset.
var (
	configPath string
	preset     = config.DifficultyNormal
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the rules file to load. Empty means the default search.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied on top of the loaded rules.
func SetDifficultyPreset(p config.DifficultyPreset) {
	preset = p
}

// SetLogger sets the logger handed to new engines.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig loads the rules file and applies the current preset.
func LoadConfig() (config.SevensConfig, error) {
	cfg, err := config.LoadSevens(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplySevensPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game implements Sevens on top of engine.Engine.
type Game struct {
	variant Variant
	engine  *engine.Engine
	log     *log.Logger

	cursor   engine.Position
	selected engine.Position
	hasSel   bool
	freeMode bool
	message  string
	moves    int
	overSeen bool

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("Sevens %dx%d", g.variant.Size, g.variant.Size)
}

// BoardSize returns the variant's board side.
func (g *Game) BoardSize() int {
	return g.variant.Size
}

// Engine returns the engine of the current game, or nil before Reset.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Reset loads the rules and starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	rules, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("sevens: load rules: %w", err)
	}
	size := g.variant.Size
	if cfg.BoardSize > 0 {
		size = cfg.BoardSize
	}
	if !rules.SizeInRange(size) {
		return fmt.Errorf("sevens: board size %d outside %d..%d: %w",
			size, rules.Board.MinSize, rules.Board.MaxSize, engine.ErrInvalidSize)
	}

	g.log = logger.With("game", g.variant.ID)
	e, err := engine.New(rules.EngineRules(), engine.WithSeed(cfg.Seed), engine.WithLogger(g.log))
	if err != nil {
		return fmt.Errorf("sevens: create engine: %w", err)
	}
	g.engine = e
	g.overSeen = false
	e.Subscribe(g.onChange)
	if err := e.Reset(size); err != nil {
		g.engine = nil
		return fmt.Errorf("sevens: reset: %w", err)
	}

	g.cursor = engine.Pos(size/2, size/2)
	g.clearSelection()
	g.message = ""
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	g.log.Info("new game", "size", size, "seed", cfg.Seed, "difficulty", string(preset))
	return nil
}

// onChange runs after every committed engine change. It only reads.
func (g *Game) onChange() {
	if g.engine == nil {
		return
	}
	if g.engine.Over() && !g.overSeen {
		g.overSeen = true
		g.log.Info("game over", "score", g.engine.Score(), "level", g.engine.Level(), "moves", g.moves)
	}
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	w, h := layoutSize(g.variant.Size)
	if g.engine != nil {
		w, h = layoutSize(g.engine.Size())
	}
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Resize updates the screen dimensions without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.checkScreenSize()
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil || in.Empty() {
		return core.StepResult{State: g.State()}
	}
	before := g.view()

	switch {
	case g.tooSmall:
		// Input is ignored until the window is large enough.
	case g.engine.Over():
		// Restart is handled by the platform; the last move can still
		// be taken back.
		g.handleOver(in)
	default:
		g.handle(in)
	}

	return core.StepResult{State: g.State(), Changed: g.view() != before}
}

// viewState is the part of the game that affects rendering besides the engine.
type viewState struct {
	cursor, selected engine.Position
	hasSel, freeMode bool
	message          string
	moves            int
}

func (g *Game) view() viewState {
	return viewState{g.cursor, g.selected, g.hasSel, g.freeMode, g.message, g.moves}
}

// handle dispatches the actions of one frame.
func (g *Game) handle(in core.InputFrame) {
	size := g.engine.Size()
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1, size)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1, size)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0, size)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0, size)
	}

	switch {
	case in.Has(core.ActionBack):
		g.clearSelection()
		g.message = ""
	case in.Has(core.ActionFreeMove):
		g.toggleFreeMode()
	case in.Has(core.ActionUndo):
		g.undo()
	case in.Has(core.ActionSelect):
		g.selectOrMove()
	}
}

// handleOver dispatches the actions allowed on a full board.
func (g *Game) handleOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUndo):
		g.undo()
	case in.Has(core.ActionBack):
		g.clearSelection()
		g.message = ""
	}
}

// moveCursor steps the cursor, wrapping around the board edges.
func (g *Game) moveCursor(dx, dy, size int) {
	g.cursor = engine.Pos(core.Wrap(g.cursor.X+dx, size), core.Wrap(g.cursor.Y+dy, size))
}

func (g *Game) clearSelection() {
	g.hasSel = false
	g.freeMode = false
}

func (g *Game) toggleFreeMode() {
	if g.freeMode {
		g.freeMode = false
		g.message = ""
		return
	}
	if g.engine.FreeMoves() <= 0 {
		g.message = "No free moves left"
		return
	}
	g.freeMode = true
	g.message = "Free move: pick any empty cell"
}

func (g *Game) undo() {
	if !g.engine.Undo() {
		if g.engine.Undos() <= 0 {
			g.message = "No undos left"
		} else {
			g.message = "Nothing to undo"
		}
		return
	}
	g.clearSelection()
	g.overSeen = g.engine.Over()
	g.message = fmt.Sprintf("Undone (%d left)", g.engine.Undos())
}

// selectOrMove picks up the block under the cursor or, with a block
// selected, moves it to the cursor.
func (g *Game) selectOrMove() {
	cell := g.engine.Cell(g.cursor)
	switch {
	case cell != engine.Empty && g.hasSel && g.cursor == g.selected:
		g.clearSelection()
		g.message = ""
	case cell != engine.Empty:
		g.selected = g.cursor
		g.hasSel = true
		g.message = ""
	case !g.hasSel:
		g.message = "Select a block first"
	default:
		g.tryMove()
	}
}

func (g *Game) tryMove() {
	score := g.engine.Score()
	var ok bool
	if g.freeMode {
		ok = g.engine.TryFreeMove(g.selected, g.cursor)
	} else {
		ok = g.engine.TryMove(g.selected, g.cursor)
	}
	if !ok {
		// A free move ignores paths, so it only fails on an empty budget.
		g.message = "No path"
		if g.freeMode {
			g.message = "No free moves left"
		}
		return
	}
	g.moves++
	g.clearSelection()
	g.message = ""
	if gained := g.engine.Score() - score; gained > 0 {
		g.message = fmt.Sprintf("+%d", gained)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		GameOver: g.engine.Over(),
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/HJKL: Move | Enter/Space: Select | F: Free move | U: Undo | Q: Quit"
}

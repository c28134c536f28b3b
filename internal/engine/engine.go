package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Engine owns a game: the board, the upcoming queue, the counters and the
// undo history. All state changes go through its commands.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	rules   Rules
	rng     *rand.Rand
	spawner *Spawner
	logger  *log.Logger

	board     *Board
	upcoming  []Color
	score     int
	level     int
	linesLeft int
	undos     int
	freeMoves int
	history   History

	// version changes on every board mutation; the path cache is valid
	// only for the version it was computed at.
	version uint64
	finder  *PathFinder
	cache   pathCache

	listeners    []listener
	nextListener ListenerID
	notifying    bool
}

type pathCache struct {
	src     Position
	version uint64
	valid   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes the engine's random draws reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine for the given rules. The game starts after the
// first Reset.
func New(rules Rules, opts ...Option) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		rules:  rules,
		logger: log.New(io.Discard),
		finder: NewPathFinder(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.spawner = NewSpawner(e.rng, rules)
	return e, nil
}

// Rules returns the rules the engine was created with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Reset starts a new game on an empty size×size board and spawns the
// initial blocks.
func (e *Engine) Reset(size int) error {
	if e.notifying {
		e.logger.Warn("rejected re-entrant mutation", "op", "reset")
		return ErrReentrant
	}
	if size < e.rules.MinSize {
		return fmt.Errorf("%w: %d is below the minimum of %d", ErrInvalidSize, size, e.rules.MinSize)
	}
	board, err := NewBoard(size)
	if err != nil {
		return err
	}

	e.start(board)
	e.logger.Debug("reset", "size", size)
	e.populate()
	e.notify()
	return nil
}

// ResetBoard starts a new game on a prepared board instead of spawning the
// initial blocks. Counters and the queue start as in Reset.
func (e *Engine) ResetBoard(rows [][]Color) error {
	if e.notifying {
		e.logger.Warn("rejected re-entrant mutation", "op", "reset board")
		return ErrReentrant
	}
	if len(rows) < e.rules.MinSize {
		return fmt.Errorf("%w: %d is below the minimum of %d", ErrInvalidSize, len(rows), e.rules.MinSize)
	}
	board, err := BoardFromRows(rows)
	if err != nil {
		return err
	}
	for _, c := range board.cells {
		if c < Empty || int(c) > e.rules.Colors {
			return fmt.Errorf("%w: %d not in 0..%d", ErrInvalidColor, c, e.rules.Colors)
		}
	}

	e.start(board)
	e.logger.Debug("reset board", "size", board.size, "free", board.Free())
	e.notify()
	return nil
}

// start installs board and resets the counters, queue and history.
func (e *Engine) start(board *Board) {
	e.board = board
	e.upcoming = append([]Color(nil), e.rules.InitialQueue...)
	e.score = 0
	e.level = 1
	e.linesLeft = e.rules.LinesPerLevel
	e.undos = e.rules.InitialUndos
	e.freeMoves = e.rules.InitialFreeMoves
	e.history.Clear()
	e.touch()
}

// touch records a board mutation and invalidates the path cache.
func (e *Engine) touch() {
	e.version++
	e.cache.valid = false
}

// started reports whether Reset has been called.
func (e *Engine) started() bool {
	return e.board != nil
}

// TryMove moves the block at src to the empty cell dst along a free path.
// It reports whether the move was made.
func (e *Engine) TryMove(src, dst Position) bool {
	if !e.guard("move") || !e.movable(src, dst) {
		return false
	}
	if !e.CanMove(src, dst) {
		return false
	}
	e.commitMove(src, dst)
	return true
}

// TryFreeMove moves the block at src to the empty cell dst without a path,
// spending one free move.
func (e *Engine) TryFreeMove(src, dst Position) bool {
	if !e.guard("free move") || e.freeMoves <= 0 || !e.movable(src, dst) {
		return false
	}
	e.freeMoves--
	e.commitMove(src, dst)
	return true
}

// movable checks the cell conditions shared by both kinds of move.
func (e *Engine) movable(src, dst Position) bool {
	if !e.started() || !e.board.InBounds(src) || !e.board.InBounds(dst) {
		return false
	}
	return src != dst && !e.board.IsEmpty(src) && e.board.IsEmpty(dst)
}

// commitMove snapshots the game, moves the block and runs the post-move step.
func (e *Engine) commitMove(src, dst Position) {
	e.history.Push(e.captureState())
	c := e.board.At(src)
	e.board.Set(src, Empty)
	e.board.Set(dst, c)
	e.touch()
	e.logger.Debug("moved block", "from", src.String(), "to", dst.String(), "color", int(c))
	e.nextStep(dst)
}

// nextStep clears lines through the landed block or, if none cleared,
// spawns the next round. Clearing moves count down to the next level.
func (e *Engine) nextStep(last Position) {
	if !e.clearMatches(last) {
		e.populate()
	} else {
		e.linesLeft--
		if e.linesLeft == 0 {
			e.level++
			e.undos++
			e.linesLeft = e.rules.LinesPerLevel
			e.logger.Debug("level up", "level", e.level, "undos", e.undos)
		}
	}
	e.notify()
}

// Undo restores the state before the last move, spending one undo.
func (e *Engine) Undo() bool {
	if !e.guard("undo") || e.undos <= 0 {
		return false
	}
	s, ok := e.history.Pop()
	if !ok {
		return false
	}
	e.restoreState(s)
	e.undos--
	e.logger.Debug("undo", "undos", e.undos, "history", e.history.Len())
	e.notify()
	return true
}

// CanMove reports whether a free path leads from src to dst.
func (e *Engine) CanMove(src, dst Position) bool {
	_, ok := e.GetPath(src, dst)
	return ok
}

// ensureCosts recomputes path costs from src unless the cache already
// holds them for the current board.
func (e *Engine) ensureCosts(src Position) bool {
	if !e.started() || !e.board.InBounds(src) {
		return false
	}
	if e.cache.valid && e.cache.src == src && e.cache.version == e.version {
		return true
	}
	if err := e.finder.ComputeCosts(e.board.cells, e.board.size, src); err != nil {
		e.logger.Error("path costs", "src", src.String(), "err", err)
		e.cache.valid = false
		return false
	}
	e.cache = pathCache{src: src, version: e.version, valid: true}
	return true
}

// GetPath returns the shortest free path from src to dst, both inclusive.
func (e *Engine) GetPath(src, dst Position) ([]Position, bool) {
	if !e.ensureCosts(src) {
		return nil, false
	}
	return e.finder.PathTo(dst)
}

// GetReachablePoints returns the empty cells a block at src can reach.
func (e *Engine) GetReachablePoints(src Position) []Position {
	if !e.ensureCosts(src) {
		return nil
	}
	return e.finder.ReachablePoints()
}

// GetUnreachablePoints returns the empty cells a block at src cannot reach.
func (e *Engine) GetUnreachablePoints(src Position) []Position {
	if !e.ensureCosts(src) {
		return nil
	}
	return e.finder.UnreachablePoints()
}

// Size returns the board side, or 0 before the first Reset.
func (e *Engine) Size() int {
	if !e.started() {
		return 0
	}
	return e.board.Size()
}

// Cell returns the color at p.
func (e *Engine) Cell(p Position) Color {
	if !e.started() {
		return Empty
	}
	return e.board.At(p)
}

// InBounds reports whether p lies on the current board.
func (e *Engine) InBounds(p Position) bool {
	return e.started() && e.board.InBounds(p)
}

// Grid returns a row-major copy of the board.
func (e *Engine) Grid() []Color {
	if !e.started() {
		return nil
	}
	return e.board.Cells()
}

// Rows returns a copy of the board as rows[y][x].
func (e *Engine) Rows() [][]Color {
	if !e.started() {
		return nil
	}
	return e.board.Rows()
}

// Upcoming returns a copy of the queue of colors to spawn next.
func (e *Engine) Upcoming() []Color {
	out := make([]Color, len(e.upcoming))
	copy(out, e.upcoming)
	return out
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// LinesLeft returns the clearing moves left until the next level.
func (e *Engine) LinesLeft() int { return e.linesLeft }

// Undos returns the remaining undo budget.
func (e *Engine) Undos() int { return e.undos }

// FreeMoves returns the remaining free-move budget.
func (e *Engine) FreeMoves() int { return e.freeMoves }

// HistoryLen returns the number of stored undo states.
func (e *Engine) HistoryLen() int { return e.history.Len() }

// FreeCells returns the number of empty cells.
func (e *Engine) FreeCells() int {
	if !e.started() {
		return 0
	}
	return e.board.Free()
}

// Over reports whether the board is full, leaving no move to make.
func (e *Engine) Over() bool {
	return e.started() && e.board.Free() == 0
}

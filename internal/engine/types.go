// Package engine implements the rules of Sevens: a square board of colored
// blocks that are slid along free paths, runs of four or more equal colors
// cleared, and new blocks spawned from an upcoming queue.
// The engine has no knowledge of terminals or input devices.
package engine

import "fmt"

// Color is a cell value. Zero means the cell is empty, 1..K are block colors.
type Color int

// Empty is the value of a cell without a block.
const Empty Color = 0

// Position is a board coordinate. X grows to the right, Y grows downwards.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Adjacent reports whether q is one orthogonal step away from p.
func (p Position) Adjacent(q Position) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

// Rules holds the tunable constants of a game.
type Rules struct {
	Colors           int     // Number of distinct block colors (K)
	MinSize          int     // Smallest accepted board side
	MatchLength      int     // Minimum run length that clears
	LinesPerLevel    int     // Clearing moves needed to advance a level
	BlocksPerLevel   []int   // Blocks queued per spawn round, indexed by level-1
	InitialUndos     int     // Undo budget after reset
	InitialFreeMoves int     // Free-move budget after reset
	InitialQueue     []Color // Upcoming queue after reset
}

// DefaultRules returns the classic rule set.
func DefaultRules() Rules {
	return Rules{
		Colors:           5,
		MinSize:          7,
		MatchLength:      4,
		LinesPerLevel:    40,
		BlocksPerLevel:   []int{3, 4, 5},
		InitialUndos:     2,
		InitialFreeMoves: 0,
		InitialQueue:     []Color{1, 2, 3},
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	switch {
	case r.Colors < 1:
		return fmt.Errorf("%w: colors must be positive, got %d", ErrInvalidRules, r.Colors)
	case r.MinSize < 1:
		return fmt.Errorf("%w: min size must be positive, got %d", ErrInvalidRules, r.MinSize)
	case r.MatchLength < 2:
		return fmt.Errorf("%w: match length must be at least 2, got %d", ErrInvalidRules, r.MatchLength)
	case r.LinesPerLevel < 1:
		return fmt.Errorf("%w: lines per level must be positive, got %d", ErrInvalidRules, r.LinesPerLevel)
	case len(r.BlocksPerLevel) == 0:
		return fmt.Errorf("%w: blocks per level table is empty", ErrInvalidRules)
	case r.InitialUndos < 0 || r.InitialFreeMoves < 0:
		return fmt.Errorf("%w: initial budgets must not be negative", ErrInvalidRules)
	}
	for i, n := range r.BlocksPerLevel {
		if n < 1 {
			return fmt.Errorf("%w: blocks per level[%d] must be positive, got %d", ErrInvalidRules, i, n)
		}
	}
	for i, c := range r.InitialQueue {
		if c < 1 || int(c) > r.Colors {
			return fmt.Errorf("%w: initial queue[%d] = %d is not a color in 1..%d", ErrInvalidRules, i, c, r.Colors)
		}
	}
	return nil
}

// blocksForLevel returns how many blocks are queued per round at level.
// Levels past the end of the table reuse its last entry.
func (r Rules) blocksForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	if level > len(r.BlocksPerLevel) {
		return r.BlocksPerLevel[len(r.BlocksPerLevel)-1]
	}
	return r.BlocksPerLevel[level-1]
}

// Package registry provides a global registry for game variant factories.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/sevens/internal/core"
)

// Game is the interface the terminal front end drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping and rendering.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "sevens", "sevens9").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig) error

	// Step applies one frame of input.
	// Returns the result including the current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, level, game over).
	State() core.GameState
}

// Sized is implemented by variants played on a fixed board side.
type Sized interface {
	BoardSize() int
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID        string
	Title     string
	BoardSize int // 0 when the variant does not implement Sized
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Read the metadata from a temporary instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if sz, ok := g.(Sized); ok {
		info.BoardSize = sz.BoardSize()
	}
	infos[id] = info
}

// List returns information about all registered games, ordered by board
// size and then by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	// Smaller boards first, then by ID
	sort.Slice(result, func(i, j int) bool {
		if result[i].BoardSize != result[j].BoardSize {
			return result[i].BoardSize < result[j].BoardSize
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

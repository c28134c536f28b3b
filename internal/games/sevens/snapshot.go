package sevens

import "github.com/vovakirdan/sevens/internal/engine"

// Snapshot captures the adapter state alongside the engine's.
type Snapshot struct {
	Variant  string
	Cursor   engine.Position
	Selected *engine.Position // nil when nothing is selected
	FreeMode bool
	Moves    int
	Message  string
	Engine   engine.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Variant:  g.variant.ID,
		Cursor:   g.cursor,
		FreeMode: g.freeMode,
		Moves:    g.moves,
		Message:  g.message,
	}
	if g.hasSel {
		sel := g.selected
		s.Selected = &sel
	}
	if g.engine != nil {
		s.Engine = g.engine.Snapshot()
	}
	return s
}

package engine

import "math/rand"

// Spawner draws spawn positions and upcoming colors.
type Spawner struct {
	rng   *rand.Rand
	rules Rules
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, rules Rules) *Spawner {
	return &Spawner{rng: rng, rules: rules}
}

// PickEmpty draws random cells until it finds an empty one. The board must
// have at least one free cell.
func (s *Spawner) PickEmpty(b *Board) Position {
	for {
		p := Pos(s.rng.Intn(b.Size()), s.rng.Intn(b.Size()))
		if b.IsEmpty(p) {
			return p
		}
	}
}

// Refill returns the colors to queue after a spawn round at level.
func (s *Spawner) Refill(level int) []Color {
	n := s.rules.blocksForLevel(level)
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color(1 + s.rng.Intn(s.rules.Colors))
	}
	return colors
}

// populate places queued blocks on random empty cells until the queue or
// the free cells run out, then queues the next round. A placed block may
// complete a line and clear at once.
func (e *Engine) populate() {
	placed := 0
	for len(e.upcoming) > 0 && e.board.Free() > 0 {
		p := e.spawner.PickEmpty(e.board)
		c := e.upcoming[0]
		e.upcoming = e.upcoming[1:]
		e.board.Set(p, c)
		e.touch()
		placed++
		e.clearMatches(p)
	}

	e.upcoming = append(e.upcoming, e.spawner.Refill(e.level)...)
	e.logger.Debug("spawned blocks",
		"placed", placed,
		"free", e.board.Free(),
		"queued", len(e.upcoming),
	)
}

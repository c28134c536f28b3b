package sevens

import (
	"math/rand"

	"github.com/vovakirdan/sevens/internal/engine"
)

// AutoplayResult summarizes a headless game.
type AutoplayResult struct {
	Moves     int
	FreeMoves int
	Undos     int
	Final     engine.Snapshot
}

// Autoplay plays random legal moves on e until the board fills or
// maxMoves is reached. A non-positive maxMoves means no limit.
// It picks a random block and a random cell the block can reach; when no
// block can move it spends a free move if one is left.
func Autoplay(e *engine.Engine, rng *rand.Rand, maxMoves int) AutoplayResult {
	var res AutoplayResult
	for !e.Over() && (maxMoves <= 0 || res.Moves < maxMoves) {
		if src, dst, ok := randomMove(e, rng); ok && e.TryMove(src, dst) {
			res.Moves++
			continue
		}
		if src, dst, ok := randomFreeMove(e, rng); ok && e.TryFreeMove(src, dst) {
			res.Moves++
			res.FreeMoves++
			continue
		}
		break
	}
	res.Undos = e.Undos()
	res.Final = e.Snapshot()
	return res
}

// randomMove picks a random block with at least one reachable cell and a
// random destination among those cells.
func randomMove(e *engine.Engine, rng *rand.Rand) (engine.Position, engine.Position, bool) {
	blocks := occupied(e)
	rng.Shuffle(len(blocks), func(i, j int) { blocks[i], blocks[j] = blocks[j], blocks[i] })
	for _, src := range blocks {
		targets := e.GetReachablePoints(src)
		if len(targets) == 0 {
			continue
		}
		return src, targets[rng.Intn(len(targets))], true
	}
	return engine.Position{}, engine.Position{}, false
}

func randomFreeMove(e *engine.Engine, rng *rand.Rand) (engine.Position, engine.Position, bool) {
	if e.FreeMoves() <= 0 {
		return engine.Position{}, engine.Position{}, false
	}
	blocks := occupied(e)
	var holes []engine.Position
	for i, c := range e.Grid() {
		if c == engine.Empty {
			holes = append(holes, engine.Pos(i%e.Size(), i/e.Size()))
		}
	}
	if len(blocks) == 0 || len(holes) == 0 {
		return engine.Position{}, engine.Position{}, false
	}
	return blocks[rng.Intn(len(blocks))], holes[rng.Intn(len(holes))], true
}

func occupied(e *engine.Engine) []engine.Position {
	var out []engine.Position
	for i, c := range e.Grid() {
		if c != engine.Empty {
			out = append(out, engine.Pos(i%e.Size(), i/e.Size()))
		}
	}
	return out
}

package engine

// GameState is a deep copy of the undoable part of a game.
type GameState struct {
	cells     []Color
	upcoming  []Color
	score     int
	linesLeft int
	level     int
}

// captureState copies the engine's current undoable state.
func (e *Engine) captureState() GameState {
	upcoming := make([]Color, len(e.upcoming))
	copy(upcoming, e.upcoming)
	return GameState{
		cells:     e.board.Cells(),
		upcoming:  upcoming,
		score:     e.score,
		linesLeft: e.linesLeft,
		level:     e.level,
	}
}

// restoreState writes s back into the engine. The snapshot's buffers are
// copied so the history never shares storage with the live game.
func (e *Engine) restoreState(s GameState) {
	e.board.restore(s.cells)
	e.upcoming = make([]Color, len(s.upcoming))
	copy(e.upcoming, s.upcoming)
	e.score = s.score
	e.linesLeft = s.linesLeft
	e.level = s.level
	e.touch()
}

// History is a stack of game states, newest last.
type History struct {
	states []GameState
}

// Push stores s on top of the stack.
func (h *History) Push(s GameState) {
	h.states = append(h.states, s)
}

// Pop removes and returns the newest state.
func (h *History) Pop() (GameState, bool) {
	if len(h.states) == 0 {
		return GameState{}, false
	}
	last := len(h.states) - 1
	s := h.states[last]
	h.states[last] = GameState{}
	h.states = h.states[:last]
	return s, true
}

// Len returns the number of stored states.
func (h *History) Len() int {
	return len(h.states)
}

// Clear drops every stored state.
func (h *History) Clear() {
	h.states = nil
}

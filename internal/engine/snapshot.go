package engine

// Snapshot captures the observable game state for determinism tests and
// replay comparison.
type Snapshot struct {
	Size      int
	Cells     []Color
	Upcoming  []Color
	Score     int
	Level     int
	LinesLeft int
	Undos     int
	FreeMoves int
	FreeCells int
	History   int
	Over      bool
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Size:      e.Size(),
		Cells:     e.Grid(),
		Upcoming:  e.Upcoming(),
		Score:     e.score,
		Level:     e.level,
		LinesLeft: e.linesLeft,
		Undos:     e.undos,
		FreeMoves: e.freeMoves,
		FreeCells: e.FreeCells(),
		History:   e.history.Len(),
		Over:      e.Over(),
	}
}

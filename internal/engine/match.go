package engine

// rays lists the eight unit offsets. Entries 2i and 2i+1 point in opposite
// directions and together form one line through the center.
var rays = [8]Position{
	{X: 1, Y: 0}, {X: -1, Y: 0}, // horizontal
	{X: 0, Y: 1}, {X: 0, Y: -1}, // vertical
	{X: 1, Y: 1}, {X: -1, Y: -1}, // main diagonal
	{X: 1, Y: -1}, {X: -1, Y: 1}, // anti-diagonal
}

// Match describes the runs through a center cell.
type Match struct {
	Center Position
	Color  Color
	Cells  []Position // Ray cells of matching lines, center excluded
	Pairs  int        // Number of lines that reached the match length
	RaySum int        // Total ray length of the matching lines
}

// Matched reports whether at least one line cleared.
func (m Match) Matched() bool {
	return m.Pairs > 0
}

// Bonus reports whether the match earns a free move, which happens when
// more than one line clears at once.
func (m Match) Bonus() bool {
	return m.Pairs > 1
}

// Points returns the score awarded for the match.
func (m Match) Points() int {
	if !m.Matched() {
		return 0
	}
	return 1 + m.Pairs*m.RaySum
}

// ScanMatches finds every line through p holding at least minRun blocks of
// p's color. It does not modify the board. An empty center never matches.
func ScanMatches(b *Board, p Position, minRun int) Match {
	m := Match{Center: p, Color: b.At(p)}
	if m.Color == Empty {
		return m
	}

	var lengths [8]int
	for i, d := range rays {
		cur := p.Add(d)
		for b.InBounds(cur) && b.At(cur) == m.Color {
			lengths[i]++
			cur = cur.Add(d)
		}
	}

	for line := 0; line < 4; line++ {
		a, z := 2*line, 2*line+1
		if 1+lengths[a]+lengths[z] < minRun {
			continue
		}
		m.Pairs++
		m.RaySum += lengths[a] + lengths[z]
		for _, r := range [2]int{a, z} {
			cur := p
			for i := 0; i < lengths[r]; i++ {
				cur = cur.Add(rays[r])
				m.Cells = append(m.Cells, cur)
			}
		}
	}
	return m
}

// clearMatches scans at p and, when a line matched, removes the matched
// blocks, grants the bonus free move and adds the points to the score.
func (e *Engine) clearMatches(p Position) bool {
	m := ScanMatches(e.board, p, e.rules.MatchLength)
	if !m.Matched() {
		return false
	}

	for _, c := range m.Cells {
		e.board.Set(c, Empty)
	}
	e.board.Set(p, Empty)
	if m.Bonus() {
		e.freeMoves++
	}
	e.score += m.Points()
	e.touch()

	e.logger.Debug("cleared blocks",
		"at", p.String(),
		"color", int(m.Color),
		"cells", len(m.Cells)+1,
		"lines", m.Pairs,
		"points", m.Points(),
		"score", e.score,
	)
	return true
}

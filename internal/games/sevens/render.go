package sevens

import (
	"fmt"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/sevens/internal/core"
	"github.com/vovakirdan/sevens/internal/engine"
)

const (
	cellWidth = 3 // Columns per board cell: cursor bracket, glyph, cursor bracket
	hudHeight = 4 // HUD lines above the board, including a spacer
	footer    = 2 // Message and controls lines below the board
	minWidth  = 34
)

const (
	glyphBlock    = '●'
	glyphSelected = '◉'
	glyphEmpty    = '·'
	glyphPath     = '•'
	glyphTarget   = '○'
)

// blockColors maps engine colors 1..K to screen colors.
var blockColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
	core.ColorWhite,
	core.ColorRed,
	core.ColorGreen,
}

// BlockColor returns the screen color of an engine color.
func BlockColor(c engine.Color) core.Color {
	if c == engine.Empty {
		return core.ColorGray
	}
	return blockColors[int(c-1)%len(blockColors)]
}

// layoutSize returns the screen area needed for a size×size board.
func layoutSize(size int) (int, int) {
	boardW, boardH := size*cellWidth+2, size+2
	return max(boardW, minWidth), hudHeight + boardH + footer
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.engine.Size()
	boardW, boardH := size*cellWidth+2, size+2
	areaW, _ := layoutSize(size)
	areaX := max((g.screenW-areaW)/2, 0)
	board := core.NewRect(areaX+(areaW-boardW)/2, hudHeight, boardW, boardH)

	g.renderHUD(dst, core.NewRect(areaX, 0, areaW, hudHeight))
	g.renderBoard(dst, board)
	g.renderFooter(dst, areaX, board.Bottom())

	if g.engine.Over() {
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", g.engine.Score()), "Press R to restart"}
		if g.engine.Undos() > 0 && g.engine.HistoryLen() > 0 {
			lines = append(lines, "or U to undo")
		}
		g.drawOverlay(dst, board.X+board.W/2, board.Y+board.H/2, lines...)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

// renderHUD draws the title, counters and the upcoming blocks.
func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	e := g.engine
	title := fmt.Sprintf("SEVENS %dx%d", e.Size(), e.Size())
	dst.DrawTextColored(area.X+(area.W-len(title))/2, 0, title, core.ColorBrightYellow)

	stats := fmt.Sprintf("Score: %d  Level: %d  Lines: %d", e.Score(), e.Level(), e.LinesLeft())
	dst.DrawText(area.X, 1, stats)

	res := fmt.Sprintf("Undo: %d  Free: %d  Next: ", e.Undos(), e.FreeMoves())
	dst.DrawText(area.X, 2, res)
	x := area.X + len(res)
	for _, c := range e.Upcoming() {
		dst.SetColored(x, 2, glyphBlock, BlockColor(c))
		x++
	}
}

// renderBoard draws the frame, the cells, the move preview and the cursor.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	e := g.engine
	frame := core.ColorGray
	if g.freeMode {
		frame = core.ColorBrightCyan
	}
	dst.DrawBox(r, frame)

	reach, unreach, path := g.preview()

	for y := 0; y < e.Size(); y++ {
		for x := 0; x < e.Size(); x++ {
			p := engine.Pos(x, y)
			px, py := cellOrigin(r, p)
			c := e.Cell(p)

			switch {
			case c != engine.Empty && g.hasSel && p == g.selected:
				dst.SetColored(px, py, glyphSelected, BlockColor(c))
			case c != engine.Empty:
				dst.SetColored(px, py, glyphBlock, BlockColor(c))
			case path.Has(p) && p == g.cursor:
				dst.SetColored(px, py, glyphTarget, core.ColorBrightYellow)
			case path.Has(p):
				dst.SetColored(px, py, glyphPath, core.ColorYellow)
			case g.hasSel && g.freeMode:
				dst.SetColored(px, py, glyphEmpty, core.ColorCyan)
			case reach.Has(p):
				dst.SetColored(px, py, glyphEmpty, core.ColorGreen)
			case unreach.Has(p):
				dst.SetColored(px, py, glyphEmpty, core.ColorRed)
			default:
				dst.SetColored(px, py, glyphEmpty, core.ColorGray)
			}
		}
	}

	cursor := core.ColorBrightWhite
	if g.hasSel && !g.freeMode && e.Cell(g.cursor) == engine.Empty && !reach.Has(g.cursor) {
		cursor = core.ColorBrightRed
	}
	px, py := cellOrigin(r, g.cursor)
	dst.SetColored(px-1, py, '[', cursor)
	dst.SetColored(px+1, py, ']', cursor)
}

// preview collects the reachability marks and the path to the cursor for
// the selected block. Free mode ignores paths, so it marks nothing.
func (g *Game) preview() (reach, unreach, path mapset.Set[engine.Position]) {
	reach = mapset.New[engine.Position]()
	unreach = mapset.New[engine.Position]()
	path = mapset.New[engine.Position]()
	if !g.hasSel || g.freeMode {
		return reach, unreach, path
	}

	for _, p := range g.engine.GetReachablePoints(g.selected) {
		reach.Put(p)
	}
	for _, p := range g.engine.GetUnreachablePoints(g.selected) {
		unreach.Put(p)
	}
	if steps, ok := g.engine.GetPath(g.selected, g.cursor); ok {
		for _, p := range steps[1:] {
			path.Put(p)
		}
	}
	return reach, unreach, path
}

// cellOrigin returns the screen position of a cell's glyph.
func cellOrigin(r core.Rect, p engine.Position) (int, int) {
	return r.X + 1 + p.X*cellWidth + 1, r.Y + 1 + p.Y
}

// renderFooter draws the status message and the control hints.
func (g *Game) renderFooter(dst *core.Screen, x, y int) {
	switch {
	case g.freeMode:
		dst.DrawTextColored(x, y, "FREE MOVE  "+g.message, core.ColorBrightCyan)
	case g.message != "":
		dst.DrawTextColored(x, y, g.message, core.ColorBrightWhite)
	}
	dst.DrawTextColored(x, y+1, g.Controls(), core.ColorGray)
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightRed
		}
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}

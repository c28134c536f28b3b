package engine

import "fmt"

// Board is a square grid of cells stored row-major in a flat buffer.
// It tracks the number of empty cells alongside the buffer.
type Board struct {
	size  int
	cells []Color
	free  int
}

// NewBoard creates an empty board of the given side.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Board{
		size:  size,
		cells: make([]Color, size*size),
		free:  size * size,
	}, nil
}

// BoardFromRows builds a board from rows of colors, rows[y][x].
// The rows must form a square.
func BoardFromRows(rows [][]Color) (*Board, error) {
	size := len(rows)
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, y, len(row), size)
		}
		for x, c := range row {
			b.Set(Pos(x, y), c)
		}
	}
	return b, nil
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// Free returns the number of empty cells.
func (b *Board) Free() int {
	return b.free
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

// index converts a position to its offset in the cell buffer.
func (b *Board) index(p Position) int {
	return p.Y*b.size + p.X
}

// At returns the color at p. Out-of-bounds positions read as Empty.
func (b *Board) At(p Position) Color {
	if !b.InBounds(p) {
		return Empty
	}
	return b.cells[b.index(p)]
}

// Set stores c at p and keeps the free-cell count in step.
// Out-of-bounds positions are ignored.
func (b *Board) Set(p Position, c Color) {
	if !b.InBounds(p) {
		return
	}
	i := b.index(p)
	switch {
	case b.cells[i] == Empty && c != Empty:
		b.free--
	case b.cells[i] != Empty && c == Empty:
		b.free++
	}
	b.cells[i] = c
}

// IsEmpty reports whether p is on the board and holds no block.
func (b *Board) IsEmpty(p Position) bool {
	return b.InBounds(p) && b.cells[b.index(p)] == Empty
}

// Cells returns a copy of the row-major cell buffer.
func (b *Board) Cells() []Color {
	out := make([]Color, len(b.cells))
	copy(out, b.cells)
	return out
}

// Rows returns a copy of the board as rows[y][x].
func (b *Board) Rows() [][]Color {
	rows := make([][]Color, b.size)
	for y := 0; y < b.size; y++ {
		rows[y] = make([]Color, b.size)
		copy(rows[y], b.cells[y*b.size:(y+1)*b.size])
	}
	return rows
}

// Clone returns a deep copy that shares no storage with b.
func (b *Board) Clone() *Board {
	return &Board{
		size:  b.size,
		cells: b.Cells(),
		free:  b.free,
	}
}

// restore replaces the cell buffer with a copy of cells and recounts the
// free cells. len(cells) must equal size².
func (b *Board) restore(cells []Color) {
	copy(b.cells, cells)
	b.free = 0
	for _, c := range b.cells {
		if c == Empty {
			b.free++
		}
	}
}

// Occupied returns the number of cells holding a block.
func (b *Board) Occupied() int {
	return len(b.cells) - b.free
}

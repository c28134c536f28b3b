package engine

import (
	"errors"
	"testing"
)

func TestBoardFreeCount(t *testing.T) {
	b, err := NewBoard(3)
	if err != nil {
		t.Fatalf("NewBoard() error: %v", err)
	}
	if b.Free() != 9 {
		t.Fatalf("Free() = %d, want 9", b.Free())
	}

	b.Set(Pos(0, 0), 2)
	b.Set(Pos(0, 0), 3) // recolor keeps the count
	b.Set(Pos(2, 2), 1)
	b.Set(Pos(5, 5), 1) // ignored
	if b.Free() != 7 {
		t.Errorf("Free() = %d, want 7", b.Free())
	}

	b.Set(Pos(0, 0), Empty)
	if b.Free() != 8 {
		t.Errorf("Free() = %d, want 8", b.Free())
	}
	if b.At(Pos(-1, 0)) != Empty {
		t.Error("out-of-bounds At should read Empty")
	}
}

func TestBoardFromRows(t *testing.T) {
	b, err := BoardFromRows([][]Color{
		{1, 0},
		{0, 2},
	})
	if err != nil {
		t.Fatalf("BoardFromRows() error: %v", err)
	}
	if b.At(Pos(0, 0)) != 1 || b.At(Pos(1, 1)) != 2 || b.Free() != 2 {
		t.Errorf("unexpected board: %v free=%d", b.Rows(), b.Free())
	}

	_, err = BoardFromRows([][]Color{{1, 0}, {0}})
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("ragged rows error = %v, want ErrInvalidSize", err)
	}
	if _, err := NewBoard(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewBoard(0) error = %v, want ErrInvalidSize", err)
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b, _ := NewBoard(4)
	b.Set(Pos(1, 1), 3)
	c := b.Clone()
	c.Set(Pos(1, 1), Empty)
	c.Set(Pos(2, 2), 4)

	if b.At(Pos(1, 1)) != 3 || b.At(Pos(2, 2)) != Empty {
		t.Error("Clone shares cells with the original")
	}
	if b.Free() != 15 || c.Free() != 15 {
		t.Errorf("Free() = %d/%d, want 15/15", b.Free(), c.Free())
	}
}

func TestPositionAdjacent(t *testing.T) {
	p := Pos(2, 2)
	tests := []struct {
		q    Position
		want bool
	}{
		{Pos(2, 1), true},
		{Pos(3, 2), true},
		{Pos(3, 3), false},
		{Pos(2, 2), false},
		{Pos(4, 2), false},
	}
	for _, tt := range tests {
		if got := p.Adjacent(tt.q); got != tt.want {
			t.Errorf("%v.Adjacent(%v) = %v, want %v", p, tt.q, got, tt.want)
		}
	}
}

package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetColored(2, 3, '●', ColorRed)
	if c := s.GetCell(2, 3); c.Rune != '●' || c.Color != ColorRed {
		t.Errorf("GetCell(2, 3) = %+v, expected red dot", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetColored(0, -1, 'A', ColorBlue)
	s.SetColored(0, 100, 'A', ColorBlue)

	if s.Get(-1, 0) != ' ' || s.GetCell(100, 0) != blank {
		t.Error("Out of bounds Get should return a blank")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(s.Bounds(), 'X', ColorGreen)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(1, 0, "héllo", ColorCyan)

	if got := s.Row(0); got != " héllo    " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(2, 0).Color != ColorCyan {
		t.Error("text should keep its color")
	}

	// Clipped at the right edge
	s.DrawText(8, 1, "abc")
	if got := s.Row(1); got != "        ab" {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(s.Bounds(), ColorGray)

	expected := "┌───┐\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("DrawBox result:\n%s\nexpected:\n%s", s.String(), expected)
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box should use the given color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 2, 'X', ColorYellow)
	s.Set(4, 4, 'Y')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize(3, 3) gave %dx%d", s.Width(), s.Height())
	}
	if c := s.GetCell(2, 2); c.Rune != 'X' || c.Color != ColorYellow {
		t.Errorf("content at (2, 2) lost: %+v", c)
	}

	s.Resize(6, 4)
	if s.Get(5, 3) != ' ' || s.Get(2, 2) != 'X' {
		t.Error("growing should keep old content and blank the rest")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 || lines[0] != "ab " || lines[1] != "   " {
		t.Errorf("String() = %q", s.String())
	}
	if s.Row(5) != "   " {
		t.Errorf("Row(5) = %q, expected spaces", s.Row(5))
	}
}

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionUp, ActionSelect)
	if !f.Has(ActionUp) || !f.Has(ActionSelect) || f.Has(ActionUndo) {
		t.Errorf("FrameOf() = %v", f.Actions)
	}
	if f.Empty() {
		t.Error("Empty() = true for a frame with actions")
	}
	f.Clear()
	if !f.Empty() {
		t.Error("Empty() = false after Clear")
	}

	var zero InputFrame
	if zero.Has(ActionUp) || !zero.Empty() {
		t.Error("zero frame should be empty")
	}
	if ActionFreeMove.String() != "FreeMove" || Action(99).String() != "Unknown" {
		t.Error("unexpected Action.String()")
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		code string
		bold bool
	}{
		{ColorDefault, "", false},
		{ColorRed, "1", false},
		{ColorBrightCyan, "14", true},
		{ColorOrange, "208", true},
		{ColorGray, "240", false},
		{Color(NumColors), "", false},
	}
	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.code {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tt.c, got, tt.code)
		}
		if got := tt.c.Bold(); got != tt.bold {
			t.Errorf("Color(%d).Bold() = %v, want %v", tt.c, got, tt.bold)
		}
	}
}

package engine

import "testing"

func TestScanMatches(t *testing.T) {
	tests := []struct {
		name   string
		cells  map[Position]Color
		center Position
		pairs  int
		raySum int
		points int
		bonus  bool
	}{
		{
			name:   "three in a row does not clear",
			cells:  map[Position]Color{Pos(0, 0): 1, Pos(1, 0): 1, Pos(2, 0): 1},
			center: Pos(2, 0),
		},
		{
			name:   "four horizontal, center at end",
			cells:  map[Position]Color{Pos(0, 0): 1, Pos(1, 0): 1, Pos(2, 0): 1, Pos(3, 0): 1},
			center: Pos(3, 0),
			pairs:  1, raySum: 3, points: 4,
		},
		{
			name:   "five vertical, center in the middle",
			cells:  map[Position]Color{Pos(4, 0): 2, Pos(4, 1): 2, Pos(4, 2): 2, Pos(4, 3): 2, Pos(4, 4): 2},
			center: Pos(4, 2),
			pairs:  1, raySum: 4, points: 5,
		},
		{
			name:   "diagonal",
			cells:  map[Position]Color{Pos(0, 0): 3, Pos(1, 1): 3, Pos(2, 2): 3, Pos(3, 3): 3},
			center: Pos(1, 1),
			pairs:  1, raySum: 3, points: 4,
		},
		{
			name:   "anti-diagonal",
			cells:  map[Position]Color{Pos(6, 0): 4, Pos(5, 1): 4, Pos(4, 2): 4, Pos(3, 3): 4},
			center: Pos(3, 3),
			pairs:  1, raySum: 3, points: 4,
		},
		{
			name: "other colors break the run",
			cells: map[Position]Color{
				Pos(0, 0): 1, Pos(1, 0): 1, Pos(2, 0): 2, Pos(3, 0): 1, Pos(4, 0): 1,
			},
			center: Pos(1, 0),
		},
		{
			name: "cross earns a bonus",
			cells: map[Position]Color{
				Pos(0, 3): 5, Pos(1, 3): 5, Pos(2, 3): 5, Pos(3, 3): 5,
				Pos(3, 0): 5, Pos(3, 1): 5, Pos(3, 2): 5,
			},
			center: Pos(3, 3),
			pairs:  2, raySum: 6, points: 13, bonus: true,
		},
		{
			name: "short arm of a cross does not count",
			cells: map[Position]Color{
				Pos(0, 3): 5, Pos(1, 3): 5, Pos(2, 3): 5, Pos(3, 3): 5,
				Pos(3, 1): 5, Pos(3, 2): 5,
			},
			center: Pos(3, 3),
			pairs:  1, raySum: 3, points: 4,
		},
		{
			name:   "empty center",
			cells:  map[Position]Color{Pos(0, 0): 1, Pos(1, 0): 1, Pos(2, 0): 1},
			center: Pos(3, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(7)
			if err != nil {
				t.Fatalf("NewBoard() error: %v", err)
			}
			for p, c := range tt.cells {
				b.Set(p, c)
			}
			before := b.Cells()

			m := ScanMatches(b, tt.center, 4)

			if m.Pairs != tt.pairs {
				t.Errorf("Pairs = %d, want %d", m.Pairs, tt.pairs)
			}
			if m.RaySum != tt.raySum {
				t.Errorf("RaySum = %d, want %d", m.RaySum, tt.raySum)
			}
			if m.Points() != tt.points {
				t.Errorf("Points() = %d, want %d", m.Points(), tt.points)
			}
			if m.Bonus() != tt.bonus {
				t.Errorf("Bonus() = %v, want %v", m.Bonus(), tt.bonus)
			}
			if len(m.Cells) != tt.raySum {
				t.Errorf("len(Cells) = %d, want %d", len(m.Cells), tt.raySum)
			}
			for _, p := range m.Cells {
				if b.At(p) != b.At(tt.center) {
					t.Errorf("cell %v has color %d, want %d", p, b.At(p), b.At(tt.center))
				}
			}
			after := b.Cells()
			for i := range before {
				if before[i] != after[i] {
					t.Fatal("ScanMatches modified the board")
				}
			}
		})
	}
}

func TestScanMatchesCustomLength(t *testing.T) {
	b, _ := NewBoard(7)
	b.Set(Pos(0, 0), 1)
	b.Set(Pos(1, 0), 1)
	b.Set(Pos(2, 0), 1)

	if m := ScanMatches(b, Pos(1, 0), 3); m.Pairs != 1 || m.Points() != 3 {
		t.Errorf("match length 3: pairs=%d points=%d, want 1 and 3", m.Pairs, m.Points())
	}
	if m := ScanMatches(b, Pos(1, 0), 5); m.Matched() {
		t.Error("match length 5 should not match three blocks")
	}
}

func TestClearMatchesAppliesResult(t *testing.T) {
	e := newTestEngine(t)
	rows := emptyRows(7)
	for i := 0; i < 4; i++ {
		rows[i][i] = 2
	}
	rows[6][0] = 4
	load(t, e, rows)
	score := e.Score()

	if !e.clearMatches(Pos(2, 2)) {
		t.Fatal("clearMatches() = false, want true")
	}
	if e.Score()-score != 4 {
		t.Errorf("score gained %d, want 4", e.Score()-score)
	}
	if e.FreeCells() != 48 {
		t.Errorf("FreeCells() = %d, want 48", e.FreeCells())
	}
	if e.Cell(Pos(0, 6)) != 4 {
		t.Error("unrelated block was cleared")
	}
	if e.clearMatches(Pos(0, 6)) {
		t.Error("clearMatches() on a lone block = true")
	}
}

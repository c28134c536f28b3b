package engine

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/heap"
)

// Infinite is the distance of a cell the search never reached.
const Infinite = math.MaxInt

// noPrev marks a vertex without a predecessor.
const noPrev = -1

// orthogonal lists the four step directions a block may take.
var orthogonal = [4]Position{
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
}

// frontierItem is an entry of the open set. Stale entries, whose dist is
// larger than the vertex's settled distance, are skipped when popped.
type frontierItem struct {
	idx  int
	dist int
}

// PathFinder computes single-source shortest paths over the empty cells of
// a grid. The source cell takes part in the search even when occupied.
//
// Results are kept in flat arrays addressed by y*size+x and stay valid
// until the next ComputeCosts call. The finder copies the grid, so its
// answers describe the grid as it was at computation time.
type PathFinder struct {
	size     int
	src      Position
	cells    []Color
	dist     []int
	prev     []int
	inSet    []bool
	computed bool
}

// NewPathFinder creates a finder with no computed costs.
func NewPathFinder() *PathFinder {
	return &PathFinder{}
}

// Source returns the source of the last computation.
func (pf *PathFinder) Source() Position {
	return pf.src
}

// Computed reports whether ComputeCosts has succeeded at least once.
func (pf *PathFinder) Computed() bool {
	return pf.computed
}

// ComputeCosts runs the search from src over grid, a row-major buffer of
// size*size cells. The vertex set is {src} ∪ {empty cells}; every edge
// costs one hop.
func (pf *PathFinder) ComputeCosts(grid []Color, size int, src Position) error {
	if size < 1 || len(grid) != size*size {
		return fmt.Errorf("%w: grid of %d cells for side %d", ErrInvalidSize, len(grid), size)
	}
	if src.X < 0 || src.X >= size || src.Y < 0 || src.Y >= size {
		return fmt.Errorf("pathfind: source %v: %w", src, ErrOutOfBounds)
	}

	pf.reset(size)
	copy(pf.cells, grid)
	pf.src = src

	srcIdx := src.Y*size + src.X
	for i, c := range pf.cells {
		pf.inSet[i] = c == Empty || i == srcIdx
	}
	pf.dist[srcIdx] = 0

	open := heap.New[frontierItem](func(a, b frontierItem) bool {
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		return a.idx < b.idx
	})
	open.Push(frontierItem{idx: srcIdx, dist: 0})

	for open.Size() > 0 {
		u, _ := open.Pop()
		if u.dist > pf.dist[u.idx] {
			continue
		}
		ux, uy := u.idx%size, u.idx/size
		for _, d := range orthogonal {
			x, y := ux+d.X, uy+d.Y
			if x < 0 || y < 0 || x >= size || y >= size {
				continue
			}
			v := y*size + x
			if !pf.inSet[v] {
				continue
			}
			if alt := u.dist + 1; alt < pf.dist[v] {
				pf.dist[v] = alt
				pf.prev[v] = u.idx
				open.Push(frontierItem{idx: v, dist: alt})
			}
		}
	}

	pf.computed = true
	return nil
}

// reset sizes the result arrays for a size×size grid and clears them.
func (pf *PathFinder) reset(size int) {
	n := size * size
	if cap(pf.dist) < n {
		pf.cells = make([]Color, n)
		pf.dist = make([]int, n)
		pf.prev = make([]int, n)
		pf.inSet = make([]bool, n)
	}
	pf.cells = pf.cells[:n]
	pf.dist = pf.dist[:n]
	pf.prev = pf.prev[:n]
	pf.inSet = pf.inSet[:n]
	for i := 0; i < n; i++ {
		pf.dist[i] = Infinite
		pf.prev[i] = noPrev
	}
	pf.size = size
	pf.computed = false
}

func (pf *PathFinder) inBounds(p Position) bool {
	return p.X >= 0 && p.X < pf.size && p.Y >= 0 && p.Y < pf.size
}

// Distance returns the hop count from the source to dst.
func (pf *PathFinder) Distance(dst Position) (int, bool) {
	if !pf.computed || !pf.inBounds(dst) {
		return 0, false
	}
	i := dst.Y*pf.size + dst.X
	if !pf.inSet[i] || pf.dist[i] == Infinite {
		return 0, false
	}
	return pf.dist[i], true
}

// PathTo returns the cells from the source to dst, both inclusive.
// It reports false when dst was not reached by the last computation.
func (pf *PathFinder) PathTo(dst Position) ([]Position, bool) {
	n, ok := pf.Distance(dst)
	if !ok {
		return nil, false
	}

	path := make([]Position, n+1)
	i := dst.Y*pf.size + dst.X
	for k := n; k >= 0; k-- {
		path[k] = Position{X: i % pf.size, Y: i / pf.size}
		i = pf.prev[i]
	}
	if path[0] != pf.src {
		return nil, false
	}
	return path, true
}

// ReachablePoints returns the empty cells other than the source that the
// search reached, in row-major order.
func (pf *PathFinder) ReachablePoints() []Position {
	return pf.collect(true)
}

// UnreachablePoints returns the empty cells other than the source that the
// search did not reach, in row-major order.
func (pf *PathFinder) UnreachablePoints() []Position {
	return pf.collect(false)
}

func (pf *PathFinder) collect(reached bool) []Position {
	if !pf.computed {
		return nil
	}
	srcIdx := pf.src.Y*pf.size + pf.src.X
	points := []Position{}
	for i, c := range pf.cells {
		if i == srcIdx || c != Empty {
			continue
		}
		ok := pf.prev[i] != noPrev && pf.dist[i] != Infinite
		if ok == reached {
			points = append(points, Position{X: i % pf.size, Y: i / pf.size})
		}
	}
	return points
}

// Package puzzle implements the sliding-tile ("15-puzzle") engine: seeded
// board generation, row/column slides toward the hole, and solved-state
// queries. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package puzzle

import "fmt"

// Hole is the label of the single empty cell.
const Hole = 0

// Shape describes the board dimensions in cells.
type Shape struct {
	Width  int
	Height int
}

// Area returns the total number of cells.
func (s Shape) Area() int {
	return s.Width * s.Height
}

// Valid reports whether both dimensions are at least 2.
func (s Shape) Valid() bool {
	return s.Width >= 2 && s.Height >= 2
}

// String formats the shape as "WxH", e.g. "4x4".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Point is a cell coordinate on the board.
type Point struct {
	X int
	Y int
}

// Board holds the piece arrangement for one puzzle. Labels are the integers
// 0..w*h-1 where 0 is the hole; every other label's solved position is
// label-1 in row-major order. The cells slice is always a permutation of
// the label range with exactly one hole.
//
// Board is exclusively owned by its creator; all mutation goes through
// SlideFrom / SlideTowards.
type Board struct {
	shape Shape
	cells []int
	hole  int // index of the hole, kept in sync with cells
}

// FromCells builds a board from an explicit arrangement, for staging known
// positions. The cells must be a permutation of 0..w*h-1.
func FromCells(shape Shape, cells []int) (*Board, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("puzzle: invalid shape %s", shape)
	}
	n := shape.Area()
	if len(cells) != n {
		return nil, fmt.Errorf("puzzle: %d cells for %s board, want %d", len(cells), shape, n)
	}
	seen := make([]bool, n)
	for _, piece := range cells {
		if piece < 0 || piece >= n || seen[piece] {
			return nil, fmt.Errorf("puzzle: cells are not a permutation of 0..%d", n-1)
		}
		seen[piece] = true
	}
	b := &Board{shape: shape, cells: append([]int(nil), cells...)}
	b.hole = b.findHole()
	return b, nil
}

// Shape returns the board dimensions.
func (b *Board) Shape() Shape {
	return b.shape
}

// Cells returns a snapshot copy of the piece arrangement, index = y*w+x.
func (b *Board) Cells() []int {
	out := make([]int, len(b.cells))
	copy(out, b.cells)
	return out
}

// At returns the label at the given coordinate.
// Panics if the coordinate is outside the board.
func (b *Board) At(p Point) int {
	return b.cells[b.index(p)]
}

// PositionOf returns the current coordinate of a label.
// Panics if the label is outside 0..w*h-1; an out-of-range label is a
// caller bug, not a runtime condition.
func (b *Board) PositionOf(label int) Point {
	if label < 0 || label >= b.shape.Area() {
		panic(fmt.Sprintf("puzzle: label %d out of range for %s board", label, b.shape))
	}
	if label == Hole {
		return b.point(b.hole)
	}
	for i, piece := range b.cells {
		if piece == label {
			return b.point(i)
		}
	}
	// Unreachable while the permutation invariant holds.
	panic(fmt.Sprintf("puzzle: label %d missing from board", label))
}

// HolePosition returns the current coordinate of the hole.
func (b *Board) HolePosition() Point {
	return b.point(b.hole)
}

// IsSolved reports whether every piece sits at its solved position:
// cells == [1, 2, ..., w*h-1, 0].
func (b *Board) IsSolved() bool {
	n := b.shape.Area()
	for i := 0; i < n-1; i++ {
		if b.cells[i] != i+1 {
			return false
		}
	}
	return b.cells[n-1] == Hole
}

// index converts a coordinate to a cell index, panicking on out-of-board
// coordinates (contract violation).
func (b *Board) index(p Point) int {
	if p.X < 0 || p.X >= b.shape.Width || p.Y < 0 || p.Y >= b.shape.Height {
		panic(fmt.Sprintf("puzzle: point (%d,%d) outside %s board", p.X, p.Y, b.shape))
	}
	return p.Y*b.shape.Width + p.X
}

func (b *Board) point(idx int) Point {
	return Point{X: idx % b.shape.Width, Y: idx / b.shape.Width}
}

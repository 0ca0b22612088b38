package puzzle

import (
	"fmt"
	randv2 "math/rand/v2"
)

// New generates a board deterministically from a seed. The seed feeds a
// ChaCha8 generator that shuffles the solved layout into a uniformly random
// permutation; if that permutation is unreachable from the solved state via
// legal slides, the first two non-hole cells are swapped to fix parity, so
// every generated board is solvable.
//
// Panics if the shape is invalid (both dimensions must be at least 2).
func New(shape Shape, seed Seed) *Board {
	if !shape.Valid() {
		panic(fmt.Sprintf("puzzle: invalid shape %s", shape))
	}

	n := shape.Area()
	cells := make([]int, n)
	for i := 0; i < n-1; i++ {
		cells[i] = i + 1
	}
	cells[n-1] = Hole

	rng := randv2.New(randv2.NewChaCha8(seed))
	rng.Shuffle(n, func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	b := &Board{shape: shape, cells: cells}
	b.hole = b.findHole()
	if !Solvable(shape, cells) {
		b.fixParity()
	}
	return b
}

// NewRandom generates a board from a fresh entropy-sourced seed and returns
// the seed alongside it so callers can persist or display it.
func NewRandom(shape Shape) (*Board, Seed, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, Seed{}, err
	}
	return New(shape, seed), seed, nil
}

// Solvable reports whether the arrangement can reach the solved state via
// legal slides. Every single-tile move is a transposition of the piece
// permutation and changes the hole's taxicab distance from its home corner
// by one, so the two parities must match: an arrangement is solvable iff
// the permutation parity equals the parity of the hole's distance from the
// bottom-right cell.
func Solvable(shape Shape, cells []int) bool {
	n := shape.Area()
	if len(cells) != n {
		panic(fmt.Sprintf("puzzle: %d cells for %s board", len(cells), shape))
	}

	// target[i] = solved index of the piece currently at i.
	target := make([]int, n)
	holeIdx := -1
	for i, piece := range cells {
		if piece == Hole {
			target[i] = n - 1
			holeIdx = i
		} else {
			target[i] = piece - 1
		}
	}
	if holeIdx < 0 {
		panic("puzzle: no hole in cell arrangement")
	}

	// Permutation parity via cycle decomposition: (n - cycles) mod 2.
	seen := make([]bool, n)
	cycles := 0
	for i := range target {
		if seen[i] {
			continue
		}
		cycles++
		for j := i; !seen[j]; j = target[j] {
			seen[j] = true
		}
	}
	permParity := (n - cycles) % 2

	hx, hy := holeIdx%shape.Width, holeIdx/shape.Width
	holeParity := (abs(hx-(shape.Width-1)) + abs(hy-(shape.Height-1))) % 2

	return permParity == holeParity
}

// fixParity swaps the first two non-hole cells, flipping the permutation
// parity without moving the hole.
func (b *Board) fixParity() {
	first := -1
	for i, piece := range b.cells {
		if piece == Hole {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		b.cells[first], b.cells[i] = b.cells[i], b.cells[first]
		return
	}
}

func (b *Board) findHole() int {
	for i, piece := range b.cells {
		if piece == Hole {
			return i
		}
	}
	panic("puzzle: board has no hole")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

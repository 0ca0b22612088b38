package puzzle

// Direction is a compass direction tiles move in during a slide.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit cell offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// SlideFrom performs a row/column slide toward the hole. If origin shares a
// row or column with the hole, every tile between origin and the hole
// (origin inclusive) shifts one cell toward the hole and the hole ends up
// at origin. If origin is unaligned with the hole, or origin is the hole
// itself, nothing moves.
//
// Returns the number of tiles displaced: 0 for a no-op, otherwise the cell
// distance between origin and the hole. The board is unchanged on a
// 0 result. Panics if origin is outside the board.
func (b *Board) SlideFrom(origin Point) int {
	from := b.index(origin)
	hole := b.point(b.hole)

	switch {
	case from == b.hole:
		return 0
	case origin.Y == hole.Y:
		return b.shift(from, sign(b.hole-from))
	case origin.X == hole.X:
		return b.shift(from, sign(b.hole-from)*b.shape.Width)
	default:
		return 0
	}
}

// SlideTowards slides a run of tiles `distance` cells long in the given
// direction, into the hole. It is a thin translation onto SlideFrom: the
// origin is the cell `distance` steps opposite the direction from the hole.
// Returns 0 if the resulting origin falls outside the board or distance is
// not positive.
func (b *Board) SlideTowards(dir Direction, distance int) int {
	if distance < 1 {
		return 0
	}
	dx, dy := dir.Delta()
	hole := b.point(b.hole)
	origin := Point{X: hole.X - dx*distance, Y: hole.Y - dy*distance}
	if origin.X < 0 || origin.X >= b.shape.Width || origin.Y < 0 || origin.Y >= b.shape.Height {
		return 0
	}
	return b.SlideFrom(origin)
}

// shift moves tiles between from and the hole by one cell index step each,
// walking from the hole back to the origin. step is the index stride from
// origin toward the hole (±1 for rows, ±width for columns).
func (b *Board) shift(from, step int) int {
	moved := 0
	for cur := b.hole; cur != from; cur -= step {
		b.cells[cur] = b.cells[cur-step]
		moved++
	}
	b.cells[from] = Hole
	b.hole = from
	return moved
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

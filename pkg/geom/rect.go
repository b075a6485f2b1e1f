package geom

// Rect is the rectangular N×N geometry: two directions (horizontal,
// vertical), 4-neighbour adjacency, cells enumerated row-major by y then x.
type Rect struct {
	n     int
	cells []Cell
	index map[Cell]int
}

// NewRect builds the rectangular geometry of side n. A non-positive n
// yields a geometry with no cells, which cwsat.Validate rejects as a
// precondition error.
func NewRect(n int) *Rect {
	r := &Rect{n: n, index: make(map[Cell]int, n*n)}
	r.cells = make([]Cell, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := Cell{X: x, Y: y}
			r.index[c] = len(r.cells)
			r.cells = append(r.cells, c)
		}
	}
	return r
}

func (r *Rect) Name() string { return "rect" }

func (r *Rect) Cells() []Cell { return r.cells }

func (r *Rect) Directions() []Direction { return []Direction{DirA, DirB} }

func (r *Rect) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < r.n && c.Y >= 0 && c.Y < r.n
}

func (r *Rect) Step(c Cell, d Direction, i int) (Cell, bool) {
	var out Cell
	switch d {
	case DirA: // horizontal
		out = Cell{X: c.X + i, Y: c.Y}
	case DirB: // vertical
		out = Cell{X: c.X, Y: c.Y + i}
	default:
		return Cell{}, false
	}
	if !r.inBounds(out) {
		return Cell{}, false
	}
	return out, true
}

func (r *Rect) Neighbours(c Cell) []Cell {
	candidates := [4]Cell{
		{X: c.X + 1, Y: c.Y},
		{X: c.X - 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
		{X: c.X, Y: c.Y - 1},
	}
	out := make([]Cell, 0, 4)
	for _, n := range candidates {
		if r.inBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

func (r *Rect) BoundBefore(c Cell, d Direction) (Cell, bool) {
	return r.Step(c, d, -1)
}

func (r *Rect) BoundAfter(c Cell, d Direction, length int) (Cell, bool) {
	return r.Step(c, d, length)
}

func (r *Rect) MaxWordLength() int { return r.n }

func (r *Rect) Index(c Cell) int {
	i, ok := r.index[c]
	if !ok {
		panic("geom: Rect.Index of out-of-grid cell")
	}
	return i
}

func (r *Rect) NumCells() int { return len(r.cells) }

// DiameterBound returns ⌊(N+1)²/2⌋ − 1, the safe bound from §4.2.
func (r *Rect) DiameterBound() int {
	n := r.n
	return (n+1)*(n+1)/2 - 1
}

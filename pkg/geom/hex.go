package geom

import "sort"

// Hex is the hexagonal radius-R disk geometry: three directions (axis0,
// axis1, axis2), 6-neighbour adjacency, axial coordinates (q,r) with
// |q|+|r|+|q+r| ≤ 2R, cells enumerated lexicographically by (q,r).
type Hex struct {
	r     int
	cells []Cell
	index map[Cell]int
}

// NewHex builds the hex disk of radius r. A negative r yields no cells and
// r = 0 a single cell; cwsat.Validate rejects both as precondition errors.
func NewHex(r int) *Hex {
	h := &Hex{r: r}
	for q := -2 * r; q <= 2*r; q++ {
		for rr := -2 * r; rr <= 2*r; rr++ {
			if inDisk(q, rr, r) {
				h.cells = append(h.cells, Cell{X: q, Y: rr})
			}
		}
	}
	sort.Slice(h.cells, func(i, j int) bool {
		a, b := h.cells[i], h.cells[j]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	h.index = make(map[Cell]int, len(h.cells))
	for i, c := range h.cells {
		h.index[c] = i
	}
	return h
}

func inDisk(q, r, radius int) bool {
	return abs(q)+abs(r)+abs(q+r) <= 2*radius
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (h *Hex) Name() string { return "hex" }

func (h *Hex) Cells() []Cell { return h.cells }

func (h *Hex) Directions() []Direction { return []Direction{DirA, DirB, DirC} }

func (h *Hex) inBounds(c Cell) bool {
	_, ok := h.index[c]
	return ok
}

func (h *Hex) Step(c Cell, d Direction, i int) (Cell, bool) {
	var out Cell
	switch d {
	case DirA: // axis0: (q+i, r)
		out = Cell{X: c.X + i, Y: c.Y}
	case DirB: // axis1: (q, r+i)
		out = Cell{X: c.X, Y: c.Y + i}
	case DirC: // axis2: (q+i, r-i)
		out = Cell{X: c.X + i, Y: c.Y - i}
	default:
		return Cell{}, false
	}
	if !h.inBounds(out) {
		return Cell{}, false
	}
	return out, true
}

var hexNeighbourOffsets = [6]Cell{
	{X: 1, Y: 0}, {X: -1, Y: 0},
	{X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 1, Y: -1}, {X: -1, Y: 1},
}

func (h *Hex) Neighbours(c Cell) []Cell {
	out := make([]Cell, 0, 6)
	for _, off := range hexNeighbourOffsets {
		n := Cell{X: c.X + off.X, Y: c.Y + off.Y}
		if h.inBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

func (h *Hex) BoundBefore(c Cell, d Direction) (Cell, bool) {
	return h.Step(c, d, -1)
}

func (h *Hex) BoundAfter(c Cell, d Direction, length int) (Cell, bool) {
	return h.Step(c, d, length)
}

// MaxWordLength is the longest straight line through a radius-R disk: 2R+1.
func (h *Hex) MaxWordLength() int { return 2*h.r + 1 }

func (h *Hex) Index(c Cell) int {
	i, ok := h.index[c]
	if !ok {
		panic("geom: Hex.Index of out-of-grid cell")
	}
	return i
}

func (h *Hex) NumCells() int { return len(h.cells) }

// DiameterBound returns ⌊|cells|/2⌋, the safe bound from §4.2.
func (h *Hex) DiameterBound() int { return len(h.cells) / 2 }

// Package geom abstracts the grid a layout is placed on: the set of cells,
// the set of directions, neighbour enumeration, and the "step from cell in
// direction" function. Rect and Hex are the two concrete geometries; the
// encoder is written once against this contract and instantiated against
// both.
package geom

// Cell is an opaque grid coordinate. Its fields are geometry-specific (Rect
// uses X,Y as cartesian coordinates; Hex uses X,Y as the axial pair q,r) —
// callers outside this package should treat Cell as an opaque key and use
// Geometry methods rather than reading the fields directly.
type Cell struct {
	X, Y int
}

// Direction indexes one of a geometry's step axes. Rect defines two (DirA,
// DirB); Hex defines three (DirA, DirB, DirC). A Direction is only
// meaningful relative to the Geometry that produced it.
type Direction int

const (
	DirA Direction = iota
	DirB
	DirC
)

// Geometry is the shared contract implemented by Rect and Hex.
type Geometry interface {
	// Name identifies the geometry for logging and CLI output, e.g. "rect" or "hex".
	Name() string

	// Cells returns every cell in reading order. Reading order is part of
	// the contract: the connectedness encoding's start-cell predicate
	// depends on this order being identical between variable layout and
	// clause emission.
	Cells() []Cell

	// Directions returns the geometry's step axes, in a fixed order.
	Directions() []Direction

	// Step returns the cell i steps from c along d, or ok=false if that
	// cell falls outside the grid. i may be negative.
	Step(c Cell, d Direction, i int) (cell Cell, ok bool)

	// Neighbours returns the cells adjacent to c under the geometry's
	// adjacency relation (4 cardinal for Rect, 6 axial for Hex).
	Neighbours(c Cell) []Cell

	// BoundBefore returns the cell immediately before a placement start at
	// c along d, or ok=false if that position is off-grid.
	BoundBefore(c Cell, d Direction) (cell Cell, ok bool)

	// BoundAfter returns the cell immediately after the last letter of a
	// length-n placement starting at c along d, or ok=false if off-grid.
	BoundAfter(c Cell, d Direction, length int) (cell Cell, ok bool)

	// MaxWordLength is the longest line the geometry can hold along any
	// direction; used for the §4.3.7 precondition check.
	MaxWordLength() int

	// Index maps a cell to its dense 0-based position in Cells()'s
	// reading order. Panics if c is not a cell of this geometry.
	Index(c Cell) int

	// NumCells is len(Cells()).
	NumCells() int

	// DiameterBound returns a safe (not necessarily tight) upper bound D
	// on the graph diameter of any connected, non-empty subset of cells,
	// per §4.2.
	DiameterBound() int
}

// IsLegalPlacement reports whether every letter of a length-n word starting
// at c along d lands on an in-grid cell.
func IsLegalPlacement(g Geometry, c Cell, d Direction, n int) bool {
	for i := 0; i < n; i++ {
		if _, ok := g.Step(c, d, i); !ok {
			return false
		}
	}
	return true
}

package encode

import "github.com/cwsat/crossword/pkg/cwsat/gate"

// encodeBounding implements I3 (§4.3.2): a legal placement implies the
// cells immediately before its start and after its last letter are EMPTY,
// whenever those cells are in-grid.
func (e *Encoder) encodeBounding() {
	l := e.Layout
	for w, placements := range l.Legal {
		n := len([]rune(w))
		for _, p := range placements {
			plit := l.P[p]
			if before, ok := e.Geometry.BoundBefore(p.Cell, p.Dir); ok {
				eq := l.EqualsEmpty(e.C, e.Geometry.Index(before))
				e.assert(gate.Implies(e.C, plit, eq))
			}
			if after, ok := e.Geometry.BoundAfter(p.Cell, p.Dir, n); ok {
				eq := l.EqualsEmpty(e.C, e.Geometry.Index(after))
				e.assert(gate.Implies(e.C, plit, eq))
			}
		}
	}
}

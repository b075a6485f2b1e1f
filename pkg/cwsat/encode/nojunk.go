package encode

import (
	"github.com/irifrance/gini/z"

	"github.com/cwsat/crossword/pkg/cwsat/gate"
	"github.com/cwsat/crossword/pkg/geom"
)

// encodeNoJunk implements I4 (§4.3.4), using the symmetric predicate form
// per §9's open-question resolution (applied uniformly to every axis of
// every geometry, not skipped for some directions the way the source hex
// encoder did).
func (e *Encoder) encodeNoJunk() {
	l := e.Layout
	g := e.Geometry
	c := e.C

	byCellDir := make(map[geom.Cell]map[geom.Direction][]z.Lit)
	for p, lit := range l.P {
		m, ok := byCellDir[p.Cell]
		if !ok {
			m = make(map[geom.Direction][]z.Lit)
			byCellDir[p.Cell] = m
		}
		m[p.Dir] = append(m[p.Dir], lit)
	}

	for _, c0 := range g.Cells() {
		for _, d := range g.Directions() {
			next, ok := g.Step(c0, d, 1)
			if !ok {
				continue
			}
			notEmptyHere := l.EqualsEmpty(c, g.Index(c0)).Not()
			notEmptyNext := l.EqualsEmpty(c, g.Index(next)).Not()

			boundOk := c.T
			if before, ok := g.BoundBefore(c0, d); ok {
				boundOk = l.EqualsEmpty(c, g.Index(before))
			}

			predicate := gate.Ands(c, []z.Lit{notEmptyHere, notEmptyNext, boundOk})
			rhs := gate.Ors(c, byCellDir[c0][d])
			e.assert(gate.Eq(c, predicate, rhs))
		}
	}
}

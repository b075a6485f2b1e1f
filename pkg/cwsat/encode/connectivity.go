package encode

import (
	"github.com/irifrance/gini/z"

	"github.com/cwsat/crossword/pkg/cwsat/gate"
)

// encodeConnectivity implements I5 (§4.3.5): a bounded-diameter BFS
// encoding asserting the non-EMPTY cells form a single connected component
// (or are empty altogether). Relies on cells() being enumerated in the same
// reading order used at variable-layout time (§5's ordering guarantee).
func (e *Encoder) encodeConnectivity() {
	l := e.Layout
	g := e.Geometry
	c := e.C
	cells := g.Cells()

	notEmpty := make([]z.Lit, len(cells))
	for i := range cells {
		notEmpty[i] = l.EqualsEmpty(c, i).Not()
	}

	prefixAllEmpty := c.T
	for k := range cells {
		start := gate.Ands(c, []z.Lit{notEmpty[k], prefixAllEmpty})
		e.assert(gate.Eq(c, l.Start[k], start))
		prefixAllEmpty = c.And(prefixAllEmpty, l.EqualsEmpty(c, k))
	}

	for k := range cells {
		e.assert(gate.Eq(c, l.Reach[k][0], l.Start[k]))
	}

	for i := 1; i <= l.Diameter; i++ {
		for k, cell := range cells {
			terms := make([]z.Lit, 0, len(g.Neighbours(cell))+1)
			terms = append(terms, l.Reach[k][i-1])
			for _, n := range g.Neighbours(cell) {
				terms = append(terms, l.Reach[g.Index(n)][i-1])
			}
			rhs := c.And(notEmpty[k], gate.Ors(c, terms))
			e.assert(gate.Eq(c, l.Reach[k][i], rhs))
		}
	}

	for k := range cells {
		e.assert(gate.Implies(c, notEmpty[k], l.Reach[k][l.Diameter]))
	}
}

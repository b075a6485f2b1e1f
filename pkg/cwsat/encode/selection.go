package encode

import (
	"github.com/irifrance/gini/z"

	"github.com/cwsat/crossword/pkg/cwsat/cardinality"
	"github.com/cwsat/crossword/pkg/cwsat/gate"
)

// encodeSelection implements I1 (§4.3.3): at most one placement per word,
// and S(w) tied to the disjunction of its legal placements. §4.3.3 calls
// the full biconditional "the required form" rather than the one-way
// implication, so both directions are asserted here.
func (e *Encoder) encodeSelection() {
	l := e.Layout
	for _, w := range l.Words {
		placements := l.Legal[w]
		lits := make([]z.Lit, len(placements))
		for i, p := range placements {
			lits[i] = l.P[p]
		}
		e.assert(cardinality.AtMostOne(e.C, lits))
		e.assert(gate.Eq(e.C, l.S[w], gate.Ors(e.C, lits)))
	}
}

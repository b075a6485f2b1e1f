package encode

import (
	"github.com/irifrance/gini/z"

	"github.com/cwsat/crossword/pkg/cwsat/cardinality"
)

// encodeQuality implements I6 (§4.3.6): Σ len(w)·S(w) ≥ Q, via the
// binary-merge cardinality encoder applied to a multiset built by
// repeating each word's S(w) literal len(w) times — the standard reduction
// from a weighted pseudo-Boolean sum to unweighted cardinality when weights
// are small positive integers.
//
// Runs before any other family: if MinQuality exceeds the best quality
// achievable by placing every word, no model can exist regardless of
// geometry, so encoding stops here with TrivialUnsat set rather than
// building the rest of the (necessarily unsatisfiable) formula.
func (e *Encoder) encodeQuality() {
	l := e.Layout

	total := 0
	for _, w := range l.Words {
		total += len(w)
	}
	if e.MinQuality > total {
		e.TrivialUnsat = true
		e.assert(e.C.F)
		return
	}
	if e.MinQuality <= 0 {
		return
	}

	weighted := make([]z.Lit, 0, total)
	for _, w := range l.Words {
		s := l.S[w]
		for i := 0; i < len(w); i++ {
			weighted = append(weighted, s)
		}
	}
	e.assert(cardinality.AtLeastK(e.C, weighted, e.MinQuality))
}

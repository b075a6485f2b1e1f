package encode

import "github.com/cwsat/crossword/pkg/cwsat/gate"

// encodeCharacterCoherence implements I2 (§4.3.1): every legal placement
// implies its letters land on the matching cell-symbol codes.
func (e *Encoder) encodeCharacterCoherence() {
	l := e.Layout
	for w, placements := range l.Legal {
		letters := []rune(w)
		for _, p := range placements {
			plit := l.P[p]
			for i, r := range letters {
				cell, ok := e.Geometry.Step(p.Cell, p.Dir, i)
				if !ok {
					panic("encode: legal placement stepped off-grid during character coherence")
				}
				code := l.CodeOfRune(r)
				eq := l.EqualsCode(e.C, e.Geometry.Index(cell), code)
				e.assert(gate.Implies(e.C, plit, eq))
			}
		}
	}
}

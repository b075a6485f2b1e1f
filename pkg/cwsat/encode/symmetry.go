package encode

import (
	"github.com/cwsat/crossword/pkg/cwsat/vars"
	"github.com/cwsat/crossword/pkg/geom"
)

// encodeSymmetryBreak implements the optional hex symmetry-breaking hook
// from §9: when enabled, pins the longest word to a canonical orientation
// (the hex origin, axis0) to reduce search. Off by default; never emitted
// for the rectangular geometry, which has no analogous hook in the spec.
func (e *Encoder) encodeSymmetryBreak() {
	if e.Symmetry != SymmetryBreakOn || e.Geometry.Name() != "hex" {
		return
	}
	longest := e.longestWord()
	if longest == "" {
		return
	}
	origin := geom.Cell{X: 0, Y: 0}
	p := vars.Placement{Word: longest, Cell: origin, Dir: geom.DirA}
	lit, ok := e.Layout.P[p]
	if !ok {
		// The origin-anchored placement of the longest word isn't legal
		// for this radius; skip rather than assert an undefined pairing.
		return
	}
	e.assert(lit)
}

func (e *Encoder) longestWord() string {
	best := ""
	for _, w := range e.Layout.Words {
		if len(w) > len(best) {
			best = w
		}
	}
	return best
}

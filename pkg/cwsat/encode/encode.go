// Package encode implements the constraint encoder: the six families of
// §4.3, each a method on Encoder, building assertions over a shared
// logic.C circuit and vars.Layout. This is the spec's core — the two
// geometries share every method here, instantiated once per Geometry.
package encode

import (
	"github.com/irifrance/gini/logic"
	"github.com/irifrance/gini/z"

	"github.com/cwsat/crossword/pkg/cwsat/vars"
	"github.com/cwsat/crossword/pkg/geom"
)

// SymmetryBreak controls the optional hex symmetry-breaking hook of §9.
type SymmetryBreak int

const (
	SymmetryBreakOff SymmetryBreak = iota
	SymmetryBreakOn
)

// Encoder builds the constraint families of §4.3 over a Layout, collecting
// top-level assertions (literals that must hold in every model) against a
// shared circuit.
type Encoder struct {
	C          *logic.C
	Layout     *vars.Layout
	Geometry   geom.Geometry
	MinQuality int
	Symmetry   SymmetryBreak

	asserts []z.Lit

	// TrivialUnsat is set when preprocessing determines no model can
	// exist — currently, the quality floor exceeds the maximum quality
	// achievable by placing every word — short-circuiting the remaining
	// families per §4.4/§7's trivial-unsatisfiability path.
	TrivialUnsat bool
}

// New builds an Encoder and its backing Layout for words over g. words must
// already be deduplicated, upper-cased, and have passed precondition
// validation.
func New(g geom.Geometry, words []string, minQuality int, sym SymmetryBreak) *Encoder {
	c := logic.NewC()
	l := vars.Build(c, g, words)
	return &Encoder{C: c, Layout: l, Geometry: g, MinQuality: minQuality, Symmetry: sym}
}

// Encode runs every constraint family in turn and returns the accumulated
// assertions. If the quality precheck sets TrivialUnsat, Encode returns
// immediately with just that family's assertion; callers must check
// TrivialUnsat before handing the circuit to a solver.
func (e *Encoder) Encode() []z.Lit {
	e.encodeQuality()
	if e.TrivialUnsat {
		return e.asserts
	}
	e.encodeCharacterCoherence()
	e.encodeBounding()
	e.encodeSelection()
	e.encodeNoJunk()
	e.encodeConnectivity()
	e.encodeSymmetryBreak()
	return e.asserts
}

func (e *Encoder) assert(m z.Lit) {
	e.asserts = append(e.asserts, m)
}

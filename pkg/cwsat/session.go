package cwsat

import (
	"io"

	"github.com/irifrance/gini/z"

	"github.com/cwsat/crossword/pkg/cwsat/dimacs"
	"github.com/cwsat/crossword/pkg/cwsat/encode"
)

// Session owns one encoding's circuit, layout, and assertions as a unit,
// per §5: an encoding session's memory lives until the formula has been
// exported and the model interpreted, then is released together; sessions
// never share state with one another.
type Session struct {
	Problem Problem
	Encoder *encode.Encoder
	Asserts []z.Lit
}

// NewSession validates and encodes p, without solving.
func NewSession(p Problem) (*Session, error) {
	e, asserts, err := Encode(p)
	if err != nil {
		return nil, err
	}
	return &Session{Problem: p, Encoder: e, Asserts: asserts}, nil
}

// WriteCNF writes the session's formula as DIMACS CNF to w, per §4.4/§6's
// CNF output contract. A trivially unsatisfiable session writes a single
// empty clause rather than the full (pointless) formula, per §4.4's
// "writes an empty-clause CNF" option.
func (s *Session) WriteCNF(w io.Writer) error {
	dw := dimacs.NewWriter()
	if s.Encoder.TrivialUnsat {
		dw.Add(z.LitNull)
		return dw.WriteTo(w)
	}
	s.Encoder.C.ToCnfFrom(dw, s.Asserts...)
	for _, a := range s.Asserts {
		dw.Add(a)
		dw.Add(0)
	}
	return dw.WriteTo(w)
}

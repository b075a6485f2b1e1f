// Package gate provides the small set of boolean-circuit combinators the
// encoder is written in terms of, on top of github.com/irifrance/gini's
// logic.C AND-gate circuit (structural hashing, Tseitin export via ToCnf).
// logic.C exposes And natively; Or, Implies, Eq and multi-arity forms are
// built from And and literal negation here so every family in
// pkg/cwsat/encode shares one small, tested vocabulary.
package gate

import (
	"github.com/irifrance/gini/logic"
	"github.com/irifrance/gini/z"
)

// Or returns a ∨ b, by De Morgan over And: ¬(¬a ∧ ¬b).
func Or(c *logic.C, a, b z.Lit) z.Lit {
	return c.And(a.Not(), b.Not()).Not()
}

// Ands conjoins a slice of literals, folding over And. Returns c.T for an
// empty slice.
func Ands(c *logic.C, ms []z.Lit) z.Lit {
	out := c.T
	for _, m := range ms {
		out = c.And(out, m)
	}
	return out
}

// Ors disjoins a slice of literals, folding over Or. Returns c.F for an
// empty slice.
func Ors(c *logic.C, ms []z.Lit) z.Lit {
	out := c.F
	for _, m := range ms {
		out = Or(c, out, m)
	}
	return out
}

// Implies returns a → b, i.e. ¬a ∨ b.
func Implies(c *logic.C, a, b z.Lit) z.Lit {
	return Or(c, a.Not(), b)
}

// Eq returns the biconditional a ↔ b.
func Eq(c *logic.C, a, b z.Lit) z.Lit {
	return c.And(Implies(c, a, b), Implies(c, b, a))
}

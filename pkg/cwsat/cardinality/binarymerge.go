// Package cardinality implements the binary-merge sorter-network encoding
// §4.4 requires for cardinality and pseudo-Boolean constraints, instead of
// a solver's native PB reasoning: it recursively merges already-sorted
// thermometer-coded sequences, producing CNF that any DIMACS solver can
// consume regardless of native PB support.
package cardinality

import (
	"github.com/irifrance/gini/logic"
	"github.com/irifrance/gini/z"

	"github.com/cwsat/crossword/pkg/cwsat/gate"
)

// Sort returns the thermometer-coded sort of in: a slice of len(in)
// literals where out[k] is true iff at least k+1 of in's literals are true.
// Built by recursively splitting in into two halves, sorting each, and
// merging the two sorted halves — the binary-merge network.
func Sort(c *logic.C, in []z.Lit) []z.Lit {
	if len(in) == 0 {
		return nil
	}
	if len(in) == 1 {
		return []z.Lit{in[0]}
	}
	mid := len(in) / 2
	left := Sort(c, in[:mid])
	right := Sort(c, in[mid:])
	return merge(c, left, right)
}

// reach reports the literal for "at least i of sorted's underlying inputs
// are true", extending a thermometer code with the trivial boundary cases:
// reach(0) is always true, reach(i) for i beyond the code's length is
// always false.
func reach(c *logic.C, sorted []z.Lit, i int) z.Lit {
	switch {
	case i <= 0:
		return c.T
	case i > len(sorted):
		return c.F
	default:
		return sorted[i-1]
	}
}

// merge combines two thermometer-coded sequences into their merged
// thermometer code: for each output rank k (1-indexed "at least k true"),
// OR over every way to split k between a's and b's contributions.
func merge(c *logic.C, a, b []z.Lit) []z.Lit {
	total := len(a) + len(b)
	out := make([]z.Lit, total)
	for k := 1; k <= total; k++ {
		lo := k - len(b)
		if lo < 0 {
			lo = 0
		}
		hi := k
		if hi > len(a) {
			hi = len(a)
		}
		terms := make([]z.Lit, 0, hi-lo+1)
		for i := lo; i <= hi; i++ {
			terms = append(terms, c.And(reach(c, a, i), reach(c, b, k-i)))
		}
		out[k-1] = gate.Ors(c, terms)
	}
	return out
}

// AtMostOne returns the literal asserting that at most one of lits is true.
func AtMostOne(c *logic.C, lits []z.Lit) z.Lit {
	if len(lits) < 2 {
		return c.T
	}
	sorted := Sort(c, lits)
	return sorted[1].Not()
}

// AtLeastK returns the literal asserting that at least k of lits are true.
// Reports c.F directly (an unsatisfiable assertion) when k exceeds len(lits)
// rather than indexing out of range — callers that care about distinguishing
// this from "encode and let the solver find UNSAT" should check k against
// len(lits) themselves first.
func AtLeastK(c *logic.C, lits []z.Lit, k int) z.Lit {
	if k <= 0 {
		return c.T
	}
	if k > len(lits) {
		return c.F
	}
	sorted := Sort(c, lits)
	return sorted[k-1]
}

// Package interpret recovers a placement list from a satisfying assignment,
// per §4.5: the model interpreter.
package interpret

import (
	"fmt"

	"github.com/irifrance/gini/z"

	"github.com/cwsat/crossword/pkg/cwsat/vars"
)

// Valuer reports the solved truth value of a circuit literal. gini's
// top-level solver type satisfies this after a successful Solve.
type Valuer interface {
	Value(m z.Lit) bool
}

// ErrMultiplePlacements indicates an encoder defect: a word whose model has
// more than one true P variable, which I1's at-most-one constraint should
// have ruled out. Per §4.5/§7 this is fatal, never surfaced as ordinary
// UNSAT.
type ErrMultiplePlacements struct {
	Word string
}

func (e *ErrMultiplePlacements) Error() string {
	return fmt.Sprintf("interpret: word %q has multiple true placements in the model", e.Word)
}

// Model recovers the placement list from a satisfying assignment: for every
// word with S(w) true, the unique (c,d) with P(w,c,d) true. Words with
// S(w) false are absent from the result, per §4.5.
func Model(l *vars.Layout, val Valuer) ([]vars.Placement, error) {
	var out []vars.Placement
	for _, w := range l.Words {
		s, ok := l.S[w]
		if !ok || !val.Value(s) {
			continue
		}
		var found *vars.Placement
		for _, p := range l.Legal[w] {
			if !val.Value(l.P[p]) {
				continue
			}
			if found != nil {
				return nil, &ErrMultiplePlacements{Word: w}
			}
			p := p
			found = &p
		}
		if found == nil {
			return nil, fmt.Errorf("interpret: word %q selected but no placement is true in the model", w)
		}
		out = append(out, *found)
	}
	return out, nil
}

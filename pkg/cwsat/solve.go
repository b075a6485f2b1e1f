package cwsat

import (
	"time"

	"github.com/irifrance/gini"

	"github.com/cwsat/crossword/pkg/cwsat/dimacs"
)

// SolveOptions controls the in-process solve step. A zero Timeout means no
// deadline: Solve blocks until gini returns a verdict. The encoder itself
// is purely sequential and has no notion of a timeout (§5) — Timeout here
// belongs to the external solver collaborator's wall clock, not the
// encoder.
type SolveOptions struct {
	Timeout time.Duration
}

// Solve validates p, encodes it, and runs gini's CDCL search in-process.
// Returns a Result with Outcome TrivialUnsat/Unsat/Timeout/Sat rather than
// an error for any of those — only precondition and interpretation
// failures (§7) are returned as errors.
func Solve(p Problem, opts SolveOptions) (*Result, error) {
	s, err := NewSession(p)
	if err != nil {
		return nil, err
	}
	return s.Solve(opts)
}

// Solve runs the in-process solver over an already-encoded Session.
func (s *Session) Solve(opts SolveOptions) (*Result, error) {
	if s.Encoder.TrivialUnsat {
		return &Result{Outcome: TrivialUnsat}, nil
	}

	w := dimacs.NewWriter()
	s.Encoder.C.ToCnfFrom(w, s.Asserts...)
	for _, a := range s.Asserts {
		w.Add(a)
		w.Add(0)
	}
	stats := Stats{Vars: w.NumVars(), Clauses: w.NumClauses()}

	g := gini.New()
	s.Encoder.C.ToCnfFrom(g, s.Asserts...)
	for _, a := range s.Asserts {
		g.Add(a)
		g.Add(0)
	}

	sat, ok := runSolve(g, opts.Timeout)
	switch {
	case !ok:
		return &Result{Outcome: Timeout, Stats: stats}, nil
	case sat:
		res, err := interpretModel(s.Encoder, g)
		if err != nil {
			return nil, err
		}
		res.Stats = stats
		return res, nil
	default:
		return &Result{Outcome: Unsat, Stats: stats}, nil
	}
}

// runSolve runs g's search, honouring a timeout when one is set. With no
// timeout it runs Solve synchronously; with one, it uses gini's cancelable
// async solve so a slow instance doesn't block the caller past its budget.
// ok is false only when the timeout elapsed before a verdict.
func runSolve(g *gini.Gini, timeout time.Duration) (sat bool, ok bool) {
	if timeout <= 0 {
		return g.Solve() == 1, true
	}
	sv := g.GoSolve()
	result := sv.Try(timeout)
	if result == 0 {
		sv.Stop()
		return false, false
	}
	return result == 1, true
}

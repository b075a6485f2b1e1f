// Package cwsat is the constraint-encoder session: validates a placement
// problem, encodes it via pkg/cwsat/encode, hands the circuit to gini, and
// interprets a satisfying model back into placements. This is the boundary
// the out-of-scope CLI, HTTP wrapper, and benchmark driver of §6 call
// through.
package cwsat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/irifrance/gini/z"

	"github.com/cwsat/crossword/pkg/cwsat/encode"
	"github.com/cwsat/crossword/pkg/cwsat/interpret"
	"github.com/cwsat/crossword/pkg/cwsat/vars"
	"github.com/cwsat/crossword/pkg/geom"
)

// Outcome classifies a Solve result, per §7's error-kind taxonomy.
type Outcome int

const (
	// Sat means a model was found; Result.Placements is populated.
	Sat Outcome = iota
	// Unsat means the solver proved no model exists.
	Unsat
	// TrivialUnsat means preprocessing proved no model can exist before
	// any clause reached the solver (§4.4).
	TrivialUnsat
	// Timeout means the solver's budget elapsed without a verdict.
	Timeout
)

func (o Outcome) String() string {
	switch o {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	case TrivialUnsat:
		return "trivial-unsat"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Errors per §7. ErrPrecondition and interpretation errors (such as
// interpret.ErrMultiplePlacements) abort the session;
// Unsat/Timeout are ordinary results, not errors (see Result.Outcome).
var (
	ErrPrecondition = errors.New("cwsat: precondition violated")
)

// Problem is the input to one encoding session: a word list, a geometry,
// and a minimum quality floor.
type Problem struct {
	Words      []string
	Geometry   geom.Geometry
	MinQuality int
	Symmetry   encode.SymmetryBreak
}

// Stats reports the size of the generated formula, for the CLI/benchmark
// driver's reporting surface (§6).
type Stats struct {
	Vars    int
	Clauses int
}

// Result is the outcome of Solve.
type Result struct {
	Outcome    Outcome
	Placements []vars.Placement
	Stats      Stats
}

// NormalizeWords upper-cases, trims, and deduplicates a raw word list, per
// §6's word-input contract and §4.3.7's dedup/uppercase precondition step.
func NormalizeWords(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// Validate checks the §4.3.7 preconditions: non-negative quality, a
// positive grid dimension, a non-empty word list, and every word short
// enough for the geometry's longest line. Validate never allocates any
// variable; a failure here aborts the session before encoding starts.
func Validate(p Problem) error {
	if p.Geometry == nil {
		return fmt.Errorf("%w: geometry is required", ErrPrecondition)
	}
	if p.Geometry.NumCells() <= 0 {
		return fmt.Errorf("%w: grid dimension must be positive", ErrPrecondition)
	}
	// A hex disk's longest line is 2R+1, so radius 0 (a lone cell) is the
	// only hex geometry whose longest line is shorter than 3.
	if p.Geometry.Name() == "hex" && p.Geometry.MaxWordLength() < 3 {
		return fmt.Errorf("%w: hex radius must be positive", ErrPrecondition)
	}
	if p.MinQuality < 0 {
		return fmt.Errorf("%w: minimum quality must be >= 0, got %d", ErrPrecondition, p.MinQuality)
	}
	if len(p.Words) == 0 {
		return fmt.Errorf("%w: word list is empty", ErrPrecondition)
	}
	maxLen := p.Geometry.MaxWordLength()
	for _, w := range p.Words {
		if n := len([]rune(w)); n > maxLen {
			return fmt.Errorf("%w: word %q (length %d) longer than the grid's longest line (%d)", ErrPrecondition, w, n, maxLen)
		}
	}
	return nil
}

// Encode validates p and builds the constraint encoder, without solving.
// Exposed so callers that only need the CNF (the solver-benchmark driver,
// the --cnf CLI flag) don't pay for an in-process solve. The returned
// asserts are the encoder's full top-level assertion list — callers must
// not call e.Encode() again, since the Encoder's assertion list is built
// once and re-running it would duplicate every assertion.
func Encode(p Problem) (e *encode.Encoder, asserts []z.Lit, err error) {
	if err := Validate(p); err != nil {
		return nil, nil, err
	}
	e = encode.New(p.Geometry, p.Words, p.MinQuality, p.Symmetry)
	asserts = e.Encode()
	return e, asserts, nil
}

// interpretModel turns a solved encoder's model into a Result, detecting
// the fatal §4.5 multiple-placement case.
func interpretModel(e *encode.Encoder, val interpret.Valuer) (*Result, error) {
	placements, err := interpret.Model(e.Layout, val)
	if err != nil {
		return nil, err
	}
	return &Result{Outcome: Sat, Placements: placements}, nil
}

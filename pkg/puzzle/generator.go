package puzzle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cwsat/crossword/pkg/cwsat"
	"github.com/cwsat/crossword/pkg/cwsat/encode"
	"github.com/cwsat/crossword/pkg/geom"
	"github.com/cwsat/crossword/pkg/grid"
)

var (
	// ErrInvalidConfig is returned when the configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnsatisfiable is returned when the solver proves no layout exists
	ErrUnsatisfiable = errors.New("no layout satisfies the given words and quality floor")
	// ErrSolveTimeout is returned when the solver hits its deadline with no verdict
	ErrSolveTimeout = errors.New("solve timed out before reaching a verdict")
)

// Config holds configuration for a solve-and-render puzzle request.
type Config struct {
	Words      []string // Candidate words; deduplicated and uppercased via cwsat.NormalizeWords
	Size       int      // Rect grid size (e.g., 15 for 15x15); ignored when Radius > 0
	Radius     int      // Hex disk radius; when > 0, a Hex geometry of this radius is used instead of Rect
	MinQuality int      // Minimum total length of placed words (§4.3.6's quality floor)
	Symmetry   encode.SymmetryBreak
	Timeout    time.Duration // Solver deadline; 0 means no deadline

	Title  string // Puzzle title (optional, will use default if empty)
	Author string // Puzzle author (optional, will use default if empty)
	Theme  string // Puzzle theme (optional)
}

// Generator orchestrates the solve-then-render pipeline: encode the
// problem, hand it to the SAT solver, and render whatever layout comes
// back into a renderable Puzzle. It carries no state of its own — unlike
// the dictionary-backed generator this replaces, nothing here needs a
// wordlist or an LLM client, so construction is trivial.
type Generator struct{}

// NewGenerator creates a new puzzle generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// GeneratePuzzle encodes config as a cwsat.Problem, solves it, and renders
// a satisfying assignment into a Puzzle. It returns ErrUnsatisfiable (with
// the cwsat.Outcome named in its message) or ErrSolveTimeout rather than a
// generic error when the solver ran cleanly but found no puzzle, so
// callers can tell "the request is unsatisfiable" apart from "something
// broke."
func (pg *Generator) GeneratePuzzle(ctx context.Context, config Config) (*Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	config = setDefaults(config)

	var geometry geom.Geometry
	if config.Radius > 0 {
		geometry = geom.NewHex(config.Radius)
	} else {
		geometry = geom.NewRect(config.Size)
	}

	timeout := config.Timeout
	if timeout == 0 {
		if deadline, ok := ctx.Deadline(); ok {
			if remaining := time.Until(deadline); remaining > 0 {
				timeout = remaining
			}
		}
	}

	problem := cwsat.Problem{
		Words:      cwsat.NormalizeWords(config.Words),
		Geometry:   geometry,
		MinQuality: config.MinQuality,
		Symmetry:   config.Symmetry,
	}

	result, err := cwsat.Solve(problem, cwsat.SolveOptions{Timeout: timeout})
	if err != nil {
		return nil, err
	}

	switch result.Outcome {
	case cwsat.Sat:
		// fall through to rendering below
	case cwsat.Timeout:
		return nil, ErrSolveTimeout
	default:
		return nil, fmt.Errorf("%w (%s)", ErrUnsatisfiable, result.Outcome)
	}

	quality := 0
	for _, p := range result.Placements {
		quality += len(p.Word)
	}

	metadata := Metadata{
		ID:        uuid.New().String(),
		Title:     config.Title,
		Author:    config.Author,
		Theme:     config.Theme,
		Quality:   quality,
		CreatedAt: time.Now(),
	}

	var renderedGrid *grid.Grid
	if config.Radius > 0 {
		// Hex layouts have no square Grid rendering (§6): the CLI prints
		// them through their own axial textual form instead.
		renderedGrid = nil
	} else {
		renderedGrid = grid.FromPlacements(config.Size, result.Placements)
	}

	return NewPuzzle(renderedGrid, result.Placements, metadata), nil
}

// validateConfig validates the puzzle generation configuration
func validateConfig(config Config) error {
	if config.Radius > 0 {
		return nil
	}
	if config.Size < 3 || config.Size > 25 {
		return errors.New("grid size must be between 3 and 25")
	}
	return nil
}

// setDefaults sets default values for optional configuration fields
func setDefaults(config Config) Config {
	if config.Size == 0 && config.Radius == 0 {
		config.Size = 15 // Standard crossword size
	}

	if config.Title == "" {
		config.Title = fmt.Sprintf("Crossword Puzzle - %s", time.Now().Format("2006-01-02"))
	}

	if config.Author == "" {
		config.Author = "crossgen"
	}

	return config
}

package puzzle

import (
	"time"

	"github.com/cwsat/crossword/pkg/cwsat/vars"
	"github.com/cwsat/crossword/pkg/grid"
)

// Metadata carries the bookkeeping around a solved puzzle that the grid
// itself doesn't encode: who asked for it, when, and how it was scored.
type Metadata struct {
	ID        string    // Unique identifier for the puzzle
	Title     string    // Puzzle title
	Author    string    // Puzzle author/creator
	Theme     string    // Optional theme description
	Quality   int       // Sum of placed word lengths (the I6 objective achieved)
	CreatedAt time.Time // Timestamp when the puzzle was solved
}

// Puzzle is a solved, renderable crossword: a grid carrying the SAT
// solver's placements, plus the metadata needed to serialize it through
// pkg/output. There is no clue text in this domain — crossgen lays out
// grids, it doesn't write clues.
type Puzzle struct {
	Grid       *grid.Grid        // The filled grid with all letters and numbered entries
	Placements []vars.Placement // The solver's placement list the grid was rendered from
	Metadata   Metadata
}

// NewPuzzle creates a new Puzzle instance with the provided components
func NewPuzzle(g *grid.Grid, placements []vars.Placement, metadata Metadata) *Puzzle {
	return &Puzzle{
		Grid:       g,
		Placements: placements,
		Metadata:   metadata,
	}
}

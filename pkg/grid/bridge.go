package grid

import (
	"github.com/cwsat/crossword/pkg/cwsat/vars"
	"github.com/cwsat/crossword/pkg/geom"
)

// FromPlacements renders a solved rectangular layout into a Grid: every
// cell a placement covers becomes a white letter cell, everything else
// stays black, then computeEntries re-derives clue numbering exactly as
// it would for a hand-authored puzzle. Placements outside DirA/DirB (a
// hex layout's DirC) have no meaning on a square grid and are skipped;
// hex solutions are rendered through their own textual form instead.
func FromPlacements(size int, placements []vars.Placement) *Grid {
	g := NewEmptyGrid(GridConfig{Size: size})
	for _, p := range placements {
		letters := []rune(p.Word)
		for i, r := range letters {
			row, col, ok := rectCellFor(p, i)
			if !ok || row < 0 || row >= size || col < 0 || col >= size {
				continue
			}
			cell := g.Cells[row][col]
			cell.IsBlack = false
			cell.Letter = r
		}
	}
	computeEntries(g)
	return g
}

func rectCellFor(p vars.Placement, offset int) (row, col int, ok bool) {
	switch p.Dir {
	case geom.DirA:
		return p.Cell.Y, p.Cell.X + offset, true
	case geom.DirB:
		return p.Cell.Y + offset, p.Cell.X, true
	default:
		return 0, 0, false
	}
}

package puzzle

import (
	"github.com/cwsat/crossword/internal/models"
	"github.com/cwsat/crossword/pkg/grid"
)

// ToModelsPuzzle converts a pkg/puzzle.Puzzle to models.Puzzle for output
// formatting. There are no clues in this domain, so every models.Clue's
// Text is left blank; Number/Answer/Position/Length still carry the
// entry's real geometry, which is what the puz/ipuz writers actually need.
func ToModelsPuzzle(p *Puzzle) *models.Puzzle {
	if p.Grid == nil {
		return nil
	}

	gridCells := make([][]models.GridCell, p.Grid.Size)
	for y := 0; y < p.Grid.Size; y++ {
		gridCells[y] = make([]models.GridCell, p.Grid.Size)
		for x := 0; x < p.Grid.Size; x++ {
			cell := p.Grid.Cells[y][x]

			var letter *string
			if !cell.IsBlack {
				letterStr := string(cell.Letter)
				letter = &letterStr
			}

			var number *int
			if cell.Number > 0 {
				num := cell.Number
				number = &num
			}

			gridCells[y][x] = models.GridCell{
				Letter:    letter,
				Number:    number,
				IsCircled: false,
				Rebus:     nil,
			}
		}
	}

	acrossClues := make([]models.Clue, 0)
	downClues := make([]models.Clue, 0)
	for _, entry := range p.Grid.Entries {
		clue := models.Clue{
			Number:    entry.Number,
			Text:      "",
			Answer:    extractAnswer(entry),
			PositionX: entry.StartCol,
			PositionY: entry.StartRow,
			Length:    entry.Length,
		}
		if entry.Direction == grid.ACROSS {
			clue.Direction = "across"
			acrossClues = append(acrossClues, clue)
		} else {
			clue.Direction = "down"
			downClues = append(downClues, clue)
		}
	}

	var theme *string
	if p.Metadata.Theme != "" {
		theme = &p.Metadata.Theme
	}

	return &models.Puzzle{
		ID:          p.Metadata.ID,
		Date:        nil,
		Title:       p.Metadata.Title,
		Author:      p.Metadata.Author,
		Difficulty:  models.DifficultyMedium,
		GridWidth:   p.Grid.Size,
		GridHeight:  p.Grid.Size,
		Grid:        gridCells,
		CluesAcross: acrossClues,
		CluesDown:   downClues,
		Theme:       theme,
		CreatedAt:   p.Metadata.CreatedAt,
		PublishedAt: nil,
		Status:      "draft",
	}
}

// extractAnswer extracts the answer string from an entry's cells
func extractAnswer(entry *grid.Entry) string {
	answer := make([]rune, len(entry.Cells))
	for i, cell := range entry.Cells {
		answer[i] = cell.Letter
	}
	return string(answer)
}

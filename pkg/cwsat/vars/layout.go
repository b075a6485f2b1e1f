// Package vars assigns gini circuit literals to the three decision-variable
// families of §4.2: placement booleans, selection booleans, and per-cell
// finite-domain character symbols, plus the derived connectivity ladder
// used by the encoder's connectedness family.
package vars

import (
	"fmt"
	"sort"

	"github.com/irifrance/gini/logic"
	"github.com/irifrance/gini/z"

	"github.com/cwsat/crossword/pkg/cwsat/gate"
	"github.com/cwsat/crossword/pkg/geom"
)

// Placement names a legal (word, cell, direction) triple: what a true P
// variable, once interpreted, asserts about the grid.
type Placement struct {
	Word string
	Cell geom.Cell
	Dir  geom.Direction
}

// Layout owns every circuit literal allocated for one encoding session.
// Finite-domain cell symbols G(c) are bit-blasted at allocation time
// (ceil(log2(|Σ|+1)) literals per cell) rather than as a separate CNF-export
// pass: this Go implementation has no downstream consumer for an
// intermediate non-bitvector sort, so folding the "convert finite-domain
// sorts to bit-vectors" pipeline step into variable layout loses nothing.
type Layout struct {
	Geometry geom.Geometry
	Words    []string

	Alphabet  []rune
	CodeOf    map[rune]int
	EmptyCode int
	GBits     int

	P        map[Placement]z.Lit
	Legal    map[string][]Placement
	S        map[string]z.Lit
	G        [][]z.Lit
	Start    []z.Lit
	Reach    [][]z.Lit
	Diameter int
}

// Build allocates every variable family for words over g. words must
// already be deduplicated and upper-cased, and must already have passed
// precondition validation (cwsat.Validate): Build itself does not check
// preconditions.
func Build(c *logic.C, g geom.Geometry, words []string) *Layout {
	l := &Layout{
		Geometry: g,
		Words:    words,
		CodeOf:   make(map[rune]int),
		P:        make(map[Placement]z.Lit),
		Legal:    make(map[string][]Placement, len(words)),
		S:        make(map[string]z.Lit, len(words)),
	}
	l.buildAlphabet(words)
	l.Diameter = g.DiameterBound()

	numCells := g.NumCells()
	l.G = make([][]z.Lit, numCells)
	for i := 0; i < numCells; i++ {
		l.G[i] = make([]z.Lit, l.GBits)
		for b := 0; b < l.GBits; b++ {
			l.G[i][b] = c.Lit()
		}
	}

	l.Start = make([]z.Lit, numCells)
	for i := range l.Start {
		l.Start[i] = c.Lit()
	}
	l.Reach = make([][]z.Lit, numCells)
	for i := range l.Reach {
		l.Reach[i] = make([]z.Lit, l.Diameter+1)
		for d := 0; d <= l.Diameter; d++ {
			l.Reach[i][d] = c.Lit()
		}
	}

	cells := g.Cells()
	directions := g.Directions()
	for _, w := range words {
		l.S[w] = c.Lit()
		n := len(w)
		for _, cell := range cells {
			for _, d := range directions {
				if !geom.IsLegalPlacement(g, cell, d, n) {
					continue
				}
				p := Placement{Word: w, Cell: cell, Dir: d}
				l.P[p] = c.Lit()
				l.Legal[w] = append(l.Legal[w], p)
			}
		}
	}
	return l
}

func (l *Layout) buildAlphabet(words []string) {
	seen := make(map[rune]bool)
	for _, w := range words {
		for _, r := range w {
			if !seen[r] {
				seen[r] = true
				l.Alphabet = append(l.Alphabet, r)
			}
		}
	}
	sort.Slice(l.Alphabet, func(i, j int) bool { return l.Alphabet[i] < l.Alphabet[j] })
	l.EmptyCode = 0
	for i, r := range l.Alphabet {
		l.CodeOf[r] = i + 1
	}
	domainSize := len(l.Alphabet) + 1
	bits := 0
	for (1 << uint(bits)) < domainSize {
		bits++
	}
	if bits == 0 {
		bits = 1
	}
	l.GBits = bits
}

// EqualsCode builds the circuit literal asserting cellIdx's G variable
// equals code, by conjoining each bit of code's binary expansion (or its
// negation) against the cell's bit-blasted literals.
func (l *Layout) EqualsCode(c *logic.C, cellIdx int, code int) z.Lit {
	bits := l.G[cellIdx]
	lits := make([]z.Lit, len(bits))
	for b, bit := range bits {
		if code&(1<<uint(b)) == 0 {
			bit = bit.Not()
		}
		lits[b] = bit
	}
	return gate.Ands(c, lits)
}

// EqualsEmpty is EqualsCode(c, cellIdx, EmptyCode).
func (l *Layout) EqualsEmpty(c *logic.C, cellIdx int) z.Lit {
	return l.EqualsCode(c, cellIdx, l.EmptyCode)
}

// CodeOfRune reports the sort constant for a character, per §4.3.1's
// encode(·). Panics for a character outside the word list's alphabet: the
// encoder only ever calls this with characters drawn from placed words.
func (l *Layout) CodeOfRune(r rune) int {
	code, ok := l.CodeOf[r]
	if !ok {
		panic(fmt.Sprintf("vars: rune %q not in alphabet", r))
	}
	return code
}

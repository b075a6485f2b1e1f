package cwsat

import (
	"testing"

	"github.com/irifrance/gini/z"

	"github.com/cwsat/crossword/pkg/cwsat/interpret"
	"github.com/cwsat/crossword/pkg/cwsat/vars"
	"github.com/cwsat/crossword/pkg/geom"
)

// These tests check the §8 properties against an actual solved result
// rather than just an outcome/quality bound, complementing the six
// scenario tests in problem_test.go.

func solveSat(t *testing.T, p Problem) *Result {
	t.Helper()
	res, err := Solve(p, SolveOptions{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Outcome != Sat {
		t.Fatalf("Outcome = %v, want Sat", res.Outcome)
	}
	return res
}

// P1 (membership): every placed word came from the input list, and no word
// appears more than once in the result.
func TestProperty_Membership(t *testing.T) {
	words := NormalizeWords([]string{"cat", "car", "art"})
	p := Problem{Words: words, Geometry: geom.NewRect(5), MinQuality: 9}
	res := solveSat(t, p)

	wanted := make(map[string]bool, len(words))
	for _, w := range words {
		wanted[w] = true
	}
	seen := make(map[string]bool, len(res.Placements))
	for _, pl := range res.Placements {
		if !wanted[pl.Word] {
			t.Fatalf("placement %q is not in the input word list", pl.Word)
		}
		if seen[pl.Word] {
			t.Fatalf("word %q placed more than once", pl.Word)
		}
		seen[pl.Word] = true
	}
}

// P2 (bounding): every letter of every placement lands in-grid, and the
// cell immediately before/after the placement (when in-grid) is empty in
// the reconstructed letter grid.
func TestProperty_Bounding(t *testing.T) {
	g := geom.NewRect(5)
	p := Problem{Words: NormalizeWords([]string{"cat", "car", "art"}), Geometry: g, MinQuality: 9}
	res := solveSat(t, p)

	occupied := make(map[geom.Cell]rune)
	for _, pl := range res.Placements {
		letters := []rune(pl.Word)
		for i, r := range letters {
			cell, ok := g.Step(pl.Cell, pl.Dir, i)
			if !ok {
				t.Fatalf("placement %q steps off-grid at offset %d", pl.Word, i)
			}
			occupied[cell] = r
		}
	}

	for _, pl := range res.Placements {
		n := len(pl.Word)
		if before, ok := g.BoundBefore(pl.Cell, pl.Dir); ok {
			if _, isLetter := occupied[before]; isLetter {
				t.Fatalf("placement %q is not bounded by an empty cell before its start", pl.Word)
			}
		}
		if after, ok := g.BoundAfter(pl.Cell, pl.Dir, n); ok {
			if _, isLetter := occupied[after]; isLetter {
				t.Fatalf("placement %q is not bounded by an empty cell after its end", pl.Word)
			}
		}
	}
}

// P3 (no junk): every maximal run of occupied cells along an axis spells
// exactly one placed word, in exactly one direction.
func TestProperty_NoJunk(t *testing.T) {
	g := geom.NewRect(5)
	p := Problem{Words: NormalizeWords([]string{"cat", "car", "art"}), Geometry: g, MinQuality: 9}
	res := solveSat(t, p)

	occupied := make(map[geom.Cell]rune)
	for _, pl := range res.Placements {
		letters := []rune(pl.Word)
		for i, r := range letters {
			cell, _ := g.Step(pl.Cell, pl.Dir, i)
			occupied[cell] = r
		}
	}

	runStarts := make(map[geom.Cell]map[geom.Direction]string)
	for _, pl := range res.Placements {
		m, ok := runStarts[pl.Cell]
		if !ok {
			m = make(map[geom.Direction]string)
			runStarts[pl.Cell] = m
		}
		m[pl.Dir] = pl.Word
	}

	for _, c0 := range g.Cells() {
		if _, isLetter := occupied[c0]; !isLetter {
			continue
		}
		for _, d := range g.Directions() {
			before, hasBefore := g.BoundBefore(c0, d)
			if hasBefore {
				if _, beforeIsLetter := occupied[before]; beforeIsLetter {
					continue // not a run start along d
				}
			}
			next, hasNext := g.Step(c0, d, 1)
			if !hasNext {
				continue // run of length 1 along d, nothing to spell
			}
			if _, nextIsLetter := occupied[next]; !nextIsLetter {
				continue // run of length 1 along d
			}

			word, ok := runStarts[c0][d]
			if !ok {
				t.Fatalf("cell %v starts an unexplained run along direction %v", c0, d)
			}
			for i, r := range []rune(word) {
				cell, _ := g.Step(c0, d, i)
				if occupied[cell] != r {
					t.Fatalf("run at %v direction %v does not spell placed word %q", c0, d, word)
				}
			}
			if after, ok := g.BoundAfter(c0, d, len([]rune(word))); ok {
				if _, afterIsLetter := occupied[after]; afterIsLetter {
					t.Fatalf("run at %v direction %v continues past placed word %q", c0, d, word)
				}
			}
		}
	}
}

// P4 (connectedness): the occupied cells form a single connected component
// under the geometry's adjacency relation.
func TestProperty_Connectedness(t *testing.T) {
	g := geom.NewRect(5)
	p := Problem{Words: NormalizeWords([]string{"cat", "car", "art"}), Geometry: g, MinQuality: 9}
	res := solveSat(t, p)

	occupied := make(map[geom.Cell]bool)
	for _, pl := range res.Placements {
		for i := 0; i < len(pl.Word); i++ {
			cell, _ := g.Step(pl.Cell, pl.Dir, i)
			occupied[cell] = true
		}
	}
	if len(occupied) == 0 {
		t.Fatal("expected at least one occupied cell")
	}

	var start geom.Cell
	for c := range occupied {
		start = c
		break
	}

	visited := map[geom.Cell]bool{start: true}
	queue := []geom.Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbours(c) {
			if occupied[n] && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	for c := range occupied {
		if !visited[c] {
			t.Fatalf("cell %v is occupied but unreachable from %v: grid is disconnected", c, start)
		}
	}
}

// P6 (uniqueness): no two placements share both a cell and a direction.
// That no word is placed twice is checked in TestProperty_Membership.
func TestProperty_Uniqueness(t *testing.T) {
	g := geom.NewRect(5)
	p := Problem{Words: NormalizeWords([]string{"cat", "car", "art"}), Geometry: g, MinQuality: 9}
	res := solveSat(t, p)

	type key struct {
		geom.Cell
		geom.Direction
	}
	seen := make(map[key]string)
	for _, pl := range res.Placements {
		k := key{pl.Cell, pl.Dir}
		if other, ok := seen[k]; ok {
			t.Fatalf("cell %v direction %v holds both %q and %q", pl.Cell, pl.Dir, other, pl.Word)
		}
		seen[k] = pl.Word
	}
}

// fakeValuer reports true only for the literals explicitly set, modelling a
// hand-picked satisfying assignment rather than one found by the solver.
type fakeValuer map[z.Lit]bool

func (v fakeValuer) Value(m z.Lit) bool { return v[m] }

// TestProperty_RoundTrip constructs a placement by hand, sets exactly its
// witnessing P and S literals true in a fake model, and checks that
// interpreting that model recovers the same placement — the §8 round-trip
// property between a placement and the literals that witness it.
func TestProperty_RoundTrip(t *testing.T) {
	words := NormalizeWords([]string{"cat", "dog"})
	g := geom.NewRect(4)
	e, _, err := Encode(Problem{Words: words, Geometry: g, MinQuality: 0})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	l := e.Layout

	want := vars.Placement{Word: "CAT", Cell: geom.Cell{X: 0, Y: 0}, Dir: geom.DirA}
	plit, ok := l.P[want]
	if !ok {
		t.Fatalf("placement %+v is not a legal variable for this layout", want)
	}
	slit, ok := l.S["CAT"]
	if !ok {
		t.Fatalf("no selection variable for CAT")
	}

	model := fakeValuer{plit: true, slit: true}
	placements, err := interpret.Model(l, model)
	if err != nil {
		t.Fatalf("interpret.Model: %v", err)
	}
	if len(placements) != 1 {
		t.Fatalf("expected exactly one recovered placement, got %d", len(placements))
	}
	if placements[0] != want {
		t.Fatalf("recovered placement %+v, want %+v", placements[0], want)
	}
}

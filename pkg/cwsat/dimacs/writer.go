// Package dimacs writes standard DIMACS CNF, implementing the
// github.com/irifrance/gini/inter.Adder sink interface so a logic.C
// circuit's ToCnfFrom/CnfSince Tseitin conversion can stream directly into
// it, the same way the vendored gini excerpts this package is grounded on
// feed clauses into a solver.
package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/irifrance/gini/z"
)

// Writer accumulates clauses added one literal at a time, Adder-style
// (Add(lit) repeated, then Add(z.LitNull) to terminate a clause), and
// serializes them as "p cnf <vars> <clauses>" DIMACS on WriteTo.
type Writer struct {
	clauses [][]int
	cur     []int
	maxVar  int
}

// NewWriter returns an empty Writer ready to receive clauses via Add.
func NewWriter() *Writer {
	return &Writer{}
}

// Add implements inter.Adder. Add(z.LitNull) (the zero Lit) terminates the
// clause currently being built, matching DIMACS's 0-terminated clause
// convention and gini's own Adder usage.
func (w *Writer) Add(m z.Lit) {
	if m == z.LitNull {
		w.clauses = append(w.clauses, w.cur)
		w.cur = nil
		return
	}
	d := m.Dimacs()
	if v := abs(d); v > w.maxVar {
		w.maxVar = v
	}
	w.cur = append(w.cur, d)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// NumClauses reports how many complete clauses have been added.
func (w *Writer) NumClauses() int { return len(w.clauses) }

// NumVars reports the highest variable index seen so far.
func (w *Writer) NumVars() int { return w.maxVar }

// WriteTo serializes the accumulated clauses as DIMACS CNF to out.
func (w *Writer) WriteTo(out io.Writer) error {
	bw := bufio.NewWriter(out)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", w.maxVar, len(w.clauses)); err != nil {
		return err
	}
	for _, cl := range w.clauses {
		for _, lit := range cl {
			if _, err := fmt.Fprintf(bw, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwsat/crossword/internal/bench"
	"github.com/cwsat/crossword/pkg/cwsat"
	"github.com/cwsat/crossword/pkg/cwsat/encode"
	"github.com/cwsat/crossword/pkg/cwsat/vars"
	"github.com/cwsat/crossword/pkg/geom"
	"github.com/cwsat/crossword/pkg/grid"
	"github.com/cwsat/crossword/pkg/wordlist"
)

var (
	solveTimeoutSeconds float64
	solveCNFPath        string
	solveSymmetryBreak  bool
	solveNoSymmetry     bool
	solveBenchDB        string
)

var solveRectCmd = &cobra.Command{
	Use:   "solve-rect word_file size min_quality",
	Short: "Solve a rectangular crossword layout with the SAT encoder",
	Args:  cobra.ExactArgs(3),
	RunE:  runSolveRect,
}

var solveHexCmd = &cobra.Command{
	Use:   "solve-hex word_file radius min_quality",
	Short: "Solve a hexagonal crossword layout with the SAT encoder",
	Args:  cobra.ExactArgs(3),
	RunE:  runSolveHex,
}

func init() {
	rootCmd.AddCommand(solveRectCmd)
	rootCmd.AddCommand(solveHexCmd)

	for _, c := range []*cobra.Command{solveRectCmd, solveHexCmd} {
		c.Flags().Float64Var(&solveTimeoutSeconds, "timeout", 0, "solver budget in seconds (0 = no deadline)")
		c.Flags().StringVar(&solveCNFPath, "cnf", "", "write the encoded formula as DIMACS CNF to this path")
		c.Flags().StringVar(&solveBenchDB, "bench-db", "", "append this run's outcome and timing to a bench run log")
	}
	solveHexCmd.Flags().BoolVar(&solveNoSymmetry, "no-symmetry-break", false, "reserved; symmetry breaking is off by default so this is a no-op")
	solveHexCmd.Flags().BoolVar(&solveSymmetryBreak, "symmetry-break", false, "pin the longest word to a canonical orientation to reduce search (§9)")
}

func runSolveRect(cmd *cobra.Command, args []string) error {
	words, size, minQuality, err := parseSolveArgs(args)
	if err != nil {
		return err
	}
	return solveAndReport(cwsat.Problem{
		Words:      words,
		Geometry:   geom.NewRect(size),
		MinQuality: minQuality,
	}, renderRectSolution)
}

func runSolveHex(cmd *cobra.Command, args []string) error {
	words, radius, minQuality, err := parseSolveArgs(args)
	if err != nil {
		return err
	}
	sym := encode.SymmetryBreakOff
	if solveSymmetryBreak {
		sym = encode.SymmetryBreakOn
	}
	return solveAndReport(cwsat.Problem{
		Words:      words,
		Geometry:   geom.NewHex(radius),
		MinQuality: minQuality,
		Symmetry:   sym,
	}, renderHexSolution)
}

func parseSolveArgs(args []string) (words []string, dim int, minQuality int, err error) {
	raw, err := wordlist.LoadWords(args[0])
	if err != nil {
		return nil, 0, 0, err
	}
	dim, err = strconv.Atoi(args[1])
	if err != nil {
		return nil, 0, 0, fmt.Errorf("invalid size/radius %q: %w", args[1], err)
	}
	minQuality, err = strconv.Atoi(args[2])
	if err != nil {
		return nil, 0, 0, fmt.Errorf("invalid min_quality %q: %w", args[2], err)
	}
	return cwsat.NormalizeWords(raw), dim, minQuality, nil
}

// solveAndReport validates, encodes, optionally writes CNF, solves, and
// prints a result per §6/§7: precondition failures return a non-zero exit
// (via the returned error), while a clean UNSAT or timeout is reported and
// the command still exits 0.
func solveAndReport(p cwsat.Problem, render func(io.Writer, *cwsat.Result, cwsat.Problem)) error {
	session, err := cwsat.NewSession(p)
	if err != nil {
		return err
	}

	if solveCNFPath != "" {
		f, err := os.Create(solveCNFPath)
		if err != nil {
			return fmt.Errorf("failed to create CNF output file: %w", err)
		}
		defer f.Close()
		if err := session.WriteCNF(f); err != nil {
			return fmt.Errorf("failed to write CNF: %w", err)
		}
	}

	timeout := time.Duration(solveTimeoutSeconds * float64(time.Second))
	start := time.Now()
	result, err := session.Solve(cwsat.SolveOptions{Timeout: timeout})
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	if solveBenchDB != "" {
		if err := recordBenchRun(p, result, elapsed); err != nil {
			return fmt.Errorf("failed to record bench run: %w", err)
		}
	}

	switch result.Outcome {
	case cwsat.Sat:
		render(os.Stdout, result, p)
	case cwsat.TrivialUnsat, cwsat.Unsat:
		fmt.Println("no solution")
	case cwsat.Timeout:
		fmt.Println("timeout: solver returned no verdict within the budget")
	}
	return nil
}

func recordBenchRun(p cwsat.Problem, result *cwsat.Result, elapsed time.Duration) error {
	store, err := bench.OpenStore(solveBenchDB)
	if err != nil {
		return err
	}
	defer store.Close()

	quality := 0
	for _, pl := range result.Placements {
		quality += len(pl.Word)
	}

	return store.Record(bench.Result{
		Case:       fmt.Sprintf("%s/%d words", p.Geometry.Name(), len(p.Words)),
		Geometry:   p.Geometry.Name(),
		Outcome:    result.Outcome.String(),
		DurationMS: elapsed.Milliseconds(),
		Vars:       result.Stats.Vars,
		Clauses:    result.Stats.Clauses,
		Quality:    quality,
	})
}

func renderRectSolution(w io.Writer, res *cwsat.Result, p cwsat.Problem) {
	for i, pl := range res.Placements {
		horizontal := pl.Dir == geom.DirA
		fmt.Fprintf(w, "%d) %s Placement(x=%d, y=%d, horizontal=%t)\n", i+1, pl.Word, pl.Cell.X, pl.Cell.Y, horizontal)
	}
	size := p.Geometry.MaxWordLength()
	g := grid.FromPlacements(size, res.Placements)
	fmt.Fprintln(w)
	for _, row := range g.Cells {
		line := make([]byte, len(row))
		for i, cell := range row {
			if cell.IsBlack {
				line[i] = '.'
			} else {
				line[i] = byte(cell.Letter)
			}
		}
		fmt.Fprintln(w, string(line))
	}
	if err := grid.Validate(g); err != nil {
		fmt.Fprintf(w, "warning: %v\n", err)
	}
	if grid.IsSymmetric(g) {
		fmt.Fprintln(w, "note: layout has 180-degree rotational symmetry")
	}
}

func renderHexSolution(w io.Writer, res *cwsat.Result, p cwsat.Problem) {
	for i, pl := range res.Placements {
		fmt.Fprintf(w, "%d) %s @ (%d,%d) orient=%d\n", i+1, pl.Word, pl.Cell.X, pl.Cell.Y, int(pl.Dir))
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, renderHexGrid(res.Placements))
}

// renderHexGrid renders a hex solution as rows grouped by axial r,
// columns in q order, since pkg/grid's square Grid has no hex analogue.
func renderHexGrid(placements []vars.Placement) string {
	letters := make(map[[2]int]rune)
	minQ, maxQ, minR, maxR := 0, 0, 0, 0
	first := true
	record := func(q, r int, ch rune) {
		letters[[2]int{q, r}] = ch
		if first {
			minQ, maxQ, minR, maxR = q, q, r, r
			first = false
			return
		}
		if q < minQ {
			minQ = q
		}
		if q > maxQ {
			maxQ = q
		}
		if r < minR {
			minR = r
		}
		if r > maxR {
			maxR = r
		}
	}
	for _, pl := range placements {
		word := []rune(pl.Word)
		for i, ch := range word {
			cell, ok := stepHexAxial(pl.Cell.X, pl.Cell.Y, pl.Dir, i)
			if !ok {
				continue
			}
			record(cell[0], cell[1], ch)
		}
	}

	var out []byte
	for r := minR; r <= maxR; r++ {
		line := fmt.Sprintf("r=%-3d ", r)
		out = append(out, line...)
		for q := minQ; q <= maxQ; q++ {
			ch, ok := letters[[2]int{q, r}]
			if !ok {
				out = append(out, '.', ' ')
				continue
			}
			out = append(out, byte(ch), ' ')
		}
		out = append(out, '\n')
	}
	return string(out)
}

func stepHexAxial(q, r int, d geom.Direction, i int) ([2]int, bool) {
	switch d {
	case geom.DirA:
		return [2]int{q + i, r}, true
	case geom.DirB:
		return [2]int{q, r + i}, true
	case geom.DirC:
		return [2]int{q + i, r - i}, true
	default:
		return [2]int{}, false
	}
}

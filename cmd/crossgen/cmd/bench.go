package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwsat/crossword/internal/bench"
	"github.com/cwsat/crossword/pkg/cwsat"
	"github.com/cwsat/crossword/pkg/geom"
	"github.com/cwsat/crossword/pkg/wordlist"
)

var (
	benchQualityFrom   int
	benchQualityTo     int
	benchQualityStep   int
	benchTimeout       float64
	benchDB            string
	benchShape         string
	benchDim           int
	benchScored        bool
	benchScoredPerSize int
)

var benchCmd = &cobra.Command{
	Use:   "bench word_file",
	Short: "Sweep minimum quality over a word list and record solver run times",
	Long: `Runs the encoder/solver repeatedly over a range of minimum-quality
thresholds for a fixed word list and grid, recording each run's outcome
and timing to a run log.

This mirrors sweeping a single knob (minimum quality) across a fixed
problem and comparing how solve time grows with it, the way a solver
benchmark normally would. Results land in the same run log "crossgen
stats" reports on.

Examples:
  crossgen bench words.txt --shape rect --dim 12 --quality-from 50 --quality-to 96 --quality-step 2
  crossgen bench words.txt --shape hex --dim 4 --quality-from 10 --quality-to 40 --quality-step 5`,
	Args: cobra.ExactArgs(1),
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVar(&benchQualityFrom, "quality-from", 0, "first minimum-quality value in the sweep")
	benchCmd.Flags().IntVar(&benchQualityTo, "quality-to", 0, "last minimum-quality value in the sweep (inclusive)")
	benchCmd.Flags().IntVar(&benchQualityStep, "quality-step", 1, "step between successive minimum-quality values")
	benchCmd.Flags().Float64Var(&benchTimeout, "timeout", 30, "per-case solver budget in seconds (0 = no deadline)")
	benchCmd.Flags().StringVarP(&benchDB, "db", "d", "./bench.db", "path to the run log database to append to")
	benchCmd.Flags().StringVar(&benchShape, "shape", "rect", "grid shape: rect or hex")
	benchCmd.Flags().IntVar(&benchDim, "dim", 12, "rect grid size, or hex radius")
	benchCmd.Flags().BoolVar(&benchScored, "scored", false, "parse word_file in Peter Broda's WORD;SCORE format instead of plain text, and keep only the highest-scoring words per length")
	benchCmd.Flags().IntVar(&benchScoredPerSize, "scored-per-length", 20, "with --scored, how many top-scoring words to keep per word length")
}

// loadScoredWords reads a Broda-format scored wordlist and keeps only the
// top --scored-per-length words of each length up to maxLen, the way a
// harder benchmark case favors denser, higher-scoring fill over a flat word
// list of the same size.
func loadScoredWords(path string, perLength, maxLen int) ([]string, error) {
	wl, err := wordlist.LoadBrodaWordlist(path)
	if err != nil {
		return nil, err
	}

	var words []string
	for length := 1; length <= maxLen; length++ {
		bucket := wl.GetWordsOfLength(length)
		n := perLength
		if n > len(bucket) {
			n = len(bucket)
		}
		for i := 0; i < n; i++ {
			words = append(words, bucket[i].Text)
		}
	}
	return words, nil
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchQualityTo < benchQualityFrom {
		return fmt.Errorf("--quality-to (%d) must be >= --quality-from (%d)", benchQualityTo, benchQualityFrom)
	}
	if benchQualityStep <= 0 {
		return fmt.Errorf("--quality-step must be positive, got %d", benchQualityStep)
	}

	var geometry geom.Geometry
	switch benchShape {
	case "rect":
		geometry = geom.NewRect(benchDim)
	case "hex":
		geometry = geom.NewHex(benchDim)
	default:
		return fmt.Errorf("unknown --shape %q: want rect or hex", benchShape)
	}

	var raw []string
	var err error
	if benchScored {
		raw, err = loadScoredWords(args[0], benchScoredPerSize, geometry.MaxWordLength())
	} else {
		raw, err = wordlist.LoadWords(args[0])
	}
	if err != nil {
		return err
	}
	words := cwsat.NormalizeWords(raw)

	timeout := time.Duration(benchTimeout * float64(time.Second))

	var cases []bench.Case
	for q := benchQualityFrom; q <= benchQualityTo; q += benchQualityStep {
		cases = append(cases, bench.Case{
			Name: fmt.Sprintf("%s/%d @ quality>=%d", benchShape, benchDim, q),
			Problem: cwsat.Problem{
				Words:      words,
				Geometry:   geometry,
				MinQuality: q,
			},
			Timeout: timeout,
		})
	}

	if verbosity > 0 {
		fmt.Printf("Running %d cases (quality %d..%d step %d) against %s\n",
			len(cases), benchQualityFrom, benchQualityTo, benchQualityStep, args[0])
	}

	results := bench.RunSuite(cases)

	store, err := bench.OpenStore(benchDB)
	if err != nil {
		return fmt.Errorf("failed to open run log: %w", err)
	}
	defer store.Close()

	if err := store.RecordAll(results); err != nil {
		return fmt.Errorf("failed to record bench results: %w", err)
	}

	for _, r := range results {
		if r.Err != "" {
			fmt.Printf("  %-28s ERROR %s\n", r.Case, r.Err)
			continue
		}
		fmt.Printf("  %-28s %-7s %6dms  vars=%-6d clauses=%-6d quality=%d\n",
			r.Case, r.Outcome, r.DurationMS, r.Vars, r.Clauses, r.Quality)
	}
	fmt.Printf("\nRecorded %d runs to %s\n", len(results), benchDB)
	return nil
}

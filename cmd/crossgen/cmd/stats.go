package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwsat/crossword/internal/bench"
)

var (
	statsDB string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display solver run-log statistics",
	Long: `Display statistics about a bench run log.

Shows information about:
  - Run counts by outcome (sat, unsat, trivial-unsat, timeout, error)
  - Slowest recorded runs
  - Fastest recorded runs

Examples:
  # Show stats for the default run log
  crossgen stats

  # Show stats for a custom run log
  crossgen stats --db /path/to/bench.db`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsDB, "db", "d", "", "path to bench run log database (default: ./bench.db)")
}

func runStats(cmd *cobra.Command, args []string) error {
	dbPath := statsDB
	if dbPath == "" {
		dbPath = "./bench.db"
	}

	if verbosity > 0 {
		fmt.Printf("Reading run log: %s\n", dbPath)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("run log not found at %s", dbPath)
	}

	store, err := bench.OpenStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open run log: %w", err)
	}
	defer store.Close()

	fmt.Printf("\nSolver Run Log Statistics\n")
	fmt.Printf("=========================\n")
	fmt.Printf("Database: %s\n\n", dbPath)

	if err := displayOutcomeCounts(store); err != nil {
		return err
	}
	if err := displaySlowestRuns(store); err != nil {
		return err
	}
	if err := displayFastestRuns(store); err != nil {
		return err
	}

	return nil
}

func displayOutcomeCounts(store *bench.Store) error {
	fmt.Println("Runs by Outcome:")
	fmt.Println("----------------")

	counts, err := store.CountsByOutcome()
	if err != nil {
		return err
	}

	if len(counts) == 0 {
		fmt.Println("  No runs recorded")
		fmt.Println()
		return nil
	}

	total := 0
	for _, c := range counts {
		fmt.Printf("  %-10s: %d\n", c.Outcome, c.Count)
		total += c.Count
	}
	fmt.Printf("  %-10s: %d\n", "TOTAL", total)
	fmt.Println()
	return nil
}

func displaySlowestRuns(store *bench.Store) error {
	fmt.Println("Slowest Runs:")
	fmt.Println("-------------")
	runs, err := store.SlowestRuns(10)
	if err != nil {
		return err
	}
	printRuns(runs)
	return nil
}

func displayFastestRuns(store *bench.Store) error {
	fmt.Println("Fastest Runs:")
	fmt.Println("-------------")
	runs, err := store.FastestRuns(10)
	if err != nil {
		return err
	}
	printRuns(runs)
	return nil
}

func printRuns(runs []bench.Result) {
	if len(runs) == 0 {
		fmt.Println("  No runs recorded")
		fmt.Println()
		return
	}
	for _, r := range runs {
		fmt.Printf("  %-20s %-5s %-7s %6dms  vars=%-6d clauses=%-6d quality=%d\n",
			r.Case, r.Geometry, r.Outcome, r.DurationMS, r.Vars, r.Clauses, r.Quality)
	}
	fmt.Println()
}

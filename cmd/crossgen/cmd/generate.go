package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwsat/crossword/internal/models"
	"github.com/cwsat/crossword/pkg/output"
	"github.com/cwsat/crossword/pkg/puzzle"
	"github.com/cwsat/crossword/pkg/wordlist"
)

var (
	genCount      int
	genSize       int
	genMinQuality int
	genOutput     string
	genFormat     string
	genWordlist   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate crossword layouts with the SAT-based placement engine",
	Long: `Generate one or more crossword grids by encoding word placement as a
boolean satisfiability problem and solving it with gini.

Examples:
  # Generate 10 15x15 layouts in JSON format
  crossgen generate --count 10 --size 15 --min-quality 60 --format json --output ./puzzles --wordlist words.txt

  # Generate a single grid in every output format
  crossgen generate --format all --output ./puzzle --wordlist words.txt`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&genCount, "count", "n", 1, "number of grids to generate")
	generateCmd.Flags().IntVarP(&genSize, "size", "s", 15, "grid size (NxN)")
	generateCmd.Flags().IntVarP(&genMinQuality, "min-quality", "q", 0, "minimum total length of placed words")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", ".", "output directory (created if missing)")
	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "json", "output format (json, puz, ipuz, all)")
	generateCmd.Flags().StringVarP(&genWordlist, "wordlist", "w", "", "path to word list file (one word per line)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	formats, err := parseFormats(genFormat)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	if genWordlist == "" {
		return fmt.Errorf("--wordlist flag is required")
	}

	if verbosity > 0 {
		fmt.Printf("Loading word list from: %s\n", genWordlist)
	}

	words, err := wordlist.LoadWords(genWordlist)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}

	if verbosity > 0 {
		fmt.Printf("Loaded %d words\n", len(words))
	}

	puzzleGen := puzzle.NewGenerator()

	if err := os.MkdirAll(genOutput, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("Generating %d grid(s) at size %d\n", genCount, genSize)

	for i := 1; i <= genCount; i++ {
		startTime := time.Now()
		fmt.Printf("[%d/%d] Solving... ", i, genCount)

		puzzleConfig := puzzle.Config{
			Words:      words,
			Size:       genSize,
			MinQuality: genMinQuality,
			Title:      fmt.Sprintf("Crossword %d - %s", i, time.Now().Format("2006-01-02")),
			Author:     "crossgen",
		}

		puz, err := puzzleGen.GeneratePuzzle(ctx, puzzleConfig)
		if err != nil {
			fmt.Printf("FAILED\n")
			return fmt.Errorf("failed to generate grid %d: %w", i, err)
		}

		modelsPuzzle := puzzle.ToModelsPuzzle(puz)
		if err := writeOutputFiles(modelsPuzzle, genOutput, i, formats); err != nil {
			fmt.Printf("FAILED\n")
			return fmt.Errorf("failed to write output files for grid %d: %w", i, err)
		}

		elapsed := time.Since(startTime)
		fmt.Printf("OK (%.1fs, quality=%d)\n", elapsed.Seconds(), puz.Metadata.Quality)
	}

	fmt.Printf("\nSuccessfully generated %d grid(s) in %s\n", genCount, genOutput)
	return nil
}

// parseFormats converts format string to list of formats
func parseFormats(format string) ([]string, error) {
	format = strings.ToLower(format)
	if format == "all" {
		return []string{"json", "puz", "ipuz"}, nil
	}

	validFormats := map[string]bool{
		"json": true,
		"puz":  true,
		"ipuz": true,
	}

	if !validFormats[format] {
		return nil, fmt.Errorf("invalid format: %s (must be json, puz, ipuz, or all)", format)
	}

	return []string{format}, nil
}

// writeOutputFiles writes puzzle to disk in the specified formats
func writeOutputFiles(puz *models.Puzzle, outputDir string, puzzleNum int, formats []string) error {
	baseName := fmt.Sprintf("puzzle_%03d", puzzleNum)

	for _, format := range formats {
		var filePath string
		var data []byte
		var err error

		switch format {
		case "json":
			filePath = filepath.Join(outputDir, baseName+".json")
			data, err = output.ToJSON(puz)
		case "puz":
			filePath = filepath.Join(outputDir, baseName+".puz")
			data, err = output.FormatPuz(puz)
		case "ipuz":
			filePath = filepath.Join(outputDir, baseName+".ipuz")
			data, err = output.ToIPuz(puz)
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return fmt.Errorf("failed to format puzzle as %s: %w", format, err)
		}

		if err := os.WriteFile(filePath, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s file: %w", format, err)
		}
	}

	return nil
}

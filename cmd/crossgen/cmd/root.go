package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfgFile   string
	verbosity int
)

var rootCmd = &cobra.Command{
	Use:   "crossgen",
	Short: "SAT-based crossword layout generator CLI",
	Long: `crossgen encodes crossword word placement as a boolean satisfiability
problem and solves it with gini, for both rectangular and hexagonal grids.
It also converts solved layouts between json, puz, and ipuz formats.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (reported at startup; its contents are not read)")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info, 2=debug)")
}

func initConfig() {
	if cfgFile != "" {
		// Report the config file named by the flag; it is not parsed
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", cfgFile)
	}

	// Set up verbosity level if needed
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "Verbosity level: %d\n", verbosity)
	}
}

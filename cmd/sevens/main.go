// sevens is a terminal color-lines puzzle: slide blocks along free paths
// and line up four or more of one color to clear them.
//
// Usage:
//
//	sevens list              - List board variants
//	sevens play [variant]    - Play a variant (default: sevens)
//	sevens config            - Print the effective rules as YAML
//	sevens autoplay          - Play random moves headless and report
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible games
//	--config <path>       - Load rules from a YAML file
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sevens",
	Short: "Sevens - a color-lines puzzle for your terminal",
	Long: `Sevens is a turn-based puzzle played on a square board of colored blocks.
Move a block along a free path to an empty cell; four or more blocks of one
color in a row, column or diagonal through the landing cell are cleared.
A move that clears nothing brings new blocks onto the board.

Available commands:
  list      - Show the board variants
  play      - Play a variant
  config    - Print the effective rules
  autoplay  - Play random moves without a terminal UI

Examples:
  sevens play
  sevens play sevens9 --difficulty hard
  sevens config --config ./my-rules.yaml
  sevens autoplay --games 10 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(autoplayCmd)
}

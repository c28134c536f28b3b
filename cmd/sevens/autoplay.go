package main

import (
	"fmt"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sevens/internal/engine"
	"github.com/vovakirdan/sevens/internal/games/sevens"
)

var (
	flagGames    int
	flagMaxMoves int
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Play random legal moves without a terminal UI",
	Long: `Plays games with random legal moves until the board fills and prints a
summary per game. Useful for checking a rules file before playing it.

With --seed, game i uses seed+i, so runs are reproducible.

Examples:
  sevens autoplay
  sevens autoplay --games 20 --seed 1 --difficulty hard
  sevens autoplay --size 10 --max-moves 200 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play")
	autoplayCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = no limit)")
	autoplayCmd.Flags().IntVar(&flagSize, "size", 0, "Board side (0 = configured default)")
}

func runAutoplay(cmd *cobra.Command, args []string) error {
	if flagGames < 1 {
		return fmt.Errorf("--games must be positive, got %d", flagGames)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := applyGameSettings(logger); err != nil {
		return err
	}
	cfg, err := sevens.LoadConfig()
	if err != nil {
		return err
	}
	size := cfg.Board.DefaultSize
	if flagSize > 0 {
		size = flagSize
	}
	if !cfg.SizeInRange(size) {
		return fmt.Errorf("board size %d outside %d..%d", size, cfg.Board.MinSize, cfg.Board.MaxSize)
	}

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GAME\tSEED\tMOVES\tSCORE\tLEVEL\tFREE MOVES\tRESULT")

	total := 0
	for i := 0; i < flagGames; i++ {
		seed := base + int64(i)
		e, err := engine.New(cfg.EngineRules(), engine.WithSeed(seed), engine.WithLogger(logger.With("game", i+1)))
		if err != nil {
			return err
		}
		if err := e.Reset(size); err != nil {
			return err
		}

		res := sevens.Autoplay(e, rand.New(rand.NewSource(seed)), flagMaxMoves)
		result := "board full"
		if !res.Final.Over {
			result = "stopped"
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			i+1, seed, res.Moves, res.Final.Score, res.Final.Level, res.FreeMoves, result)
		logger.Debug("autoplay finished", "game", i+1, "moves", res.Moves, "score", res.Final.Score)
		total += res.Final.Score
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if flagGames > 1 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nAverage score: %.1f\n", float64(total)/float64(flagGames))
	}
	return nil
}

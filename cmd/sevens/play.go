package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sevens/internal/core"
	"github.com/vovakirdan/sevens/internal/platform/tui"
	"github.com/vovakirdan/sevens/internal/registry"
)

var flagSize int

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given board variant (default: sevens, 7x7).

Controls:
  Arrows/HJKL   - Move the cursor
  Enter/Space   - Select a block, then move it to the cursor
  F             - Toggle free move (move without a path)
  U             - Undo the last move
  Esc           - Clear the selection
  R             - Restart (after game over)
  ?             - Show all keys
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - One color fewer, two more undos, smaller spawns
  normal - Rules as configured
  hard   - One color more, one undo fewer, larger spawns
  fixed  - Spawn size never grows with the level

Examples:
  sevens play
  sevens play sevens10
  sevens play --difficulty easy
  sevens play --size 8 --seed 7
  sevens play --config ./my-rules.yaml --log-file sevens.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board side override (0 = the variant's size)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "sevens"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'sevens list' to see variants)", gameID)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := applyGameSettings(logger); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		Seed:      flagSeed,
		BoardSize: flagSize,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Info("starting", "variant", gameID, "width", width, "height", height)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("play %s: %w", gameID, err)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sevens/internal/config"
	"github.com/vovakirdan/sevens/internal/games/sevens"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective rules as YAML",
	Long: `Loads the rules the same way 'play' does, applies the difficulty preset
and prints the result. Save the output to ~/.sevens/configs/sevens.yaml or
./configs/sevens.yaml to customize the game.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
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
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

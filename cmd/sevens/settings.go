package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sevens/internal/config"
	"github.com/vovakirdan/sevens/internal/games/sevens"
)

// newLogger builds the command logger from the global flags. Without a log
// file, interactive commands discard logs since the alternate screen owns
// the terminal. The returned func closes the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closer = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sevens",
		Level:           level,
	})
	return logger, closer, nil
}

// applyGameSettings hands the global flags to the game package.
func applyGameSettings(logger *log.Logger) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	sevens.SetConfigPath(flagConfig)
	sevens.SetDifficultyPreset(preset)
	sevens.SetLogger(logger)
	return nil
}

// Package config provides YAML-based rules configuration and difficulty
// presets for Sevens.
package config

import (
	"fmt"

	"github.com/vovakirdan/sevens/internal/engine"
)

// SevensConfig contains all configuration for a game of Sevens.
type SevensConfig struct {
	Board BoardConfig `yaml:"board"`
	Rules RulesConfig `yaml:"rules"`
}

// BoardConfig defines the board geometry and palette.
type BoardConfig struct {
	DefaultSize int `yaml:"default_size"`
	MinSize     int `yaml:"min_size"`
	MaxSize     int `yaml:"max_size"`
	Colors      int `yaml:"colors"` // Number of block colors
}

// RulesConfig defines scoring, leveling and spawning.
type RulesConfig struct {
	MatchLength      int   `yaml:"match_length"`
	LinesPerLevel    int   `yaml:"lines_per_level"`
	BlocksPerLevel   []int `yaml:"blocks_per_level"` // Blocks spawned per round, by level
	InitialUndos     int   `yaml:"initial_undos"`
	InitialFreeMoves int   `yaml:"initial_free_moves"`
	InitialQueue     []int `yaml:"initial_queue"`
}

// EngineRules converts the configuration to engine rules.
func (c SevensConfig) EngineRules() engine.Rules {
	queue := make([]engine.Color, len(c.Rules.InitialQueue))
	for i, v := range c.Rules.InitialQueue {
		queue[i] = engine.Color(v)
	}
	return engine.Rules{
		Colors:           c.Board.Colors,
		MinSize:          c.Board.MinSize,
		MatchLength:      c.Rules.MatchLength,
		LinesPerLevel:    c.Rules.LinesPerLevel,
		BlocksPerLevel:   append([]int(nil), c.Rules.BlocksPerLevel...),
		InitialUndos:     c.Rules.InitialUndos,
		InitialFreeMoves: c.Rules.InitialFreeMoves,
		InitialQueue:     queue,
	}
}

// Validate reports the first problem that would make the configuration
// unplayable.
func (c SevensConfig) Validate() error {
	b := c.Board
	if b.MaxSize < b.MinSize {
		return fmt.Errorf("config: max_size %d is below min_size %d", b.MaxSize, b.MinSize)
	}
	if b.DefaultSize < b.MinSize || b.DefaultSize > b.MaxSize {
		return fmt.Errorf("config: default_size %d is outside %d..%d", b.DefaultSize, b.MinSize, b.MaxSize)
	}
	if c.Rules.MatchLength > b.MinSize {
		return fmt.Errorf("config: match_length %d does not fit a %dx%d board", c.Rules.MatchLength, b.MinSize, b.MinSize)
	}
	if err := c.EngineRules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SizeInRange reports whether size is an accepted board side.
func (c SevensConfig) SizeInRange(size int) bool {
	return size >= c.Board.MinSize && size <= c.Board.MaxSize
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. An empty value means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

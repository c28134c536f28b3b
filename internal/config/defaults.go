package config

import (
	_ "embed"
)

//go:embed defaults/sevens.yaml
var defaultSevensYAML []byte

// DefaultSevensConfig returns the default Sevens configuration.
func DefaultSevensConfig() SevensConfig {
	return SevensConfig{
		Board: BoardConfig{
			DefaultSize: 7,
			MinSize:     7,
			MaxSize:     10,
			Colors:      5,
		},
		Rules: RulesConfig{
			MatchLength:      4,
			LinesPerLevel:    40,
			BlocksPerLevel:   []int{3, 4, 5},
			InitialUndos:     2,
			InitialFreeMoves: 0,
			InitialQueue:     []int{1, 2, 3},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSevensYAML
}

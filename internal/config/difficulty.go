package config

// ApplySevensPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplySevensPreset(cfg *SevensConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Colors = clampI(cfg.Board.Colors-1, minColors(cfg), cfg.Board.Colors)
		cfg.Rules.InitialUndos += 2
		cfg.Rules.BlocksPerLevel = scaleBlocks(cfg.Rules.BlocksPerLevel, -1)
	case DifficultyHard:
		cfg.Board.Colors++
		cfg.Rules.InitialUndos = clampI(cfg.Rules.InitialUndos-1, 0, cfg.Rules.InitialUndos)
		cfg.Rules.BlocksPerLevel = scaleBlocks(cfg.Rules.BlocksPerLevel, 1)
	case DifficultyFixed:
		// Spawn the first level's count forever.
		if len(cfg.Rules.BlocksPerLevel) > 0 {
			cfg.Rules.BlocksPerLevel = cfg.Rules.BlocksPerLevel[:1:1]
		}
	}
}

// scaleBlocks shifts every entry of the refill table by delta, keeping at
// least one block per round.
func scaleBlocks(table []int, delta int) []int {
	out := make([]int, len(table))
	for i, n := range table {
		out[i] = max(n+delta, 1)
	}
	return out
}

// minColors is the smallest palette that still holds every color of the
// initial queue.
func minColors(cfg *SevensConfig) int {
	m := 2
	for _, c := range cfg.Rules.InitialQueue {
		m = max(m, c)
	}
	return m
}

// clampI restricts an int to [lo, hi].
func clampI(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

package config

// DifficultyManager derives per-level parameters from the config.
// The only scaling is a linear obstacle speed multiplier.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SpeedMultiplier returns 1 + step*level for a zero-based level index.
func (d *DifficultyManager) SpeedMultiplier(level int) float64 {
	if level < 0 {
		level = 0
	}
	return 1.0 + d.cfg.SpeedStep*float64(level)
}

// SpawnAttempts returns the resample cap for belt placement (at least 1).
func (d *DifficultyManager) SpawnAttempts() int {
	if d.cfg.SpawnAttempts < 1 {
		return 1
	}
	return d.cfg.SpawnAttempts
}

// IsFixed reports whether obstacle speed stays constant across levels.
func (d *DifficultyManager) IsFixed() bool {
	return d.cfg.SpeedStep == 0
}

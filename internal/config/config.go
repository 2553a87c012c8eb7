// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

import (
	"errors"
	"fmt"
)

// AsteroidsConfig contains all configuration for the game.
type AsteroidsConfig struct {
	Ship       ShipConfig       `yaml:"ship"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Lasers     LaserConfig      `yaml:"lasers"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// ShipConfig defines ship kinematics and timers. Durations are in seconds.
type ShipConfig struct {
	Size       float64 `yaml:"size"`        // Height of the ship; radius is size/2
	Thrust     float64 `yaml:"thrust"`      // Acceleration in units per second per second
	Friction   float64 `yaml:"friction"`    // 0 = no friction, 1 = lots
	TurnSpeed  float64 `yaml:"turn_speed"`  // Degrees per second
	ExplodeDur float64 `yaml:"explode_dur"` // Explosion length
	InvulnDur  float64 `yaml:"invuln_dur"`  // Invulnerability window after (re)spawn
	BlinkDur   float64 `yaml:"blink_dur"`   // Length of one blink phase while invulnerable
}

// ObstacleConfig defines the asteroid belt.
type ObstacleConfig struct {
	BaseCount int     `yaml:"base_count"` // Large obstacles at level 0
	Size      float64 `yaml:"size"`       // Diameter of a large obstacle
	Jag       float64 `yaml:"jag"`        // Jaggedness, 0 = none, 1 = lots
	Speed     float64 `yaml:"speed"`      // Max starting speed in units per second
	Vertices  int     `yaml:"vertices"`   // Average vertex count
}

// LaserConfig defines projectile behavior.
type LaserConfig struct {
	Max        int     `yaml:"max"`         // Magazine cap
	Speed      float64 `yaml:"speed"`       // Units per second
	MaxDist    float64 `yaml:"max_dist"`    // Travel limit as a fraction of field width
	ExplodeDur float64 `yaml:"explode_dur"` // Impact flash length in seconds
}

// GameplayConfig defines scoring, lives and the HUD banner.
type GameplayConfig struct {
	Lives        int     `yaml:"lives"`
	PointsLarge  int     `yaml:"points_large"`
	PointsMedium int     `yaml:"points_medium"`
	PointsSmall  int     `yaml:"points_small"`
	BannerFade   float64 `yaml:"banner_fade"`    // Seconds for a banner to fade out
	HighScoreKey string  `yaml:"high_score_key"` // Storage key of the best-score cell
}

// DifficultyConfig defines the linear per-level multiplier.
type DifficultyConfig struct {
	SpeedStep     float64 `yaml:"speed_step"`     // Obstacle speed multiplier = 1 + step*level
	SpawnAttempts int     `yaml:"spawn_attempts"` // Resample cap for belt placement
}

// AudioConfig toggles sound effects.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 - 1.0
}

// ShipRadius returns the collision radius of the ship.
func (c AsteroidsConfig) ShipRadius() float64 {
	return c.Ship.Size / 2
}

// LargeRadius returns the collision radius of a large obstacle.
func (c AsteroidsConfig) LargeRadius() float64 {
	return c.Obstacles.Size / 2
}

// Validate reports settings that would break the simulation.
func (c AsteroidsConfig) Validate() error {
	var errs []error

	if c.Ship.Size <= 0 {
		errs = append(errs, fmt.Errorf("ship.size must be positive, got %v", c.Ship.Size))
	}
	if c.Ship.Friction < 0 || c.Ship.Friction > 1 {
		errs = append(errs, fmt.Errorf("ship.friction must be in [0, 1], got %v", c.Ship.Friction))
	}
	if c.Ship.BlinkDur <= 0 {
		errs = append(errs, fmt.Errorf("ship.blink_dur must be positive, got %v", c.Ship.BlinkDur))
	}
	if c.Ship.ExplodeDur <= 0 {
		errs = append(errs, fmt.Errorf("ship.explode_dur must be positive, got %v", c.Ship.ExplodeDur))
	}
	if c.Obstacles.Size <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.size must be positive, got %v", c.Obstacles.Size))
	}
	if c.Obstacles.BaseCount < 0 {
		errs = append(errs, fmt.Errorf("obstacles.base_count must not be negative, got %d", c.Obstacles.BaseCount))
	}
	if c.Obstacles.Vertices < 3 {
		errs = append(errs, fmt.Errorf("obstacles.vertices must be at least 3, got %d", c.Obstacles.Vertices))
	}
	if c.Lasers.Max <= 0 {
		errs = append(errs, fmt.Errorf("lasers.max must be positive, got %d", c.Lasers.Max))
	}
	if c.Lasers.Speed <= 0 {
		errs = append(errs, fmt.Errorf("lasers.speed must be positive, got %v", c.Lasers.Speed))
	}
	if c.Lasers.ExplodeDur <= 0 {
		errs = append(errs, fmt.Errorf("lasers.explode_dur must be positive, got %v", c.Lasers.ExplodeDur))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.BannerFade <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.banner_fade must be positive, got %v", c.Gameplay.BannerFade))
	}
	if c.Gameplay.HighScoreKey == "" {
		errs = append(errs, errors.New("gameplay.high_score_key must not be empty"))
	}
	if c.Difficulty.SpeedStep < 0 {
		errs = append(errs, fmt.Errorf("difficulty.speed_step must not be negative, got %v", c.Difficulty.SpeedStep))
	}
	if c.Difficulty.SpawnAttempts <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.spawn_attempts must be positive, got %d", c.Difficulty.SpawnAttempts))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Ship: ShipConfig{
			Size:       30,
			Thrust:     5,
			Friction:   0.7,
			TurnSpeed:  360,
			ExplodeDur: 0.3,
			InvulnDur:  3,
			BlinkDur:   0.1,
		},
		Obstacles: ObstacleConfig{
			BaseCount: 3,
			Size:      100,
			Jag:       0.4,
			Speed:     50,
			Vertices:  10,
		},
		Lasers: LaserConfig{
			Max:        10,
			Speed:      500,
			MaxDist:    0.6,
			ExplodeDur: 0.1,
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			PointsLarge:  20,
			PointsMedium: 50,
			PointsSmall:  100,
			BannerFade:   2.5,
			HighScoreKey: "asteroids.highscore",
		},
		Difficulty: DifficultyConfig{
			SpeedStep:     0.1,
			SpawnAttempts: 1000,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}

package asteroids

import (
	"math"

	"github.com/vovakirdan/asteroids/internal/config"
	"github.com/vovakirdan/asteroids/internal/core"
)

// World holds the read-only parameters every entity needs: tuning,
// playfield bounds and tick rate.
type World struct {
	Cfg        config.AsteroidsConfig
	W, H       float64
	FPS        float64
	Difficulty *config.DifficultyManager
}

// NewWorld builds a World from game config and runtime settings.
func NewWorld(cfg config.AsteroidsConfig, rt core.RuntimeConfig) *World {
	fps := rt.TickRate
	if fps <= 0 {
		fps = core.DefaultConfig().TickRate
	}
	w, h := rt.FieldW, rt.FieldH
	if w <= 0 || h <= 0 {
		def := core.DefaultConfig()
		w, h = def.FieldW, def.FieldH
	}
	return &World{
		Cfg:        cfg,
		W:          w,
		H:          h,
		FPS:        float64(fps),
		Difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// Ticks converts a duration in seconds to a whole number of ticks, rounding up.
func (w *World) Ticks(seconds float64) int {
	return int(math.Ceil(seconds * w.FPS))
}

// Center returns the middle of the playfield.
func (w *World) Center() core.Vec {
	return core.V(w.W/2, w.H/2)
}

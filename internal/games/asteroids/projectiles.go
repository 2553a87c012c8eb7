package asteroids

import (
	"github.com/vovakirdan/asteroids/internal/core"
)

// Projectile is a laser bolt.
type Projectile struct {
	Pos         core.Vec
	Vel         core.Vec // Per tick
	Dist        float64  // Accumulated travel
	ExplodeTime int      // 0 while flying
}

// NewProjectile launches a bolt from the ship's nose along its heading.
func NewProjectile(s *Ship, w *World) Projectile {
	return Projectile{
		Pos: s.Nose(),
		Vel: core.FromAngle(s.Angle, w.Cfg.Lasers.Speed/w.FPS),
	}
}

// Flying reports whether the bolt can still hit anything.
func (p *Projectile) Flying() bool {
	return p.ExplodeTime == 0
}

// Hit stops the bolt and starts its short explosion.
func (p *Projectile) Hit(w *World) {
	p.ExplodeTime = max(w.Ticks(w.Cfg.Lasers.ExplodeDur), 1)
}

// advanceProjectiles moves or counts down every bolt and drops retired ones.
// Distance retirement applies regardless of explosion state.
func advanceProjectiles(ps []Projectile, w *World) []Projectile {
	limit := w.Cfg.Lasers.MaxDist * w.W
	kept := ps[:0]
	for _, p := range ps {
		if p.Dist > limit {
			continue
		}
		if p.ExplodeTime > 0 {
			p.ExplodeTime--
			if p.ExplodeTime == 0 {
				continue
			}
			kept = append(kept, p)
			continue
		}
		p.Pos = core.WrapTorus(p.Pos.Add(p.Vel), w.W, w.H)
		p.Dist += p.Vel.Len()
		kept = append(kept, p)
	}
	return kept
}

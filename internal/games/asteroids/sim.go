package asteroids

import (
	"github.com/vovakirdan/asteroids/internal/core"
)

// Advance runs one fixed tick and returns the frame to draw together with
// the events it produced. Phases run in a fixed order:
//
//  1. apply queued input edges
//  2. integrate the ship
//  3. integrate projectiles
//  4. integrate obstacles
//  5. projectile vs obstacle
//  6. ship vs obstacle
//  7. blink and explosion timers
//  8. level advance
//  9. banner fade
//  10. snapshot
func Advance(st *State, in core.InputFrame) (Snapshot, []core.Event) {
	st.events = st.events[:0]
	st.Tick++
	w := st.World

	applyInput(st, in)
	st.Ship.Apply(st.Intents, w)

	st.Ship.Integrate(w)

	st.Ship.Projectiles = advanceProjectiles(st.Ship.Projectiles, w)

	st.Field.Advance()

	resolveProjectileHits(st)

	wasExploding := st.Ship.State() == ShipExploding
	resolveShipCollision(st)

	updateTimers(st, wasExploding)

	// A dead ship keeps its game over banner even if the field emptied
	if st.Field.Empty() && !st.Ship.Dead {
		advanceLevel(st)
	}

	decayBanner(st)

	events := make([]core.Event, len(st.events))
	copy(events, st.events)
	return st.Snapshot(), events
}

// applyInput replays the tick's edges in arrival order.
// A dead ship ignores everything.
func applyInput(st *State, in core.InputFrame) {
	if st.Ship.Dead {
		return
	}
	for _, a := range in.Actions {
		switch a {
		case core.ActionRotateLeftStart:
			st.Intents.RotateLeft = true
		case core.ActionRotateLeftStop:
			st.Intents.RotateLeft = false
		case core.ActionRotateRightStart:
			st.Intents.RotateRight = true
		case core.ActionRotateRightStop:
			st.Intents.RotateRight = false
		case core.ActionThrustStart:
			if !st.Intents.Thrust && st.Ship.State() == ShipFlying {
				st.emit(core.EventThrust)
			}
			st.Intents.Thrust = true
		case core.ActionThrustStop:
			st.Intents.Thrust = false
		case core.ActionFireStart:
			if st.Ship.TryFire(st.World) {
				st.emit(core.EventFire)
			}
		case core.ActionFireStop:
			st.Ship.ReleaseFire()
		}
	}
}

// ReleaseHeld applies only the Stop edges of a frame. Used while paused so
// keys released during the pause do not stay stuck on resume.
func ReleaseHeld(st *State, in core.InputFrame) {
	in.Each(func(a core.Action) {
		switch a {
		case core.ActionRotateLeftStop:
			st.Intents.RotateLeft = false
		case core.ActionRotateRightStop:
			st.Intents.RotateRight = false
		case core.ActionThrustStop:
			st.Intents.Thrust = false
		case core.ActionFireStop:
			st.Ship.ReleaseFire()
		}
	})
}

// resolveProjectileHits walks obstacles and projectiles from the back,
// marks hits in a removal set and rebuilds the field once. A projectile
// stops after its first hit, so it destroys at most one obstacle.
func resolveProjectileHits(st *State) {
	obs := st.Field.Obstacles
	ps := st.Ship.Projectiles
	if len(obs) == 0 || len(ps) == 0 {
		return
	}

	hits := make(map[int]bool)
	for i := len(obs) - 1; i >= 0; i-- {
		for j := len(ps) - 1; j >= 0; j-- {
			p := &ps[j]
			if !p.Flying() {
				continue
			}
			if core.Overlaps(p.Pos, 0, obs[i].Pos, obs[i].Radius) {
				hits[i] = true
				p.Hit(st.World)
				break
			}
		}
	}

	pts, n := st.Field.Resolve(hits)
	for k := 0; k < n; k++ {
		st.emit(core.EventObstacleHit)
	}
	st.award(pts)
}

// resolveShipCollision explodes a flying, vulnerable ship that touches an
// obstacle. The obstacle it hit is destroyed and scored.
func resolveShipCollision(st *State) {
	s := &st.Ship
	if s.State() != ShipFlying || s.Invulnerable() {
		return
	}
	for i := len(st.Field.Obstacles) - 1; i >= 0; i-- {
		o := st.Field.Obstacles[i]
		if !core.Overlaps(s.Pos, s.Radius, o.Pos, o.Radius) {
			continue
		}
		s.Explode(st.World)
		st.emit(core.EventShipExploded)
		st.emit(core.EventObstacleHit)
		st.award(st.Field.SplitOrScore(i))
		return
	}
}

// updateTimers ticks blink or explosion. An explosion that began this tick
// is not counted down until the next one.
func updateTimers(st *State, wasExploding bool) {
	s := &st.Ship
	switch s.State() {
	case ShipFlying:
		s.tickBlink(st.World)
	case ShipExploding:
		if wasExploding && s.tickExplosion() {
			completeExplosion(st)
		}
	}
}

// completeExplosion spends a life and either respawns or ends the session.
func completeExplosion(st *State) {
	st.Session.Lives--
	if st.Session.Lives > 0 {
		st.Ship = NewShip(st.World)
		st.emit(core.EventShipRespawned)
		return
	}

	st.Session.Lives = 0
	st.Ship.Dead = true
	st.Ship.Thrusting = false
	st.Ship.Projectiles = st.Ship.Projectiles[:0]
	st.Intents = Intents{}
	st.Session.showBanner("Game Over")
	st.emit(core.EventGameOver)
}

// advanceLevel moves to the next level and spawns its belt at once.
func advanceLevel(st *State) {
	st.Session.Level++
	st.Field.SpawnBelt(st.Session.Level, st.Ship.Pos, st.Ship.Radius)
	st.Session.showBanner(levelBanner(st.Session.Level))
	st.emit(core.EventLevelCleared)
}

// decayBanner fades the banner to zero over the configured duration.
func decayBanner(st *State) {
	if st.Session.BannerAlpha <= 0 {
		return
	}
	step := 1.0 / (st.World.Cfg.Gameplay.BannerFade * st.World.FPS)
	st.Session.BannerAlpha -= step
	if st.Session.BannerAlpha < 0 {
		st.Session.BannerAlpha = 0
	}
}

package asteroids

import (
	"math"

	"github.com/vovakirdan/asteroids/internal/core"
)

// ShipState is the lifecycle phase of the ship.
type ShipState int

const (
	ShipFlying ShipState = iota
	ShipExploding
	ShipDead
)

// String returns a human-readable name for the state.
func (s ShipState) String() string {
	switch s {
	case ShipFlying:
		return "flying"
	case ShipExploding:
		return "exploding"
	case ShipDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Intents are the held-control flags set by Start/Stop edges.
// They outlive a respawn so a key held through an explosion keeps acting.
type Intents struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
}

// Ship is the player's triangle.
type Ship struct {
	Pos       core.Vec
	Angle     float64  // Heading in radians, pi/2 points up
	Rot       float64  // Angular velocity per tick
	Thrust    core.Vec // Velocity per tick
	Thrusting bool
	Radius    float64
	CanShoot  bool

	Projectiles []Projectile

	BlinkTime   int // Ticks left in the current blink phase
	BlinkCount  int // Blink phases left; invulnerable while > 0
	ExplodeTime int // Ticks left in the explosion; exploding while > 0
	Dead        bool
}

// NewShip creates a ship at the field center with a full invulnerability window.
func NewShip(w *World) Ship {
	sc := w.Cfg.Ship
	return Ship{
		Pos:         w.Center(),
		Angle:       math.Pi / 2,
		Radius:      sc.Size / 2,
		CanShoot:    true,
		Projectiles: make([]Projectile, 0, w.Cfg.Lasers.Max),
		BlinkTime:   w.Ticks(sc.BlinkDur),
		BlinkCount:  int(math.Ceil(sc.InvulnDur / sc.BlinkDur)),
	}
}

// State reports the lifecycle phase.
func (s *Ship) State() ShipState {
	switch {
	case s.Dead:
		return ShipDead
	case s.ExplodeTime > 0:
		return ShipExploding
	default:
		return ShipFlying
	}
}

// Invulnerable reports whether collisions are currently ignored.
func (s *Ship) Invulnerable() bool {
	return s.BlinkCount > 0
}

// Visible reports the blink phase. Always true once invulnerability ends.
func (s *Ship) Visible() bool {
	return s.BlinkCount%2 == 0
}

// InvulnerableTicks returns how many ticks of invulnerability remain.
func (s *Ship) InvulnerableTicks(w *World) int {
	if s.BlinkCount <= 0 {
		return 0
	}
	return (s.BlinkCount-1)*w.Ticks(w.Cfg.Ship.BlinkDur) + s.BlinkTime
}

// Nose returns the tip of the triangle, where projectiles spawn.
func (s *Ship) Nose() core.Vec {
	return s.Pos.Add(core.FromAngle(s.Angle, 4.0/3.0*s.Radius))
}

// Apply converts held intents into angular velocity and the thrust flag.
func (s *Ship) Apply(in Intents, w *World) {
	turn := core.DegToRad(w.Cfg.Ship.TurnSpeed) / w.FPS
	s.Rot = 0
	if in.RotateLeft {
		s.Rot += turn
	}
	if in.RotateRight {
		s.Rot -= turn
	}
	s.Thrusting = in.Thrust
}

// Integrate advances velocity, heading and position by one tick.
// Only a flying ship moves.
func (s *Ship) Integrate(w *World) {
	if s.State() != ShipFlying {
		return
	}

	sc := w.Cfg.Ship
	if s.Thrusting {
		s.Thrust = s.Thrust.Add(core.FromAngle(s.Angle, sc.Thrust/w.FPS))
	} else {
		s.Thrust = s.Thrust.Sub(s.Thrust.Scale(sc.Friction / w.FPS))
	}

	s.Angle += s.Rot
	s.Pos = core.WrapRadius(s.Pos.Add(s.Thrust), s.Radius, w.W, w.H)
}

// tickBlink counts down the invulnerability window one tick.
func (s *Ship) tickBlink(w *World) {
	if s.BlinkCount <= 0 {
		return
	}
	s.BlinkTime--
	if s.BlinkTime <= 0 {
		s.BlinkTime = w.Ticks(w.Cfg.Ship.BlinkDur)
		s.BlinkCount--
	}
}

// Explode starts the explosion countdown. Ignored unless flying.
func (s *Ship) Explode(w *World) {
	if s.State() != ShipFlying {
		return
	}
	s.ExplodeTime = w.Ticks(w.Cfg.Ship.ExplodeDur)
	s.Thrusting = false
	s.Rot = 0
}

// tickExplosion counts down the explosion and reports completion.
func (s *Ship) tickExplosion() bool {
	if s.ExplodeTime <= 0 {
		return false
	}
	s.ExplodeTime--
	return s.ExplodeTime == 0
}

// TryFire spawns a projectile from the nose when the ship is flying,
// fire is armed and the live count is under the cap. Fire stays disarmed
// until ReleaseFire.
func (s *Ship) TryFire(w *World) bool {
	if s.State() != ShipFlying || !s.CanShoot || len(s.Projectiles) >= w.Cfg.Lasers.Max {
		return false
	}
	s.Projectiles = append(s.Projectiles, NewProjectile(s, w))
	s.CanShoot = false
	return true
}

// ReleaseFire re-arms the gun. Only the FireStop edge calls this.
func (s *Ship) ReleaseFire() {
	s.CanShoot = true
}

package asteroids

import (
	"math"
	"testing"

	"github.com/vovakirdan/asteroids/internal/core"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNewShip(t *testing.T) {
	w := testWorld()
	s := NewShip(w)

	if s.Pos != core.V(400, 300) {
		t.Errorf("Pos = %+v, expected field center", s.Pos)
	}
	if !near(s.Angle, math.Pi/2) {
		t.Errorf("Angle = %v, expected pi/2", s.Angle)
	}
	if s.Radius != 15 {
		t.Errorf("Radius = %v, expected 15", s.Radius)
	}
	if !s.CanShoot || len(s.Projectiles) != 0 {
		t.Error("new ship should be armed with no projectiles")
	}
	if s.State() != ShipFlying {
		t.Errorf("State() = %s, expected flying", s.State())
	}
	if !s.Invulnerable() || !s.Visible() {
		t.Error("new ship should be invulnerable and visible")
	}
	if got := s.InvulnerableTicks(w); got != 90 {
		t.Errorf("InvulnerableTicks() = %d, expected 90", got)
	}
}

func TestShipBlinkCycle(t *testing.T) {
	w := testWorld()
	s := NewShip(w)

	for i := 0; i < 3; i++ {
		s.tickBlink(w)
	}
	if s.Visible() {
		t.Error("ship should be hidden in the second blink phase")
	}
	for i := 0; i < 3; i++ {
		s.tickBlink(w)
	}
	if !s.Visible() {
		t.Error("ship should reappear in the third blink phase")
	}

	for i := 6; i < 90; i++ {
		if !s.Invulnerable() {
			t.Fatalf("invulnerability ended early at tick %d", i)
		}
		s.tickBlink(w)
	}
	if s.Invulnerable() {
		t.Error("invulnerability should end after 90 ticks")
	}
	if !s.Visible() {
		t.Error("ship should stay visible once invulnerability ends")
	}
	if s.InvulnerableTicks(w) != 0 {
		t.Errorf("InvulnerableTicks() = %d, expected 0", s.InvulnerableTicks(w))
	}
}

func TestShipIntegrate(t *testing.T) {
	w := testWorld()

	tests := []struct {
		name      string
		intents   Intents
		thrust    core.Vec
		wantAngle float64
		wantVel   core.Vec
	}{
		{
			name:      "thrust up",
			intents:   Intents{Thrust: true},
			wantAngle: math.Pi / 2,
			wantVel:   core.V(0, -5.0/30),
		},
		{
			name:      "friction",
			thrust:    core.V(3, -3),
			wantAngle: math.Pi / 2,
			wantVel:   core.V(3-0.7*3/30, -3+0.7*3/30),
		},
		{
			name:      "rotate left",
			intents:   Intents{RotateLeft: true},
			wantAngle: math.Pi/2 + 2*math.Pi/30,
		},
		{
			name:      "rotate right",
			intents:   Intents{RotateRight: true},
			wantAngle: math.Pi/2 - 2*math.Pi/30,
		},
		{
			name:      "both rotations cancel",
			intents:   Intents{RotateLeft: true, RotateRight: true},
			wantAngle: math.Pi / 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewShip(w)
			s.Thrust = tc.thrust
			start := s.Pos

			s.Apply(tc.intents, w)
			s.Integrate(w)

			if !near(s.Angle, tc.wantAngle) {
				t.Errorf("Angle = %v, expected %v", s.Angle, tc.wantAngle)
			}
			if !near(s.Thrust.X, tc.wantVel.X) || !near(s.Thrust.Y, tc.wantVel.Y) {
				t.Errorf("Thrust = %+v, expected %+v", s.Thrust, tc.wantVel)
			}
			moved := s.Pos.Sub(start)
			if !near(moved.X, s.Thrust.X) || !near(moved.Y, s.Thrust.Y) {
				t.Errorf("moved %+v, expected %+v", moved, s.Thrust)
			}
		})
	}
}

func TestShipWraps(t *testing.T) {
	w := testWorld()
	s := NewShip(w)
	s.Pos = core.V(w.W+s.Radius-0.1, 100)
	s.Thrust = core.V(1, 0)

	s.Integrate(w)
	if s.Pos.X != -s.Radius {
		t.Errorf("x = %v, expected %v", s.Pos.X, -s.Radius)
	}
}

func TestExplodingShipDoesNotMove(t *testing.T) {
	w := testWorld()
	s := NewShip(w)
	s.BlinkCount = 0
	s.Thrust = core.V(2, 2)
	s.Explode(w)

	if s.State() != ShipExploding {
		t.Fatalf("State() = %s, expected exploding", s.State())
	}
	if s.ExplodeTime != 9 {
		t.Errorf("ExplodeTime = %d, expected 9", s.ExplodeTime)
	}

	start := s.Pos
	s.Apply(Intents{Thrust: true, RotateLeft: true}, w)
	s.Integrate(w)
	if s.Pos != start || !near(s.Angle, math.Pi/2) {
		t.Error("exploding ship should not steer or move")
	}

	for i := 0; i < 8; i++ {
		if s.tickExplosion() {
			t.Fatalf("explosion completed early after %d ticks", i+1)
		}
	}
	if !s.tickExplosion() {
		t.Error("explosion should complete on the ninth tick")
	}
}

func TestTryFire(t *testing.T) {
	w := testWorld()
	s := NewShip(w)

	if !s.TryFire(w) {
		t.Fatal("armed ship should fire")
	}
	p := s.Projectiles[0]
	if !near(p.Pos.X, 400) || !near(p.Pos.Y, 300-20) {
		t.Errorf("projectile spawned at %+v, expected the nose (400, 280)", p.Pos)
	}
	if !near(p.Vel.X, 0) || !near(p.Vel.Y, -500.0/30) {
		t.Errorf("projectile velocity = %+v", p.Vel)
	}

	if s.TryFire(w) {
		t.Error("fire should stay disarmed until released")
	}
	s.ReleaseFire()
	if !s.TryFire(w) {
		t.Error("fire should re-arm after release")
	}
	if len(s.Projectiles) != 2 {
		t.Errorf("len(Projectiles) = %d, expected 2", len(s.Projectiles))
	}
}

func TestTryFireRespectsCap(t *testing.T) {
	w := testWorld()
	s := NewShip(w)
	for i := 0; i < w.Cfg.Lasers.Max; i++ {
		s.Projectiles = append(s.Projectiles, parked(core.V(1, 1)))
	}

	if s.TryFire(w) {
		t.Error("fire should be rejected at the cap")
	}
	if len(s.Projectiles) != w.Cfg.Lasers.Max {
		t.Errorf("len(Projectiles) = %d, expected %d", len(s.Projectiles), w.Cfg.Lasers.Max)
	}
	if !s.CanShoot {
		t.Error("a rejected shot should not consume the trigger")
	}
}

func TestTryFireWhileExploding(t *testing.T) {
	w := testWorld()
	s := NewShip(w)
	s.BlinkCount = 0
	s.Explode(w)

	if s.TryFire(w) {
		t.Error("exploding ship should not fire")
	}
}

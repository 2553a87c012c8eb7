package asteroids

import (
	"math"

	"github.com/vovakirdan/asteroids/internal/core"
)

// ShipView is the drawable part of the ship.
type ShipView struct {
	Pos       core.Vec
	Angle     float64
	Radius    float64
	Visible   bool
	Thrusting bool
	State     ShipState
}

// ObstacleView is one obstacle's silhouette.
type ObstacleView struct {
	Pos     core.Vec
	Radius  float64
	Angle   float64
	Tier    Tier
	Offsets []float64
}

// Vertices returns the polygon outline in playfield coordinates.
func (o ObstacleView) Vertices() []core.Vec {
	return Obstacle{Pos: o.Pos, Radius: o.Radius, Angle: o.Angle, Vert: len(o.Offsets), Offsets: o.Offsets}.Vertices()
}

// ProjectileView is one laser bolt.
type ProjectileView struct {
	Pos       core.Vec
	Exploding bool
}

// Snapshot is an immutable copy of everything a renderer needs.
// Slices are owned by the snapshot and never aliased with live state.
type Snapshot struct {
	Tick        uint64
	FieldW      float64
	FieldH      float64
	Ship        ShipView
	Obstacles   []ObstacleView
	Projectiles []ProjectileView
	Score       int
	HighScore   int
	Lives       int
	Level       int
	Banner      string
	BannerAlpha float64
	Paused      bool

	// RNG state at the end of the tick
	RNGState uint64
}

// GameOver reports whether the ship is dead.
func (snap *Snapshot) GameOver() bool {
	return snap.Ship.State == ShipDead
}

// Snapshot copies the current state.
func (st *State) Snapshot() Snapshot {
	s := &st.Ship
	obs := make([]ObstacleView, len(st.Field.Obstacles))
	for i, o := range st.Field.Obstacles {
		offs := make([]float64, len(o.Offsets))
		copy(offs, o.Offsets)
		obs[i] = ObstacleView{Pos: o.Pos, Radius: o.Radius, Angle: o.Angle, Tier: o.Tier, Offsets: offs}
	}
	ps := make([]ProjectileView, len(s.Projectiles))
	for i, p := range s.Projectiles {
		ps[i] = ProjectileView{Pos: p.Pos, Exploding: !p.Flying()}
	}

	return Snapshot{
		Tick:   st.Tick,
		FieldW: st.World.W,
		FieldH: st.World.H,
		Ship: ShipView{
			Pos:       s.Pos,
			Angle:     s.Angle,
			Radius:    s.Radius,
			Visible:   s.Visible(),
			Thrusting: s.Thrusting && s.State() == ShipFlying,
			State:     s.State(),
		},
		Obstacles:   obs,
		Projectiles: ps,
		Score:       st.Session.Score,
		HighScore:   st.Session.HighScore,
		Lives:       st.Session.Lives,
		Level:       st.Session.Level,
		Banner:      st.Session.Banner,
		BannerAlpha: st.Session.BannerAlpha,
		RNGState:    st.RNG.State(),
	}
}

// Hash returns a hash of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ship.State) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Ship.Pos.X)
	h = h*31 + math.Float64bits(snap.Ship.Pos.Y)
	h = h*31 + math.Float64bits(snap.Ship.Angle)
	h = h*31 + math.Float64bits(snap.BannerAlpha)

	for _, o := range snap.Obstacles {
		h = h*31 + uint64(o.Tier) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(o.Pos.X)
		h = h*31 + math.Float64bits(o.Pos.Y)
		for _, off := range o.Offsets {
			h = h*31 + math.Float64bits(off)
		}
	}

	for _, p := range snap.Projectiles {
		h = h*31 + math.Float64bits(p.Pos.X)
		h = h*31 + math.Float64bits(p.Pos.Y)
	}

	h = h*31 + snap.RNGState
	return h
}

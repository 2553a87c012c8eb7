package asteroids

import (
	"math"

	"github.com/vovakirdan/asteroids/internal/config"
	"github.com/vovakirdan/asteroids/internal/core"
)

// Tier is an obstacle size class. It decides split behavior and point value.
type Tier int

const (
	TierLarge Tier = iota
	TierMedium
	TierSmall
)

// tierInfo is one row of the split table.
type tierInfo struct {
	child   Tier
	splits  bool
	divisor float64 // radius = configured diameter / divisor
	points  func(config.GameplayConfig) int
}

// tierTable is exhaustive over the three tiers.
var tierTable = [...]tierInfo{
	TierLarge: {
		child: TierMedium, splits: true, divisor: 2,
		points: func(g config.GameplayConfig) int { return g.PointsLarge },
	},
	TierMedium: {
		child: TierSmall, splits: true, divisor: 4,
		points: func(g config.GameplayConfig) int { return g.PointsMedium },
	},
	TierSmall: {
		splits: false, divisor: 8,
		points: func(g config.GameplayConfig) int { return g.PointsSmall },
	},
}

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierLarge:
		return "large"
	case TierMedium:
		return "medium"
	case TierSmall:
		return "small"
	default:
		return "unknown"
	}
}

// Radius returns the collision radius for this tier.
func (t Tier) Radius(w *World) float64 {
	return w.Cfg.Obstacles.Size / tierTable[t].divisor
}

// Points returns the score awarded for destroying an obstacle of this tier.
func (t Tier) Points(w *World) int {
	return tierTable[t].points(w.Cfg.Gameplay)
}

// Split returns the child tier and whether this tier produces children.
func (t Tier) Split() (Tier, bool) {
	info := tierTable[t]
	return info.child, info.splits
}

// Obstacle is a drifting polygonal asteroid.
type Obstacle struct {
	Pos     core.Vec
	Vel     core.Vec // Per tick
	Tier    Tier
	Radius  float64
	Angle   float64   // Rotation of the silhouette in radians
	Vert    int       // Vertex count
	Offsets []float64 // Per-vertex radius jitter, len == Vert, fixed at creation
}

// NewObstacle creates an obstacle with random velocity and silhouette.
// speedMult is the level multiplier applied to the configured max speed.
func NewObstacle(rng *core.RNG, w *World, pos core.Vec, tier Tier, speedMult float64) Obstacle {
	oc := w.Cfg.Obstacles
	maxSpeed := oc.Speed * speedMult / w.FPS

	vel := core.V(
		rng.Float64()*maxSpeed*rng.Sign(),
		rng.Float64()*maxSpeed*rng.Sign(),
	)
	angle := rng.Float64() * math.Pi * 2

	vert := int(math.Floor(rng.Float64()*float64(oc.Vertices+1) + float64(oc.Vertices)/2))
	if vert < 3 {
		vert = 3
	}
	offs := make([]float64, vert)
	for i := range offs {
		offs[i] = rng.Float64()*oc.Jag*2 + 1 - oc.Jag
	}

	return Obstacle{
		Pos:     pos,
		Vel:     vel,
		Tier:    tier,
		Radius:  tier.Radius(w),
		Angle:   angle,
		Vert:    vert,
		Offsets: offs,
	}
}

// Vertices returns the polygon outline in playfield coordinates.
func (o Obstacle) Vertices() []core.Vec {
	pts := make([]core.Vec, o.Vert)
	for j := 0; j < o.Vert; j++ {
		a := o.Angle + float64(j)*math.Pi*2/float64(o.Vert)
		r := o.Radius * o.Offsets[j]
		pts[j] = core.V(o.Pos.X+r*math.Cos(a), o.Pos.Y+r*math.Sin(a))
	}
	return pts
}

// Field is the live set of obstacles.
type Field struct {
	Obstacles []Obstacle

	world     *World
	rng       *core.RNG
	speedMult float64
}

// NewField creates an empty field.
func NewField(w *World, rng *core.RNG) *Field {
	return &Field{
		Obstacles: make([]Obstacle, 0, 32),
		world:     w,
		rng:       rng,
		speedMult: 1,
	}
}

// SpawnBelt replaces the field with baseCount+level large obstacles, each
// placed farther than 2*largeRadius+shipR from the ship. Placement is
// resampled up to the configured attempt cap; after that the last sample
// is used so degenerate fields cannot loop forever.
func (f *Field) SpawnBelt(level int, shipPos core.Vec, shipR float64) {
	w := f.world
	f.speedMult = w.Difficulty.SpeedMultiplier(level)
	f.Obstacles = f.Obstacles[:0]

	count := w.Cfg.Obstacles.BaseCount + level
	minDist := 2*TierLarge.Radius(w) + shipR
	attempts := w.Difficulty.SpawnAttempts()

	for i := 0; i < count; i++ {
		var pos core.Vec
		for try := 0; try < attempts; try++ {
			pos = core.V(
				math.Floor(f.rng.Float64()*w.W),
				math.Floor(f.rng.Float64()*w.H),
			)
			if core.Dist(shipPos, pos) > minDist {
				break
			}
		}
		f.Obstacles = append(f.Obstacles, NewObstacle(f.rng, w, pos, TierLarge, f.speedMult))
	}
}

// split produces the children of a destroyed obstacle and its point value.
func (f *Field) split(o Obstacle) ([]Obstacle, int) {
	pts := o.Tier.Points(f.world)
	child, ok := o.Tier.Split()
	if !ok {
		return nil, pts
	}
	return []Obstacle{
		NewObstacle(f.rng, f.world, o.Pos, child, f.speedMult),
		NewObstacle(f.rng, f.world, o.Pos, child, f.speedMult),
	}, pts
}

// SplitOrScore destroys obstacle i. Large and medium obstacles leave two
// children of the next tier at the same position; small ones leave nothing.
// Returns the points awarded.
func (f *Field) SplitOrScore(i int) int {
	if i < 0 || i >= len(f.Obstacles) {
		return 0
	}
	children, pts := f.split(f.Obstacles[i])
	f.Obstacles = append(f.Obstacles[:i], f.Obstacles[i+1:]...)
	f.Obstacles = append(f.Obstacles, children...)
	return pts
}

// Resolve destroys every obstacle whose index is in hits in one rebuild
// pass. Survivors keep their order and children are appended after them.
// Returns the total points awarded and the number destroyed.
func (f *Field) Resolve(hits map[int]bool) (int, int) {
	if len(hits) == 0 {
		return 0, 0
	}

	total, destroyed := 0, 0
	kept := make([]Obstacle, 0, len(f.Obstacles)+len(hits))
	var spawned []Obstacle
	for i, o := range f.Obstacles {
		if !hits[i] {
			kept = append(kept, o)
			continue
		}
		children, pts := f.split(o)
		total += pts
		destroyed++
		spawned = append(spawned, children...)
	}
	f.Obstacles = append(kept, spawned...)
	return total, destroyed
}

// Advance translates every obstacle by its velocity and wraps it across
// the field edges using its radius as the inset.
func (f *Field) Advance() {
	w := f.world
	for i := range f.Obstacles {
		o := &f.Obstacles[i]
		o.Pos = core.WrapRadius(o.Pos.Add(o.Vel), o.Radius, w.W, w.H)
	}
}

// Empty reports whether the level has been cleared.
func (f *Field) Empty() bool {
	return len(f.Obstacles) == 0
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return len(f.Obstacles)
}

// SpeedMultiplier returns the velocity multiplier of the current level.
func (f *Field) SpeedMultiplier() float64 {
	return f.speedMult
}

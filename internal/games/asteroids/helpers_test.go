package asteroids

import (
	"errors"

	"github.com/vovakirdan/asteroids/internal/config"
	"github.com/vovakirdan/asteroids/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{FieldW: 800, FieldH: 600, TickRate: 30, Seed: seed}
}

func testWorld() *World {
	return NewWorld(config.DefaultAsteroidsConfig(), testRuntime(1))
}

func testState(seed int64) *State {
	return NewState(config.DefaultAsteroidsConfig(), testRuntime(seed), 0)
}

// still returns a motionless obstacle with a trivial silhouette.
func still(w *World, tier Tier, pos core.Vec) Obstacle {
	return Obstacle{
		Pos:     pos,
		Tier:    tier,
		Radius:  tier.Radius(w),
		Vert:    3,
		Offsets: []float64{1, 1, 1},
	}
}

// parked returns a motionless flying projectile.
func parked(pos core.Vec) Projectile {
	return Projectile{Pos: pos}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Push(a)
	}
	return in
}

// vulnerable strips the spawn invulnerability.
func vulnerable(st *State) {
	st.Ship.BlinkCount = 0
	st.Ship.BlinkTime = 0
}

// memKeeper is an in-memory ScoreKeeper.
type memKeeper struct {
	scores   map[string]int
	writes   []int
	readErr  error
	writeErr error
}

func newMemKeeper() *memKeeper {
	return &memKeeper{scores: make(map[string]int)}
}

func (m *memKeeper) HighScore(key string) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	return m.scores[key], nil
}

func (m *memKeeper) SetHighScore(key string, score int) error {
	m.writes = append(m.writes, score)
	if m.writeErr != nil {
		return m.writeErr
	}
	m.scores[key] = score
	return nil
}

var errStorage = errors.New("disk on fire")

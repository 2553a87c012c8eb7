package asteroids

import (
	"github.com/vovakirdan/asteroids/internal/config"
	"github.com/vovakirdan/asteroids/internal/core"
)

// ScoreKeeper stores the single best-score cell.
type ScoreKeeper interface {
	HighScore(key string) (int, error)
	SetHighScore(key string, score int) error
}

// Game wraps the simulation with pause, restart and high-score persistence.
// It holds no rendering or timing code; the platform drives Step at the
// configured tick rate.
type Game struct {
	cfg     config.AsteroidsConfig
	keeper  ScoreKeeper
	runtime core.RuntimeConfig

	st     *State
	last   Snapshot
	paused bool
	stored int // Best score known to be persisted

	onPersistError func(error)
}

// New creates a game. keeper may be nil to run without persistence.
func New(cfg config.AsteroidsConfig, keeper ScoreKeeper) *Game {
	return &Game{cfg: cfg, keeper: keeper}
}

// OnPersistError registers a callback for high-score read/write failures.
// Failures never stop the game: reads fall back to zero, writes are dropped.
func (g *Game) OnPersistError(fn func(error)) {
	g.onPersistError = fn
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset starts a new session. The stored high score is read once here;
// a restart also keeps the best score of the previous session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	best := g.loadHighScore()
	if g.st != nil && g.st.Session.HighScore > best {
		best = g.st.Session.HighScore
	}
	g.stored = best
	g.st = NewState(g.cfg, runtime, best)
	g.paused = false
	g.last = g.st.Snapshot()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.st == nil {
		g.Reset(core.DefaultConfig())
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.st.Ship.Dead {
		next := g.runtime
		next.Seed = int64(g.st.RNG.Next() >> 1) //#nosec G115 -- shifted into int64 range
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.st.Ship.Dead {
		g.paused = !g.paused
	}

	if g.paused {
		ReleaseHeld(g.st, in)
		g.last.Paused = true
		return core.StepResult{State: g.State()}
	}

	snap, events := Advance(g.st, in)
	g.last = snap
	g.persist()

	return core.StepResult{State: g.State(), Events: events}
}

// loadHighScore reads the stored best, treating any failure as zero.
func (g *Game) loadHighScore() int {
	if g.keeper == nil {
		return 0
	}
	v, err := g.keeper.HighScore(g.cfg.Gameplay.HighScoreKey)
	if err != nil {
		g.reportPersistError(err)
		return 0
	}
	return v
}

// persist writes the score whenever it beats the stored value.
// A failed write is dropped and not retried for the same score.
func (g *Game) persist() {
	score := g.st.Session.Score
	if g.keeper == nil || score <= g.stored {
		return
	}
	if err := g.keeper.SetHighScore(g.cfg.Gameplay.HighScoreKey, score); err != nil {
		g.reportPersistError(err)
	}
	g.stored = score
}

func (g *Game) reportPersistError(err error) {
	if g.onPersistError != nil {
		g.onPersistError(err)
	}
}

// Render draws the latest snapshot into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, &g.last)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.st == nil {
		return core.GameState{}
	}
	gs := g.st.GameState()
	gs.Paused = g.paused
	return gs
}

// Snapshot returns the frame produced by the most recent tick.
func (g *Game) Snapshot() Snapshot {
	return g.last
}

// Config returns the tuning the game was built with.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}

package asteroids

import (
	"fmt"

	"github.com/vovakirdan/asteroids/internal/config"
	"github.com/vovakirdan/asteroids/internal/core"
)

// Session is the scoreboard half of the game state.
type Session struct {
	Score       int
	HighScore   int
	Lives       int
	Level       int // Zero-based
	Banner      string
	BannerAlpha float64
}

// award adds points and reports whether the high score was raised.
func (s *Session) award(pts int) bool {
	if pts <= 0 {
		return false
	}
	s.Score += pts
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}

// showBanner sets the banner text at full opacity.
func (s *Session) showBanner(text string) {
	s.Banner = text
	s.BannerAlpha = 1
}

// levelBanner returns the one-based level title.
func levelBanner(level int) string {
	return fmt.Sprintf("Level %d", level+1)
}

// State owns every piece of mutable simulation state.
// Nothing outside Advance mutates it during play.
type State struct {
	World   *World
	RNG     *core.RNG
	Ship    Ship
	Field   *Field
	Intents Intents
	Session Session
	Tick    uint64

	events []core.Event
}

// NewState starts a fresh session at level zero.
// highScore is the previously stored best.
func NewState(cfg config.AsteroidsConfig, rt core.RuntimeConfig, highScore int) *State {
	w := NewWorld(cfg, rt)
	rng := core.NewRNG(rt.Seed)

	st := &State{
		World: w,
		RNG:   rng,
		Ship:  NewShip(w),
		Field: NewField(w, rng),
		Session: Session{
			HighScore: highScore,
			Lives:     cfg.Gameplay.Lives,
		},
		events: make([]core.Event, 0, 8),
	}
	st.Field.SpawnBelt(0, st.Ship.Pos, st.Ship.Radius)
	st.Session.showBanner(levelBanner(0))
	return st
}

// emit records an event for the current tick.
func (st *State) emit(e core.Event) {
	st.events = append(st.events, e)
}

// award scores points and emits the matching events.
func (st *State) award(pts int) {
	if st.Session.award(pts) {
		if !st.hasEvent(core.EventHighScore) {
			st.emit(core.EventHighScore)
		}
	}
}

func (st *State) hasEvent(e core.Event) bool {
	for _, x := range st.events {
		if x == e {
			return true
		}
	}
	return false
}

// GameState summarises the session for the platform layer.
func (st *State) GameState() core.GameState {
	return core.GameState{
		Score:     st.Session.Score,
		HighScore: st.Session.HighScore,
		Lives:     st.Session.Lives,
		Level:     st.Session.Level,
		GameOver:  st.Ship.Dead,
	}
}

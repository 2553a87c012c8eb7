package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The playfield is measured in logical units; renderers scale it to their
// own surface.
type RuntimeConfig struct {
	FieldW   float64 // Playfield width in logical units
	FieldH   float64 // Playfield height in logical units
	TickRate int     // Simulation ticks per second (default 30)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:   800,
		FieldH:   600,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score known to the session
	Lives     int  // Lives remaining
	Level     int  // Zero-based level index
	GameOver  bool // Whether the ship is dead
	Paused    bool // Whether the game is paused
}

// Event names something that happened during a tick.
// Platforms use events for sound and logging; they never feed back into the simulation.
type Event int

const (
	EventFire Event = iota
	EventObstacleHit
	EventShipExploded
	EventShipRespawned
	EventLevelCleared
	EventGameOver
	EventHighScore
	EventThrust
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFire:
		return "fire"
	case EventObstacleHit:
		return "obstacle_hit"
	case EventShipExploded:
		return "ship_exploded"
	case EventShipRespawned:
		return "ship_respawned"
	case EventLevelCleared:
		return "level_cleared"
	case EventGameOver:
		return "game_over"
	case EventHighScore:
		return "high_score"
	case EventThrust:
		return "thrust"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// HasEvent reports whether the tick produced the given event.
func (r StepResult) HasEvent(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}

package asteroids

import (
	"math"

	"github.com/vovakirdan/asteroids/internal/core"
)

// DefaultAimTolerance is how far off target the autopilot still fires.
// It is a little over half of one rotation step at the default turn rate.
const DefaultAimTolerance = 0.15

// Autopilot steers the ship from snapshots alone: it turns toward the
// nearest obstacle and fires when lined up. It never thrusts. Used for
// headless runs and soak tests.
type Autopilot struct {
	Tolerance float64
	Restart   bool // Start a new session after game over
	held      [4]bool
}

// NewAutopilot creates an autopilot with the default aim tolerance.
func NewAutopilot() *Autopilot {
	return &Autopilot{Tolerance: DefaultAimTolerance}
}

// Next pushes the edges for the coming tick.
func (a *Autopilot) Next(snap *Snapshot, frame *core.InputFrame) {
	if snap.GameOver() {
		a.releaseAll(frame)
		if a.Restart {
			frame.Push(core.ActionRestart)
		}
		return
	}
	if snap.Ship.State != ShipFlying || len(snap.Obstacles) == 0 {
		a.releaseAll(frame)
		return
	}

	target, ok := nearest(snap.Ship.Pos, snap.Obstacles)
	if !ok {
		a.releaseAll(frame)
		return
	}
	diff := AngleTo(snap.Ship.Pos, snap.Ship.Angle, target)

	switch {
	case diff > a.Tolerance:
		a.set(core.CommandRotateRight, false, frame)
		a.set(core.CommandRotateLeft, true, frame)
	case diff < -a.Tolerance:
		a.set(core.CommandRotateLeft, false, frame)
		a.set(core.CommandRotateRight, true, frame)
	default:
		a.set(core.CommandRotateLeft, false, frame)
		a.set(core.CommandRotateRight, false, frame)
	}

	// Alternate press and release so the fire gate rearms every other tick.
	lined := math.Abs(diff) <= a.Tolerance
	a.set(core.CommandFire, lined && !a.held[core.CommandFire], frame)
}

func (a *Autopilot) set(cmd core.Command, down bool, frame *core.InputFrame) {
	if a.held[cmd] == down {
		return
	}
	a.held[cmd] = down
	if down {
		frame.Push(cmd.Start())
	} else {
		frame.Push(cmd.Stop())
	}
}

func (a *Autopilot) releaseAll(frame *core.InputFrame) {
	for cmd := core.CommandRotateLeft; cmd <= core.CommandFire; cmd++ {
		a.set(cmd, false, frame)
	}
}

// nearest returns the center of the closest obstacle.
func nearest(from core.Vec, obs []ObstacleView) (core.Vec, bool) {
	best, bestD := core.Vec{}, math.Inf(1)
	for _, o := range obs {
		if d := core.Dist(from, o.Pos); d < bestD {
			best, bestD = o.Pos, d
		}
	}
	return best, !math.IsInf(bestD, 1)
}

// AngleTo returns the signed turn in (-π, π] from heading toward target.
// Positive means turn left. Screen y grows down, so it is negated.
func AngleTo(from core.Vec, heading float64, target core.Vec) float64 {
	want := math.Atan2(-(target.Y - from.Y), target.X-from.X)
	d := math.Mod(want-heading, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

package tui

import (
	"time"

	"github.com/vovakirdan/asteroids/internal/core"
)

// Terminal auto-repeat waits before the first repeat, then repeats quickly.
// A key counts as released once no repeat arrives within the matching window.
const (
	DefaultFirstRepeat = 500 * time.Millisecond
	DefaultRepeatGap   = 120 * time.Millisecond
)

// commands lists every ship command in the order Stop edges are emitted.
var commands = [...]core.Command{
	core.CommandRotateLeft,
	core.CommandRotateRight,
	core.CommandThrust,
	core.CommandFire,
}

type hold struct {
	last     time.Time
	repeated bool
}

// HoldTracker turns key presses into Start/Stop edges.
// Terminals report presses and auto-repeats but never releases, so a
// release is synthesized when the repeats stop.
type HoldTracker struct {
	first time.Duration
	gap   time.Duration
	held  map[core.Command]*hold
}

// NewHoldTracker creates a tracker. Non-positive windows use the defaults.
func NewHoldTracker(first, gap time.Duration) *HoldTracker {
	if first <= 0 {
		first = DefaultFirstRepeat
	}
	if gap <= 0 {
		gap = DefaultRepeatGap
	}
	return &HoldTracker{
		first: first,
		gap:   gap,
		held:  make(map[core.Command]*hold, len(commands)),
	}
}

// Press records a key press at now. The first press of a released key
// pushes its Start edge; repeats only extend the hold.
func (h *HoldTracker) Press(cmd core.Command, now time.Time, frame *core.InputFrame) {
	if st, ok := h.held[cmd]; ok {
		st.last = now
		st.repeated = true
		return
	}
	h.held[cmd] = &hold{last: now}
	frame.Push(cmd.Start())
}

// Expire pushes Stop edges for every key whose repeats have lapsed.
func (h *HoldTracker) Expire(now time.Time, frame *core.InputFrame) {
	for _, cmd := range commands {
		st, ok := h.held[cmd]
		if !ok {
			continue
		}
		window := h.first
		if st.repeated {
			window = h.gap
		}
		if now.Sub(st.last) > window {
			delete(h.held, cmd)
			frame.Push(cmd.Stop())
		}
	}
}

// ReleaseAll pushes Stop edges for every held key.
func (h *HoldTracker) ReleaseAll(frame *core.InputFrame) {
	for _, cmd := range commands {
		if _, ok := h.held[cmd]; ok {
			delete(h.held, cmd)
			frame.Push(cmd.Stop())
		}
	}
}

// Held reports whether cmd is currently considered down.
func (h *HoldTracker) Held(cmd core.Command) bool {
	_, ok := h.held[cmd]
	return ok
}

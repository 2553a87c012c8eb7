package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/asteroids/internal/core"
)

// KeyState reports one edge for a key during the current tick.
// inpututil.IsKeyJustPressed and IsKeyJustReleased satisfy it.
type KeyState func(ebiten.Key) bool

// commandOrder fixes the order edges are pushed within one tick.
var commandOrder = [...]core.Command{
	core.CommandRotateLeft,
	core.CommandRotateRight,
	core.CommandThrust,
	core.CommandFire,
}

// DefaultBindings maps ship commands to keys.
func DefaultBindings() map[core.Command][]ebiten.Key {
	return map[core.Command][]ebiten.Key{
		core.CommandRotateLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
		core.CommandRotateRight: {ebiten.KeyArrowRight, ebiten.KeyD},
		core.CommandThrust:      {ebiten.KeyArrowUp, ebiten.KeyW},
		core.CommandFire:        {ebiten.KeySpace},
	}
}

// Platform keys
var (
	pauseKeys   = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyQ}
)

// Input turns real key-down and key-up edges into simulation actions.
// A command bound to several keys stays held until all of them are up.
type Input struct {
	bindings map[core.Command][]ebiten.Key
	down     map[core.Command]int
}

// NewInput creates an input mapper with the default bindings.
func NewInput() *Input {
	return &Input{
		bindings: DefaultBindings(),
		down:     make(map[core.Command]int, len(commandOrder)),
	}
}

// Poll pushes this tick's edges into frame. Presses are applied before
// releases so a tap inside one tick still fires.
func (in *Input) Poll(pressed, released KeyState, frame *core.InputFrame) {
	for _, cmd := range commandOrder {
		for _, k := range in.bindings[cmd] {
			if pressed(k) {
				in.down[cmd]++
				if in.down[cmd] == 1 {
					frame.Push(cmd.Start())
				}
			}
		}
		for _, k := range in.bindings[cmd] {
			if released(k) && in.down[cmd] > 0 {
				in.down[cmd]--
				if in.down[cmd] == 0 {
					frame.Push(cmd.Stop())
				}
			}
		}
	}

	if anyKey(pressed, pauseKeys) {
		frame.Push(core.ActionPause)
	}
	if anyKey(pressed, restartKeys) {
		frame.Push(core.ActionRestart)
	}
	if anyKey(pressed, quitKeys) {
		frame.Push(core.ActionQuit)
	}
}

// Held reports whether any key for cmd is down.
func (in *Input) Held(cmd core.Command) bool {
	return in.down[cmd] > 0
}

func anyKey(state KeyState, keys []ebiten.Key) bool {
	for _, k := range keys {
		if state(k) {
			return true
		}
	}
	return false
}

package window

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/asteroids/internal/core"
	"github.com/vovakirdan/asteroids/internal/games/asteroids"
)

// keys builds a KeyState reporting true for the given keys.
func keys(ks ...ebiten.Key) KeyState {
	set := make(map[ebiten.Key]bool, len(ks))
	for _, k := range ks {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func none(ebiten.Key) bool { return false }

func poll(in *Input, pressed, released KeyState) []core.Action {
	f := core.NewInputFrame()
	in.Poll(pressed, released, &f)
	return f.Actions
}

func equalActions(a, b []core.Action) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInputEdges(t *testing.T) {
	tests := []struct {
		name     string
		pressed  KeyState
		released KeyState
		expected []core.Action
	}{
		{"nothing", none, none, nil},
		{"left arrow", keys(ebiten.KeyArrowLeft), none, []core.Action{core.ActionRotateLeftStart}},
		{"a", keys(ebiten.KeyA), none, []core.Action{core.ActionRotateLeftStart}},
		{"d", keys(ebiten.KeyD), none, []core.Action{core.ActionRotateRightStart}},
		{"w", keys(ebiten.KeyW), none, []core.Action{core.ActionThrustStart}},
		{"space tap", keys(ebiten.KeySpace), keys(ebiten.KeySpace), []core.Action{core.ActionFireStart, core.ActionFireStop}},
		{"pause", keys(ebiten.KeyP), none, []core.Action{core.ActionPause}},
		{"escape", keys(ebiten.KeyEscape), none, []core.Action{core.ActionPause}},
		{"restart", keys(ebiten.KeyR), none, []core.Action{core.ActionRestart}},
		{"quit", keys(ebiten.KeyQ), none, []core.Action{core.ActionQuit}},
		{"release without press", none, keys(ebiten.KeySpace), nil},
		{
			"command order",
			keys(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyArrowLeft),
			none,
			[]core.Action{core.ActionRotateLeftStart, core.ActionThrustStart, core.ActionFireStart},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := poll(NewInput(), tc.pressed, tc.released)
			if !equalActions(got, tc.expected) {
				t.Errorf("Poll() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputTwoKeysOneCommand(t *testing.T) {
	in := NewInput()

	if got := poll(in, keys(ebiten.KeyArrowUp), none); !equalActions(got, []core.Action{core.ActionThrustStart}) {
		t.Fatalf("first key = %v", got)
	}
	if got := poll(in, keys(ebiten.KeyW), none); len(got) != 0 {
		t.Fatalf("second key should not restart thrust, got %v", got)
	}
	if got := poll(in, none, keys(ebiten.KeyArrowUp)); len(got) != 0 {
		t.Fatalf("thrust should stay held while W is down, got %v", got)
	}
	if !in.Held(core.CommandThrust) {
		t.Error("thrust should be held")
	}
	if got := poll(in, none, keys(ebiten.KeyW)); !equalActions(got, []core.Action{core.ActionThrustStop}) {
		t.Fatalf("last release = %v", got)
	}
}

// fakeSim records frames and serves a fixed snapshot.
type fakeSim struct {
	resets int
	frames [][]core.Action
	events []core.Event
}

func (s *fakeSim) Reset(core.RuntimeConfig) { s.resets++ }

func (s *fakeSim) Step(in core.InputFrame) core.StepResult {
	s.frames = append(s.frames, in.Clone().Actions)
	return core.StepResult{Events: s.events}
}

func (s *fakeSim) Snapshot() asteroids.Snapshot {
	return asteroids.Snapshot{FieldW: 800, FieldH: 600, Tick: uint64(len(s.frames))}
}

func TestGameUpdate(t *testing.T) {
	sim := &fakeSim{events: []core.Event{core.EventFire}}
	g := New(sim, Options{Runtime: core.DefaultConfig()})
	if sim.resets != 1 {
		t.Fatalf("resets = %d, expected 1", sim.resets)
	}
	if w, h := g.Layout(1920, 1080); w != 800 || h != 600 {
		t.Errorf("Layout() = %dx%d, expected 800x600", w, h)
	}

	g.pressed, g.released = keys(ebiten.KeySpace), none
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	g.pressed, g.released = none, keys(ebiten.KeySpace)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}

	if len(sim.frames) != 2 {
		t.Fatalf("stepped %d times, expected 2", len(sim.frames))
	}
	if !equalActions(sim.frames[0], []core.Action{core.ActionFireStart}) {
		t.Errorf("frame 0 = %v", sim.frames[0])
	}
	if !equalActions(sim.frames[1], []core.Action{core.ActionFireStop}) {
		t.Errorf("frame 1 = %v", sim.frames[1])
	}
	if g.snap.Tick != 2 {
		t.Errorf("snapshot not refreshed, tick = %d", g.snap.Tick)
	}
}

func TestGameQuit(t *testing.T) {
	sim := &fakeSim{}
	g := New(sim, Options{Runtime: core.DefaultConfig()})
	g.pressed, g.released = keys(ebiten.KeyQ), none

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update() = %v, expected ebiten.Termination", err)
	}
	if len(sim.frames) != 0 {
		t.Error("quit should not step the simulation")
	}
	if g.frame.Len() != 0 {
		t.Error("frame should be cleared")
	}
}

func TestLifeIcons(t *testing.T) {
	icons := lifeIcons(3)
	if len(icons) != 3 {
		t.Fatalf("got %d icons", len(icons))
	}
	for i := 1; i < len(icons); i++ {
		if icons[i].Pos.X-icons[i-1].Pos.X != lifeIconSpacing {
			t.Errorf("icon %d spacing = %f", i, icons[i].Pos.X-icons[i-1].Pos.X)
		}
	}
	if len(lifeIcons(0)) != 0 || len(lifeIcons(-1)) != 0 {
		t.Error("no lives should draw no icons")
	}
}

func TestRGBA(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorLime; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("color %d missing from palette", c)
		}
	}

	full := rgba(core.ColorBrightWhite, 1)
	if full.A != 255 || full.R != 255 {
		t.Errorf("full alpha = %+v", full)
	}
	half := rgba(core.ColorBrightWhite, 0.5)
	if half.A != 127 || half.R != 127 {
		t.Errorf("half alpha = %+v", half)
	}
	if clear := rgba(core.ColorBrightWhite, -1); clear.A != 0 {
		t.Errorf("negative alpha should clamp to 0, got %+v", clear)
	}
}

// Package window runs the game in a desktop window through Ebiten.
// Unlike a terminal, a window reports real key releases, so held
// controls map one-to-one onto Start/Stop edges.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/asteroids/internal/audio"
	"github.com/vovakirdan/asteroids/internal/core"
	"github.com/vovakirdan/asteroids/internal/games/asteroids"
	"github.com/vovakirdan/asteroids/internal/logging"
)

// Sim is the game as seen by the window loop.
type Sim interface {
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Snapshot() asteroids.Snapshot
}

// Options configures a window session.
type Options struct {
	Runtime core.RuntimeConfig
	Scale   float64 // Window size relative to the playfield
	Logger  *log.Logger
	Sound   *audio.SoundManager
}

// Game adapts a Sim to ebiten.Game. Ebiten calls Update at the tick rate
// set by SetTPS, so one Update is one simulation tick.
type Game struct {
	sim    Sim
	cfg    core.RuntimeConfig
	input  *Input
	frame  core.InputFrame
	snap   asteroids.Snapshot
	logger *log.Logger
	sound  *audio.SoundManager

	pressed, released KeyState
}

// New creates the window game and starts a session.
func New(sim Sim, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		sim:      sim,
		cfg:      opts.Runtime,
		input:    NewInput(),
		frame:    core.NewInputFrame(),
		logger:   logger,
		sound:    opts.Sound,
		pressed:  inpututil.IsKeyJustPressed,
		released: inpututil.IsKeyJustReleased,
	}
	g.sim.Reset(g.cfg)
	g.snap = g.sim.Snapshot()
	return g
}

// Update advances one tick.
func (g *Game) Update() error {
	g.input.Poll(g.pressed, g.released, &g.frame)
	defer g.frame.Clear()

	if g.frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	res := g.sim.Step(g.frame)
	g.snap = g.sim.Snapshot()

	if g.sound != nil {
		g.sound.Handle(res.Events)
	}
	logging.Events(g.logger, res)
	return nil
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, &g.snap)
}

// Layout keeps the logical screen equal to the playfield; Ebiten scales
// it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.snap.FieldW), int(g.snap.FieldH)
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(sim Sim, opts Options) error {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	opts.Runtime = cfg

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	g := New(sim, opts)

	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetWindowSize(int(g.snap.FieldW*scale), int(g.snap.FieldH*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}

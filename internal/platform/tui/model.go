package tui

import (
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/asteroids/internal/audio"
	"github.com/vovakirdan/asteroids/internal/core"
	"github.com/vovakirdan/asteroids/internal/logging"
)

// Game is what the terminal loop drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options configures a terminal session.
type Options struct {
	Runtime core.RuntimeConfig

	// Initial terminal size; updated by resize messages.
	Width  int
	Height int

	Logger *log.Logger         // nil discards
	Sound  *audio.SoundManager // nil plays nothing

	// Copy writes the frame to the clipboard. Defaults to the system clipboard.
	Copy func(string) error
	// Clock stamps key presses. Defaults to time.Now.
	Clock func() time.Time
	// Hold holds the first-repeat and repeat-gap release windows.
	Hold [2]time.Duration
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("154"))

// Model is the Bubble Tea model for a running game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	hold       *HoldTracker
	inputFrame *core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	sound      *audio.SoundManager
	copyFrame  func(string) error
	clock      func() time.Time
	width      int
	height     int
	status     string
	statusTTL  int // Ticks left before status is cleared
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	copyFrame := opts.Copy
	if copyFrame == nil {
		copyFrame = clipboard.WriteAll
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = 80, 24
	}

	frame := core.NewInputFrame()
	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		hold:       NewHoldTracker(opts.Hold[0], opts.Hold[1]),
		inputFrame: &frame,
		logger:     logger,
		sound:      opts.Sound,
		copyFrame:  copyFrame,
		clock:      clock,
		width:      w,
		height:     h,
	}
	m.screen = core.NewScreen(w, m.fieldRows())

	// Reset here rather than in Init: Init has a value receiver and the
	// first frame must already show the belt.
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues edges for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Copy):
		m.copyScreen()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.fieldRows())
		return m, nil
	}

	if cmd, ok := m.keys.Command(msg); ok {
		m.hold.Press(cmd, m.clock(), m.inputFrame)
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Push(action)
		}
	case core.ActionPause:
		m.inputFrame.Push(action)
	}

	return m, nil
}

// handleResize rescales the view. The playfield is in logical units, so
// the session carries on untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(m.width, m.fieldRows())
	return m, nil
}

// handleTick runs one simulation step with the queued edges.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.Expire(now, m.inputFrame)
	if m.inputFrame.Has(core.ActionRestart) {
		m.hold.ReleaseAll(m.inputFrame)
	}

	result := m.game.Step(*m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if m.sound != nil {
		m.sound.Handle(result.Events)
	}
	logging.Events(m.logger, result)

	if m.statusTTL > 0 {
		m.statusTTL--
		if m.statusTTL == 0 {
			m.status = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// copyScreen puts the current frame on the clipboard as plain text.
func (m *Model) copyScreen() {
	m.game.Render(m.screen)
	if err := m.copyFrame(m.screen.String()); err != nil {
		m.logger.Warn("clipboard unavailable", "error", err)
		m.setStatus("clipboard unavailable")
		return
	}
	m.setStatus("frame copied")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTTL = 2 * m.config.TickRate
}

// fieldRows is the height left for the game after the help footer.
func (m Model) fieldRows() int {
	footer := 1
	if m.help.ShowAll {
		footer = 0
		for _, col := range m.keys.FullHelp() {
			footer = max(footer, len(col))
		}
	}
	return max(m.height-footer, 1)
}

// State returns the state after the latest tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

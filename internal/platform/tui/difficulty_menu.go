package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/asteroids/internal/config"
)

// DifficultyOption is one entry of the start menu.
type DifficultyOption struct {
	Preset      config.DifficultyPreset
	Title       string
	Description string
}

// DifficultyOptions lists the presets in menu order.
var DifficultyOptions = []DifficultyOption{
	{config.DifficultyEasy, "Easy", "Five lives, two rocks per belt"},
	{config.DifficultyNormal, "Normal", "Three lives, classic tuning"},
	{config.DifficultyHard, "Hard", "Two lives, bigger and faster belts"},
	{config.DifficultyFixed, "Fixed", "Rocks never speed up"},
}

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	menuTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	menuSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("154"))
	menuHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// DifficultyModel lets the player pick a preset before the game starts.
type DifficultyModel struct {
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	chosen   bool
	quitting bool
}

// NewDifficultyModel creates the start menu with Normal highlighted.
func NewDifficultyModel(width, height int) DifficultyModel {
	return DifficultyModel{
		cursor: 1,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(DifficultyOptions)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the menu.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitle.Render("A S T E R O I D S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range DifficultyOptions {
		line := fmt.Sprintf("  %-7s %s", opt.Title, opt.Description)
		if i == m.cursor {
			line = menuSelected.Render(fmt.Sprintf("> %-7s %s", opt.Title, opt.Description))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHint.Render("Enter: Start  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen preset, or "" while choosing or after quit.
func (m DifficultyModel) Selected() config.DifficultyPreset {
	if !m.chosen {
		return ""
	}
	return DifficultyOptions[m.cursor].Preset
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunDifficultySelector shows the start menu. An empty preset means the
// player quit.
func RunDifficultySelector(width, height int) (config.DifficultyPreset, error) {
	p := tea.NewProgram(NewDifficultyModel(width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/asteroids/internal/storage"
)

// ScoreStore is the part of the storage layer the scoreboard reads and clears.
type ScoreStore interface {
	Entry(key string) (storage.HighScoreEntry, bool, error)
	ClearHighScore(key string) error
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Clear key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Clear, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "clear score"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("154")).MarginBottom(1)
	scoreboardError = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// ScoreboardModel is the Bubble Tea model for the best-score screen.
type ScoreboardModel struct {
	store    ScoreStore
	keys     []string
	table    table.Model
	help     help.Model
	bindings ScoreboardKeyMap
	err      error
	quitting bool
}

// NewScoreboardModel creates a scoreboard over the given score keys.
func NewScoreboardModel(store ScoreStore, keys []string, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:    store,
		keys:     keys,
		help:     help.New(),
		bindings: DefaultScoreboardKeyMap(),
	}
	m.table = newScoreTable(max(height-6, 3))
	m.reload()
	return m
}

func newScoreTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 14},
		{Title: "Best", Width: 10},
		{Title: "Updated", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// ScoreRows reads one table row per key. A missing entry shows as "-".
func ScoreRows(store ScoreStore, keys []string) ([]table.Row, error) {
	rows := make([]table.Row, 0, len(keys))
	for _, k := range keys {
		entry, ok, err := store.Entry(k)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", k, err)
		}
		if !ok {
			rows = append(rows, table.Row{k, "-", "-"})
			continue
		}
		updated := "-"
		if !entry.UpdatedAt.IsZero() {
			updated = entry.UpdatedAt.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, table.Row{k, strconv.Itoa(entry.Score), updated})
	}
	return rows, nil
}

func (m *ScoreboardModel) reload() {
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}
	rows, err := ScoreRows(m.store, m.keys)
	m.err = err
	m.table.SetRows(rows)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.bindings.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.bindings.Clear):
			m.clearSelected()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-6, 3))
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) clearSelected() {
	if m.store == nil {
		return
	}
	row := m.table.SelectedRow()
	if row == nil {
		return
	}
	if err := m.store.ClearHighScore(row[0]); err != nil {
		m.err = err
		return
	}
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(scoreboardTitle.Render("Best Scores"))
	b.WriteString("\n")
	if m.store == nil {
		b.WriteString("No score database.\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(scoreboardError.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.bindings))
	return b.String()
}

// Err returns the last storage error, if any.
func (m ScoreboardModel) Err() error {
	return m.err
}

// RunScoreboard shows the scoreboard until the user quits.
func RunScoreboard(store ScoreStore, keys []string, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, keys, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/asteroids/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommands(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		cmd  core.Command
		ok   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.CommandRotateLeft, true},
		{"a", runeKey('a'), core.CommandRotateLeft, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.CommandRotateRight, true},
		{"d", runeKey('d'), core.CommandRotateRight, true},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.CommandThrust, true},
		{"w", runeKey('w'), core.CommandThrust, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.CommandFire, true},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, 0, false},
		{"p", runeKey('p'), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, ok := km.Command(tc.msg)
			if ok != tc.ok {
				t.Fatalf("Command(%q) ok = %v, expected %v", tc.msg.String(), ok, tc.ok)
			}
			if ok && cmd != tc.cmd {
				t.Errorf("Command(%q) = %v, expected %v", tc.msg.String(), cmd, tc.cmd)
			}
		})
	}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
	}{
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"x", runeKey('x'), core.ActionNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.action {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.action)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 9 {
		t.Errorf("full help lists %d bindings, expected 9", n)
	}
}

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/asteroids/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorSlate)
	s.DrawText(2, 0, "cd", core.ColorLime)
	s.DrawText(0, 1, "xyz", core.ColorDefault)

	out := RenderScreen(s)
	if out != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", out, s.String())
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorLime; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

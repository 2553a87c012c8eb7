package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorWhite)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		cells          [][2]int
	}{
		{"horizontal", 1, 1, 4, 1, [][2]int{{1, 1}, {2, 1}, {3, 1}, {4, 1}}},
		{"vertical", 2, 0, 2, 3, [][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"reversed", 4, 2, 1, 2, [][2]int{{1, 2}, {2, 2}, {3, 2}, {4, 2}}},
		{"single point", 3, 3, 3, 3, [][2]int{{3, 3}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 8)
			s.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, '*', ColorGray)
			for _, c := range tc.cells {
				if s.Get(c[0], c[1]) != '*' {
					t.Errorf("expected '*' at (%d, %d)", c[0], c[1])
				}
			}
			if got := strings.Count(s.String(), "*"); got != len(tc.cells) {
				t.Errorf("line drew %d cells, expected %d", got, len(tc.cells))
			}
		})
	}
}

func TestScreenDrawLineClipped(t *testing.T) {
	s := NewScreen(5, 5)
	// Must not panic when the line leaves the buffer
	s.DrawLine(-10, -10, 20, 20, '*', ColorDefault)
	if s.Get(2, 2) != '*' {
		t.Error("visible part of a clipped line should be drawn")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("box corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenResizeAndString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(1); got != "  b" {
		t.Errorf("Row(1) = %q", got)
	}

	s.Resize(4, 4)
	if s.Width() != 4 || s.Height() != 4 {
		t.Errorf("Resize() gave %dx%d", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}

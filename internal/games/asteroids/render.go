package asteroids

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/asteroids/internal/core"
)

// Glyphs for the terminal renderer
const (
	ObstacleChar  = '*'
	ShipChar      = '#'
	FlameChar     = '~'
	LaserChar     = '•'
	LaserHitChar  = '+'
	ExplosionChar = '@'
	LifeChar      = 'A'
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// viewport maps playfield units to screen cells.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, snap *Snapshot) viewport {
	fw, fh := snap.FieldW, snap.FieldH
	if fw <= 0 || fh <= 0 {
		fw, fh = 1, 1
	}
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return viewport{
		sx:  float64(dst.Width()) / fw,
		sy:  float64(rows) / fh,
		top: hudRows,
	}
}

func (v viewport) cell(p core.Vec) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y*v.sy)) + v.top
}

func (v viewport) line(dst *core.Screen, a, b core.Vec, r rune, c core.Color) {
	x0, y0 := v.cell(a)
	x1, y1 := v.cell(b)
	dst.DrawLine(x0, y0, x1, y1, r, c)
}

func (v viewport) polygon(dst *core.Screen, pts []core.Vec, r rune, c core.Color) {
	for i := range pts {
		v.line(dst, pts[i], pts[(i+1)%len(pts)], r, c)
	}
}

// RenderSnapshot draws a frame into a cell screen, scaling the playfield
// to fill everything below the HUD row.
func RenderSnapshot(dst *core.Screen, snap *Snapshot) {
	dst.Clear()
	if dst.Width() < 10 || dst.Height() < 5 {
		dst.DrawText(0, 0, "Too small", core.ColorDefault)
		return
	}

	v := newViewport(dst, snap)

	for _, o := range snap.Obstacles {
		v.polygon(dst, o.Vertices(), ObstacleChar, core.ColorSlate)
	}

	renderShip(dst, v, &snap.Ship)

	for _, p := range snap.Projectiles {
		x, y := v.cell(p.Pos)
		if p.Exploding {
			dst.SetColor(x, y, LaserHitChar, core.ColorOrange)
		} else {
			dst.SetColor(x, y, LaserChar, core.ColorBrightRed)
		}
	}

	renderHUD(dst, snap)
	renderBanner(dst, snap)
	renderOverlay(dst, snap)
}

// Outline returns nose, rear-left and rear-right of the ship triangle.
func (s *ShipView) Outline() [3]core.Vec {
	r, a := s.Radius, s.Angle
	cos, sin := math.Cos(a), math.Sin(a)
	return [3]core.Vec{
		core.V(s.Pos.X+4.0/3.0*r*cos, s.Pos.Y-4.0/3.0*r*sin),
		core.V(s.Pos.X-r*(2.0/3.0*cos+sin), s.Pos.Y+r*(2.0/3.0*sin-cos)),
		core.V(s.Pos.X-r*(2.0/3.0*cos-sin), s.Pos.Y+r*(2.0/3.0*sin+cos)),
	}
}

// Flame returns the three points of the thrust flame.
func (s *ShipView) Flame() [3]core.Vec {
	r, a := s.Radius, s.Angle
	cos, sin := math.Cos(a), math.Sin(a)
	return [3]core.Vec{
		core.V(s.Pos.X-r*(2.0/3.0*cos+0.5*sin), s.Pos.Y+r*(2.0/3.0*sin-0.5*cos)),
		core.V(s.Pos.X-r*5.0/3.0*cos, s.Pos.Y+r*5.0/3.0*sin),
		core.V(s.Pos.X-r*(2.0/3.0*cos-0.5*sin), s.Pos.Y+r*(2.0/3.0*sin+0.5*cos)),
	}
}

// ExplosionRings lists ring radii (as a fraction of ship radius) from the
// outside in, with their colors.
var ExplosionRings = []struct {
	Scale float64
	Color core.Color
}{
	{1.7, core.ColorRed},
	{1.4, core.ColorBrightRed},
	{1.1, core.ColorOrange},
	{0.8, core.ColorBrightYellow},
	{0.5, core.ColorBrightWhite},
}

func renderShip(dst *core.Screen, v viewport, s *ShipView) {
	switch s.State {
	case ShipDead:
		return
	case ShipExploding:
		for _, ring := range ExplosionRings {
			renderDisc(dst, v, s.Pos, s.Radius*ring.Scale, ExplosionChar, ring.Color)
		}
		return
	}

	if !s.Visible {
		return
	}
	if s.Thrusting {
		f := s.Flame()
		v.polygon(dst, f[:], FlameChar, core.ColorYellow)
	}
	pts := s.Outline()
	v.polygon(dst, pts[:], ShipChar, core.ColorBrightWhite)
}

// renderDisc fills every cell whose center lies within r of c.
func renderDisc(dst *core.Screen, v viewport, c core.Vec, r float64, ch rune, col core.Color) {
	x0, y0 := v.cell(c.Sub(core.V(r, r)))
	x1, y1 := v.cell(c.Add(core.V(r, r)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			center := core.V((float64(x)+0.5)/v.sx, (float64(y-v.top)+0.5)/v.sy)
			if core.Dist(center, c) <= r {
				dst.SetColor(x, y, ch, col)
			}
		}
	}
}

// renderHUD draws lives, level, best and score across the top row.
func renderHUD(dst *core.Screen, snap *Snapshot) {
	w := dst.Width()
	dst.FillRect(core.NewRect(0, 0, w, hudRows), ' ', core.ColorDefault)

	lives := strings.Repeat(string(LifeChar)+" ", snap.Lives)
	dst.DrawText(1, 0, lives, core.ColorBrightWhite)

	best := fmt.Sprintf("BEST %d", snap.HighScore)
	dst.DrawTextCentered(0, best, core.ColorGray)

	score := fmt.Sprintf("SCORE %d", snap.Score)
	dst.DrawText(w-len(score)-1, 0, score, core.ColorBrightWhite)
}

// renderBanner draws the fading level or game over text.
func renderBanner(dst *core.Screen, snap *Snapshot) {
	if snap.Banner == "" {
		return
	}
	c, ok := core.FadeColor(snap.BannerAlpha)
	if !ok {
		return
	}
	y := hudRows + (dst.Height()-hudRows)*3/4
	dst.DrawTextCentered(y, snap.Banner, c)
}

func renderOverlay(dst *core.Screen, snap *Snapshot) {
	switch {
	case snap.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case snap.GameOver():
		drawCenteredBox(dst, fmt.Sprintf("Final score %d", snap.Score), "Press R to restart")
	}
}

// drawCenteredBox draws a bordered message box in the center of the screen.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorGray)
}

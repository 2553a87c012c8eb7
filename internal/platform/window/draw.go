package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/asteroids/internal/core"
	"github.com/vovakirdan/asteroids/internal/games/asteroids"
)

// Stroke widths and sizes in playfield units
const (
	lineWidth       = 1.5
	laserRadius     = 2
	laserHitRadius  = 5
	lifeIconRadius  = 10
	lifeIconSpacing = 30
	hudMargin       = 12
	bannerScale     = 3
)

var face = text.NewGoXFace(basicfont.Face7x13)

// textAlign picks the horizontal anchor for drawText.
type textAlign int

const (
	alignLeft textAlign = iota
	alignCenter
	alignRight
)

// drawSnapshot paints one frame. The image is sized to the playfield,
// so snapshot coordinates are used directly.
func drawSnapshot(dst *ebiten.Image, snap *asteroids.Snapshot) {
	dst.Fill(background)

	for _, o := range snap.Obstacles {
		strokePolygon(dst, o.Vertices(), rgba(core.ColorSlate, 1))
	}

	drawShip(dst, &snap.Ship)

	for _, p := range snap.Projectiles {
		if p.Exploding {
			vector.FillCircle(dst, float32(p.Pos.X), float32(p.Pos.Y), laserHitRadius, rgba(core.ColorOrange, 1), true)
			continue
		}
		vector.FillCircle(dst, float32(p.Pos.X), float32(p.Pos.Y), laserRadius, rgba(core.ColorBrightRed, 1), true)
	}

	drawHUD(dst, snap)
	drawBanner(dst, snap)
	drawOverlay(dst, snap)
}

func drawShip(dst *ebiten.Image, s *asteroids.ShipView) {
	switch s.State {
	case asteroids.ShipDead:
		return
	case asteroids.ShipExploding:
		for _, ring := range asteroids.ExplosionRings {
			vector.FillCircle(dst, float32(s.Pos.X), float32(s.Pos.Y), float32(s.Radius*ring.Scale), rgba(ring.Color, 1), true)
		}
		return
	}

	if !s.Visible {
		return
	}
	if s.Thrusting {
		f := s.Flame()
		strokePolygon(dst, f[:], rgba(core.ColorYellow, 1))
	}
	pts := s.Outline()
	strokePolygon(dst, pts[:], rgba(core.ColorBrightWhite, 1))
}

func strokePolygon(dst *ebiten.Image, pts []core.Vec, clr color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), lineWidth, clr, true)
	}
}

// lifeIcons returns the ship views drawn as remaining lives.
func lifeIcons(lives int) []asteroids.ShipView {
	icons := make([]asteroids.ShipView, 0, max(lives, 0))
	for i := 0; i < lives; i++ {
		icons = append(icons, asteroids.ShipView{
			Pos:     core.V(hudMargin+lifeIconRadius+float64(i)*lifeIconSpacing, hudMargin+lifeIconRadius*4.0/3.0),
			Angle:   math.Pi / 2,
			Radius:  lifeIconRadius,
			Visible: true,
		})
	}
	return icons
}

func drawHUD(dst *ebiten.Image, snap *asteroids.Snapshot) {
	for _, icon := range lifeIcons(snap.Lives) {
		pts := icon.Outline()
		strokePolygon(dst, pts[:], rgba(core.ColorBrightWhite, 1))
	}

	w := snap.FieldW
	drawText(dst, fmt.Sprintf("BEST %d", snap.HighScore), w/2, hudMargin, 1, alignCenter, rgba(core.ColorGray, 1))
	drawText(dst, fmt.Sprintf("SCORE %d", snap.Score), w-hudMargin, hudMargin, 1, alignRight, rgba(core.ColorBrightWhite, 1))
	drawText(dst, fmt.Sprintf("LEVEL %d", snap.Level+1), w-hudMargin, hudMargin+18, 1, alignRight, rgba(core.ColorGray, 1))
}

func drawBanner(dst *ebiten.Image, snap *asteroids.Snapshot) {
	if snap.Banner == "" || snap.BannerAlpha <= 0 {
		return
	}
	drawText(dst, snap.Banner, snap.FieldW/2, snap.FieldH*3/4, bannerScale, alignCenter, rgba(core.ColorBrightWhite, snap.BannerAlpha))
}

func drawOverlay(dst *ebiten.Image, snap *asteroids.Snapshot) {
	var title, hint string
	switch {
	case snap.Paused:
		title, hint = "PAUSED", "Press P to resume"
	case snap.GameOver():
		title, hint = fmt.Sprintf("Final score %d", snap.Score), "Press R to restart"
	default:
		return
	}

	vector.FillRect(dst, 0, 0, float32(snap.FieldW), float32(snap.FieldH), rgba(core.ColorDefault, 0.15), false)
	cx, cy := snap.FieldW/2, snap.FieldH/2
	drawText(dst, title, cx, cy-24, 2, alignCenter, rgba(core.ColorBrightWhite, 1))
	drawText(dst, hint, cx, cy+12, 1, alignCenter, rgba(core.ColorGray, 1))
}

// drawText draws s with its top edge at y, anchored at x.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, align textAlign, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	switch align {
	case alignCenter:
		op.PrimaryAlign = text.AlignCenter
	case alignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(dst, s, face, op)
}

package window

import (
	"image/color"

	"github.com/vovakirdan/asteroids/internal/core"
)

// palette maps cell colors to RGBA so both front ends share one scheme.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 200, G: 200, B: 200, A: 255},
	core.ColorRed:          {R: 170, G: 0, B: 0, A: 255},
	core.ColorYellow:       {R: 220, G: 200, B: 0, A: 255},
	core.ColorWhite:        {R: 200, G: 200, B: 200, A: 255},
	core.ColorBrightRed:    {R: 255, G: 60, B: 60, A: 255},
	core.ColorBrightYellow: {R: 255, G: 255, B: 80, A: 255},
	core.ColorBrightWhite:  {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:       {R: 255, G: 140, B: 0, A: 255},
	core.ColorGray:         {R: 140, G: 140, B: 140, A: 255},
	core.ColorDarkGray:     {R: 70, G: 70, B: 70, A: 255},
	core.ColorSlate:        {R: 135, G: 135, B: 175, A: 255},
	core.ColorLime:         {R: 175, G: 255, B: 0, A: 255},
}

var background = color.RGBA{A: 255}

// rgba returns the palette entry for c with its alpha scaled by a.
// Colors are premultiplied, so every channel is scaled.
func rgba(c core.Color, a float64) color.RGBA {
	base, ok := palette[c]
	if !ok {
		base = palette[core.ColorDefault]
	}
	a = core.ClampF(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(base.R) * a),
		G: uint8(float64(base.G) * a),
		B: uint8(float64(base.B) * a),
		A: uint8(float64(base.A) * a),
	}
}

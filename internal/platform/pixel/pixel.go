// Package pixel holds the window frontend's drawing and input rules that do
// not need a graphics context: the colour palette, glyph sprites as pixel
// blocks, key state to actions, and the game-over fade.
package pixel

import (
	"image/color"

	"github.com/vovakirdan/dasher/internal/assets"
	"github.com/vovakirdan/dasher/internal/core"
)

// Palette maps terminal colours to window colours.
var Palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:         {0x0d, 0xbc, 0x79, 0xff},
	core.ColorYellow:        {0xe5, 0xe5, 0x10, 0xff},
	core.ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightGreen:   {0x23, 0xd1, 0x8b, 0xff},
	core.ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	core.ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	core.ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

// Fixed colours of the window frontend.
var (
	Background = color.RGBA{0x10, 0x10, 0x18, 0xff}
	Trail      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Ink        = color.RGBA{0x10, 0x10, 0x10, 0xff}
)

// RGBA returns the window colour for c, falling back to the default.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := Palette[c]; ok {
		return rgba
	}
	return Palette[core.ColorDefault]
}

// Faded returns c at the given opacity, premultiplied.
func Faded(c color.RGBA, alpha float64) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// Block is one filled cell of a sprite in world pixels.
type Block struct {
	X, Y, W, H float64
}

// Blocks lays glyph out over box: each non-blank rune becomes a block of
// box.W/cols by box.H/rows.
func Blocks(g assets.Glyph, box Block) []Block {
	if len(g) == 0 {
		return nil
	}
	cols := 0
	for _, line := range g {
		cols = max(cols, len([]rune(line)))
	}
	if cols == 0 {
		return nil
	}

	cw := box.W / float64(cols)
	ch := box.H / float64(len(g))
	var out []Block
	for row, line := range g {
		for col, r := range []rune(line) {
			if r == ' ' {
				continue
			}
			out = append(out, Block{
				X: box.X + float64(col)*cw,
				Y: box.Y + float64(row)*ch,
				W: cw,
				H: ch,
			})
		}
	}
	return out
}

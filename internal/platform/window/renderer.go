package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // basicfont is a v1 font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dasher/internal/assets"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/dasher"
	"github.com/vovakirdan/dasher/internal/platform/pixel"
)

var face = basicfont.Face7x13

// Renderer draws a session onto an ebiten image in world pixels.
type Renderer struct {
	sheets *assets.Set
	dst    *ebiten.Image
	fade   float64
	width  float64
	height float64
}

// NewRenderer creates a renderer for a world of the given size.
func NewRenderer(sheets *assets.Set, width, height float64) *Renderer {
	return &Renderer{sheets: sheets, width: width, height: height}
}

// Render draws s onto dst. fade is the game-over overlay opacity.
func (r *Renderer) Render(s *dasher.Session, dst *ebiten.Image, fade float64) {
	r.dst = dst
	r.fade = fade
	dst.Fill(pixel.Background)
	s.Draw(r)
	r.dst = nil
}

func (r *Renderer) sheetFor(k dasher.Kind) *assets.Sheet {
	switch k {
	case dasher.KindGhost:
		return r.sheets.Sheet(assets.Ghost)
	case dasher.KindHeart:
		return r.sheets.Sheet(assets.Heart)
	default:
		return r.sheets.Sheet(assets.Player)
	}
}

// Sprite draws the sheet frame as solid blocks over the sprite's box.
func (r *Renderer) Sprite(s dasher.Sprite) {
	sh := r.sheetFor(s.Kind)
	if sh == nil || s.Src.W == 0 || s.Src.H == 0 {
		return
	}
	glyph := sh.Frame(s.Src.Y/s.Src.H, s.Src.X/s.Src.W)

	w := float64(s.Src.W) * s.Scale
	h := float64(s.Src.H) * s.Scale
	box := pixel.Block{
		X: s.Pos.X - s.Origin.X*s.Scale,
		Y: s.Pos.Y - s.Origin.Y*s.Scale,
		W: w,
		H: h,
	}
	if s.Rotation != 0 {
		glyph = glyph.Rotate()
		cx, cy := box.X+w/2, box.Y+h/2
		box = pixel.Block{X: cx - h/2, Y: cy - w/2, W: h, H: w}
	}

	c := pixel.RGBA(sh.Color)
	switch s.Tint {
	case dasher.TintHit:
		c = pixel.RGBA(sh.HitColor)
	case dasher.TintFaded:
		c = pixel.Faded(pixel.RGBA(sh.FadedColor), 0.5)
	}

	for _, b := range pixel.Blocks(glyph, box) {
		vector.FillRect(r.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
	}
}

// Line draws the dash trail.
func (r *Renderer) Line(from, to core.Vec2, width float64) {
	vector.StrokeLine(r.dst,
		float32(from.X), float32(from.Y), float32(to.X), float32(to.Y),
		float32(width), pixel.Trail, true)
}

// Bar draws the fail gauge: an outline filled to Progress.
func (r *Renderer) Bar(b dasher.Bar) {
	x := float32(b.Pos.X - b.W/2)
	y := float32(b.Pos.Y)
	vector.FillRect(r.dst, x, y, float32(b.W*b.Progress), float32(b.H), pixel.Trail, false)
	vector.StrokeRect(r.dst, x, y, float32(b.W), float32(b.H), 2, pixel.Trail, false)
}

// HUD draws hearts, scores and, after a defeat, the fading overlay.
func (r *Renderer) HUD(h dasher.HUD) {
	for i := range h.MaxHealth {
		c := pixel.RGBA(core.ColorGray)
		if i < h.Health {
			c = pixel.RGBA(core.ColorBrightRed)
		}
		vector.FillRect(r.dst, float32(20+i*40), 20, 28, 28, c, false)
	}

	score := fmt.Sprintf("Score: %d  Best: %d", h.Score, h.HighScore)
	r.text(score, r.width-float64(textWidth(score)*2)-20, 44, 2, pixel.RGBA(core.ColorBrightWhite))

	if !h.GameOver || r.fade <= 0 {
		return
	}
	vector.FillRect(r.dst, 0, 0, float32(r.width), float32(r.height),
		pixel.Faded(color.RGBA{0xff, 0xff, 0xff, 0xff}, r.fade), false)

	ink := pixel.Faded(pixel.Ink, r.fade)
	mid := r.height / 2
	r.centered("GAME OVER", mid-60, 6, ink)
	r.centered(fmt.Sprintf("Score: %d", h.Score), mid+10, 3, ink)
	if h.NewRecord {
		r.centered("NEW HIGH SCORE!", mid+60, 3, pixel.Faded(pixel.RGBA(core.ColorRed), r.fade))
	}
	r.centered("R to restart, Esc to quit", mid+110, 2, ink)
}

// Paused draws the pause banner.
func (r *Renderer) Paused(dst *ebiten.Image) {
	r.dst = dst
	r.centered("PAUSED", r.height/2, 5, pixel.RGBA(core.ColorBrightYellow))
	r.dst = nil
}

func (r *Renderer) centered(s string, baseline, scale float64, c color.Color) {
	x := (r.width - float64(textWidth(s))*scale) / 2
	r.text(s, x, baseline, scale, c)
}

func (r *Renderer) text(s string, x, baseline, scale float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, baseline)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(r.dst, s, face, op)
}

func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

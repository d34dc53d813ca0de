package dasher

import (
	"fmt"

	"github.com/vovakirdan/dasher/internal/assets"
	"github.com/vovakirdan/dasher/internal/core"
)

// ScreenRenderer draws a session into a character screen using glyph
// sheets. The top row holds the HUD; the rest shows the whole world scaled
// to fit.
type ScreenRenderer struct {
	sheets *assets.Set
	worldW float64
	worldH float64
	screen *core.Screen
}

// NewScreenRenderer creates a renderer for a world of the given size.
func NewScreenRenderer(sheets *assets.Set, worldW, worldH float64) *ScreenRenderer {
	return &ScreenRenderer{sheets: sheets, worldW: worldW, worldH: worldH}
}

// Render clears screen and draws the session into it.
func (r *ScreenRenderer) Render(s *Session, screen *core.Screen) {
	r.screen = screen
	screen.Clear()
	s.Draw(r)
	r.screen = nil
}

// cell maps a world position to a screen cell below the HUD row.
func (r *ScreenRenderer) cell(p core.Vec2) (int, int) {
	cols := r.screen.Width()
	rows := r.screen.Height() - 1
	x := int(p.X / r.worldW * float64(cols))
	y := 1 + int(p.Y/r.worldH*float64(rows))
	return x, y
}

func (r *ScreenRenderer) sheetFor(k Kind) *assets.Sheet {
	switch k {
	case KindGhost:
		return r.sheets.Sheet(assets.Ghost)
	case KindHeart:
		return r.sheets.Sheet(assets.Heart)
	default:
		return r.sheets.Sheet(assets.Player)
	}
}

// Sprite draws the glyph for the sprite's sheet cell centered on its pivot.
func (r *ScreenRenderer) Sprite(s Sprite) {
	sh := r.sheetFor(s.Kind)
	if sh == nil || s.Src.W == 0 || s.Src.H == 0 {
		return
	}
	glyph := sh.Frame(s.Src.Y/s.Src.H, s.Src.X/s.Src.W)
	if s.Rotation != 0 {
		glyph = glyph.Rotate()
	}

	color := sh.Color
	switch s.Tint {
	case TintHit:
		color = sh.HitColor
	case TintFaded:
		color = sh.FadedColor
	}

	cx, cy := r.cell(s.Pos)
	h := len(glyph)
	for dy, line := range glyph {
		runes := []rune(line)
		x0 := cx - len(runes)/2
		for dx, ch := range runes {
			if ch == ' ' {
				continue
			}
			x, y := x0+dx, cy-h/2+dy
			if y < 1 {
				continue
			}
			r.screen.SetColored(x, y, ch, color)
		}
	}
}

// Line draws the dash trail.
func (r *ScreenRenderer) Line(from, to core.Vec2, _ float64) {
	x0, y0 := r.cell(from)
	x1, y1 := r.cell(to)
	r.screen.DrawLine(x0, y0, x1, y1, '·', core.ColorWhite)
}

// Bar draws the fail gauge as [====    ].
func (r *ScreenRenderer) Bar(b Bar) {
	cx, cy := r.cell(b.Pos)
	inner := int(b.W / r.worldW * float64(r.screen.Width()))
	inner = max(inner, 4)
	filled := int(b.Progress * float64(inner))

	x := cx - (inner+2)/2
	r.screen.SetColored(x, cy, '[', core.ColorWhite)
	for i := range inner {
		ch := ' '
		if i < filled {
			ch = '='
		}
		r.screen.SetColored(x+1+i, cy, ch, core.ColorWhite)
	}
	r.screen.SetColored(x+1+inner, cy, ']', core.ColorWhite)
}

// HUD draws health, score and the game-over banner.
func (r *ScreenRenderer) HUD(h HUD) {
	for i := range h.MaxHealth {
		if i < h.Health {
			r.screen.SetColored(1+i*2, 0, '♥', core.ColorBrightRed)
		} else {
			r.screen.SetColored(1+i*2, 0, '♡', core.ColorGray)
		}
	}

	score := fmt.Sprintf("Score: %d  Best: %d", h.Score, h.HighScore)
	r.screen.DrawTextColored(r.screen.Width()-len(score)-1, 0, score, core.ColorBrightWhite)

	if !h.GameOver {
		return
	}
	mid := r.screen.Height() / 2
	r.screen.DrawTextCentered(mid-1, "GAME OVER", core.ColorBrightRed)
	r.screen.DrawTextCentered(mid, fmt.Sprintf("Score: %d", h.Score), core.ColorBrightWhite)
	if h.NewRecord {
		r.screen.DrawTextCentered(mid+1, "NEW HIGH SCORE!", core.ColorBrightYellow)
	}
	r.screen.DrawTextCentered(mid+2, "R to restart, B for menu", core.ColorGray)
}

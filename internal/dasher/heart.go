package dasher

import (
	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
)

// heartSprite is the single-frame heart sheet.
var heartSprite = config.SpriteSize{W: 16, H: 16}

// Heart is a dropped pickup that heals the player on approach.
type Heart struct {
	pos    core.Vec2
	radius float64
	scale  float64
	player *Player // not owned
}

// NewHeart drops a heart at pos.
func NewHeart(pos core.Vec2, player *Player, cfg config.DasherConfig) *Heart {
	return &Heart{pos: pos, radius: cfg.Heart.PickupRadius, scale: cfg.Player.Scale, player: player}
}

func (h *Heart) Kind() Kind          { return KindHeart }
func (h *Heart) Position() core.Vec2 { return h.pos }
func (h *Heart) actor()              {}

// Update reports whether the player picked the heart up. The heart is
// consumed even when the player is already at full health.
func (h *Heart) Update() bool {
	if core.Distance(h.pos, h.player.Pos) >= h.radius {
		return false
	}
	h.player.Heal()
	return true
}

// Draw emits the heart sprite.
func (h *Heart) Draw(r Renderer) {
	r.Sprite(Sprite{
		Kind:   KindHeart,
		Pos:    h.pos,
		Origin: core.V(7, 5.5),
		Src:    core.NewRect(0, 0, heartSprite.W, heartSprite.H),
		Scale:  h.scale,
	})
}

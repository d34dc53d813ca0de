package dasher

import (
	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
)

// Ghost homes in on the player and hurts on contact. It only dies to a
// dash strike.
type Ghost struct {
	Entity

	speed  float64
	radius float64
	player *Player // not owned
}

// NewGhost creates a ghost at pos chasing player. A configured contact
// radius of zero means the player and ghost half-widths added together.
func NewGhost(pos core.Vec2, player *Player, cfg config.DasherConfig) *Ghost {
	gc := cfg.Ghost
	g := &Ghost{
		Entity: newEntity(pos, gc.Sprite, gc.Scale, cfg.Animation, Right),
		speed:  gc.Speed,
		radius: gc.ContactRadius,
		player: player,
	}
	if g.radius <= 0 {
		pw, _ := player.HalfExtents()
		gw, _ := g.HalfExtents()
		g.radius = pw + gw
	}
	return g
}

func (g *Ghost) Kind() Kind          { return KindGhost }
func (g *Ghost) Position() core.Vec2 { return g.Pos }
func (g *Ghost) actor()              {}

// ContactRadius returns the distance below which the ghost hurts the player.
func (g *Ghost) ContactRadius() float64 { return g.radius }

// Update moves the ghost toward the player, applies contact damage and runs
// the strike test. killed reports that the strike segment crossed this
// ghost; hurt reports that a contact hit landed on the player.
func (g *Ghost) Update(delta float64) (killed, hurt bool) {
	g.Clock.Advance(delta)

	step := core.FromPolar(g.speed*delta, core.AngleTo(g.Pos, g.player.Pos))
	g.Pos = g.Pos.Add(step)
	g.Facing = facingFor(step, g.Facing)
	g.Moving = !step.IsZero()

	if core.Distance(g.Pos, g.player.Pos) < g.radius {
		hurt = g.player.Hit()
	}

	if g.struck() {
		g.player.MarkStruck()
		killed = true
	}
	return killed, hurt
}

// struck tests the player's strike segment against the ghost's box edges.
// Only meaningful during the strike window.
func (g *Ghost) struck() bool {
	if !g.player.Striking() {
		return false
	}
	return g.Bounds().SegmentCrosses(g.player.Pos, g.player.after.Pos)
}

// Draw emits the ghost sprite.
func (g *Ghost) Draw(r Renderer) {
	r.Sprite(g.sprite(KindGhost))
}

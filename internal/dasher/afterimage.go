package dasher

import "github.com/vovakirdan/dasher/internal/core"

// AfterImage is the snapshot left behind where a dash started. It stays put
// while the player moves and marks the far end of the strike segment.
type AfterImage struct {
	Pos    core.Vec2
	Src    core.Rect
	Facing Direction
	origin core.Vec2
	scale  float64
	frame  int
	moving bool

	// trail is where the dash line starts; set only while it is drawn.
	trail    core.Vec2
	hasTrail bool
}

// trailWidth is the thickness of the line between player and after-image.
const trailWidth = 10

func captureAfterImage(e Entity) AfterImage {
	return AfterImage{
		Pos:    e.Pos,
		Src:    e.Clock.SpriteRect(e.Facing, e.Moving),
		Facing: e.Facing,
		origin: e.Origin,
		scale:  e.Scale,
		frame:  e.Clock.Frame(),
		moving: e.Moving,
	}
}

func (a *AfterImage) Kind() Kind          { return KindAfterImage }
func (a *AfterImage) Position() core.Vec2 { return a.Pos }
func (a *AfterImage) actor()              {}

// withTrail returns a copy that also draws the dash line from the given
// player position.
func (a AfterImage) withTrail(from core.Vec2) *AfterImage {
	a.trail, a.hasTrail = from, true
	return &a
}

// Draw emits the dash line, if any, then the frozen frame, faded.
func (a *AfterImage) Draw(r Renderer) {
	if a.hasTrail {
		r.Line(a.trail, a.Pos, trailWidth)
	}
	r.Sprite(Sprite{
		Kind:   KindAfterImage,
		Pos:    a.Pos,
		Origin: a.origin,
		Src:    a.Src,
		Scale:  a.scale,
		Facing: a.Facing,
		Moving: a.moving,
		Frame:  a.frame,
		Tint:   TintFaded,
	})
}

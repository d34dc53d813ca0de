package dasher

import (
	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
)

// Direction is the facing of an entity and selects its sprite sheet row.
type Direction int

const (
	Right Direction = iota
	Left
	Down
	Up
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// facingFor picks the facing implied by a movement vector. Horizontal
// movement wins over vertical; no movement keeps the current facing.
func facingFor(v core.Vec2, current Direction) Direction {
	switch {
	case v.X > 0:
		return Right
	case v.X < 0:
		return Left
	case v.Y > 0:
		return Down
	case v.Y < 0:
		return Up
	default:
		return current
	}
}

// Entity is the state shared by every animated thing on the field.
// Pos is the world position of the sprite pivot; Origin is that pivot in
// sheet pixels (the frame center).
type Entity struct {
	Pos    core.Vec2
	Origin core.Vec2
	Size   config.SpriteSize
	Scale  float64
	Clock  AnimationClock
	Facing Direction
	Moving bool
}

func newEntity(pos core.Vec2, size config.SpriteSize, scale float64, anim config.AnimationConfig, facing Direction) Entity {
	return Entity{
		Pos:    pos,
		Origin: core.V(float64(size.W/2), float64(size.H/2)),
		Size:   size,
		Scale:  scale,
		Clock:  NewAnimationClock(anim.Period, anim.Frames, size.W, size.H),
		Facing: facing,
	}
}

// HalfExtents returns the half width and half height in world units.
// Half sizes use whole sheet pixels, so a 19 pixel frame at scale 10 spans
// 90 units either side of the pivot.
func (e Entity) HalfExtents() (float64, float64) {
	return float64(e.Size.W/2) * e.Scale, float64(e.Size.H/2) * e.Scale
}

// Bounds returns the world-space bounding box around the pivot.
func (e Entity) Bounds() core.Box {
	hw, hh := e.HalfExtents()
	return core.Box{Center: e.Pos, HalfW: hw, HalfH: hh}
}

// sprite builds the draw command for the entity's current frame.
func (e Entity) sprite(kind Kind) Sprite {
	return Sprite{
		Kind:   kind,
		Pos:    e.Pos,
		Origin: e.Origin,
		Src:    e.Clock.SpriteRect(e.Facing, e.Moving),
		Scale:  e.Scale,
		Facing: e.Facing,
		Moving: e.Moving,
		Frame:  e.Clock.Frame(),
	}
}

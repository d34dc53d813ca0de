package dasher

import "github.com/vovakirdan/dasher/internal/core"

// Kind names the sprite sheet an actor is drawn from.
type Kind int

const (
	KindPlayer Kind = iota
	KindGhost
	KindHeart
	KindAfterImage
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindGhost:
		return "ghost"
	case KindHeart:
		return "heart"
	case KindAfterImage:
		return "after-image"
	default:
		return "unknown"
	}
}

// Tint recolors a sprite.
type Tint int

const (
	TintNone  Tint = iota
	TintHit        // red while invulnerable after a hit
	TintFaded      // after-image trail
)

// Sprite is one frame of a sheet placed in the world.
type Sprite struct {
	Kind     Kind
	Pos      core.Vec2 // world position of the pivot
	Origin   core.Vec2 // pivot in sheet pixels
	Src      core.Rect // sheet sub-rectangle in pixels
	Scale    float64
	Facing   Direction
	Moving   bool
	Frame    int
	Tint     Tint
	Rotation float64 // degrees, clockwise
}

// Bar is the fail-window gauge. Pos is its top center.
type Bar struct {
	Pos      core.Vec2
	W, H     float64
	Progress float64 // 0..1 remaining fraction
}

// HUD carries the overlay values drawn on top of the field.
type HUD struct {
	Health    int
	MaxHealth int
	Score     int
	HighScore int
	GameOver  bool
	NewRecord bool
}

// Renderer turns draw commands into pixels or cells. Calls for one frame
// arrive back to front.
type Renderer interface {
	Sprite(s Sprite)
	Line(from, to core.Vec2, width float64)
	Bar(b Bar)
	HUD(h HUD)
}

// Actor is the drawable capability shared by the field's entities; the
// session draws a frame by walking them in order. The set is closed: only
// Player, Ghost, Heart and AfterImage implement it.
type Actor interface {
	Kind() Kind
	Position() core.Vec2
	Draw(r Renderer)
	actor()
}

var (
	_ Actor = (*Player)(nil)
	_ Actor = (*Ghost)(nil)
	_ Actor = (*Heart)(nil)
	_ Actor = (*AfterImage)(nil)
)

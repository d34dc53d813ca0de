package dasher

import (
	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
)

// DashState is the player's position in the dash cycle.
type DashState int

const (
	Idle      DashState = iota
	Dashing             // dash key held, after-image placed
	Attacking           // strike window right after release
	Failing             // strike missed, dashing locked out
	Dead                // terminal
)

func (s DashState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dashing:
		return "dashing"
	case Attacking:
		return "attacking"
	case Failing:
		return "failing"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Movement is the set of held direction keys.
type Movement struct {
	Left, Right, Up, Down bool
}

// Vector returns the unit direction for the held keys, or zero when they
// cancel out or none are held.
func (m Movement) Vector() core.Vec2 {
	var v core.Vec2
	if m.Right {
		v.X++
	}
	if m.Left {
		v.X--
	}
	if m.Down {
		v.Y++
	}
	if m.Up {
		v.Y--
	}
	return v.Normalized()
}

// Player is the dashing hero.
type Player struct {
	Entity

	speed     float64
	health    int
	maxHealth int

	invulnerable bool
	invElapsed   float64
	invWindow    float64

	state       DashState
	latched     bool // first Attacking update seen
	struck      bool // a ghost was hit during the strike window
	failElapsed float64
	failWindow  float64

	tint     Tint
	rotation float64
	after    AfterImage
	move     Movement

	minX, maxX, minY, maxY float64
}

// NewPlayer places a fresh player at the center of the world.
func NewPlayer(cfg config.DasherConfig) *Player {
	pc := cfg.Player
	cx, cy := cfg.World.Center()
	p := &Player{
		Entity:     newEntity(core.V(cx, cy), pc.Sprite, pc.Scale, cfg.Animation, Direction(pc.Facing)),
		speed:      pc.Speed,
		health:     pc.MaxHealth,
		maxHealth:  pc.MaxHealth,
		invWindow:  pc.Invulnerability,
		failWindow: pc.FailWindow,
	}

	hw, hh := p.HalfExtents()
	m := cfg.World.Margins
	p.minX = hw + m.Left
	p.maxX = cfg.World.Width - hw - m.Right
	p.minY = hh + m.Top
	p.maxY = cfg.World.Height - hh - m.Bottom
	return p
}

func (p *Player) Kind() Kind          { return KindPlayer }
func (p *Player) Position() core.Vec2 { return p.Pos }
func (p *Player) actor()              {}

// State returns the current dash state.
func (p *Player) State() DashState { return p.state }

// Health returns the remaining health.
func (p *Player) Health() int { return p.health }

// MaxHealth returns the health cap.
func (p *Player) MaxHealth() int { return p.maxHealth }

// Invulnerable reports whether hits are currently ignored.
func (p *Player) Invulnerable() bool { return p.invulnerable }

// Dead reports whether the player has run out of health.
func (p *Player) Dead() bool { return p.state == Dead }

// AfterImage returns the snapshot taken when the current dash started.
func (p *Player) AfterImage() AfterImage { return p.after }

// Tint returns the current sprite tint.
func (p *Player) Tint() Tint { return p.tint }

// Rotation returns the sprite rotation in degrees.
func (p *Player) Rotation() float64 { return p.rotation }

// ClampBounds returns the rectangle the player's pivot is kept inside.
func (p *Player) ClampBounds() (minX, minY, maxX, maxY float64) {
	return p.minX, p.minY, p.maxX, p.maxY
}

// SetMovement replaces the held direction keys.
func (p *Player) SetMovement(m Movement) {
	p.move = m
}

// Update advances the player by delta seconds and reports whether the
// player is dead. A dead player is not updated.
func (p *Player) Update(delta float64) bool {
	if p.state == Dead {
		return true
	}

	p.Clock.Advance(delta)

	dir := p.move.Vector()
	p.Pos = p.Pos.Add(dir.Scale(p.speed * delta))
	p.clamp()
	p.Facing = facingFor(dir, p.Facing)
	p.Moving = !dir.IsZero()

	if p.state == Attacking {
		if p.latched {
			p.resolveStrike()
		} else {
			p.latched = true
		}
	}

	if p.invulnerable {
		p.invElapsed += delta
		if p.invElapsed >= p.invWindow {
			p.invElapsed = 0
			p.invulnerable = false
			p.tint = TintNone
		}
	}

	if p.state == Failing {
		p.failElapsed += delta
		if p.failElapsed >= p.failWindow {
			p.failElapsed = 0
			p.state = Idle
		}
	}
	return false
}

func (p *Player) clamp() {
	p.Pos.X = core.ClampF(p.Pos.X, p.minX, p.maxX)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.minY, p.maxY)
}

// resolveStrike ends the strike window: a hit completes the dash at the
// after-image, a miss locks dashing out for the fail window.
func (p *Player) resolveStrike() {
	p.latched = false
	if p.struck {
		p.struck = false
		p.Pos = p.after.Pos
		p.Facing = p.after.Facing
		p.state = Idle
		return
	}
	p.state = Failing
	p.failElapsed = 0
}

// StartDash leaves an after-image at the current position. Ignored unless
// the player is idle.
func (p *Player) StartDash() {
	if p.state != Idle {
		return
	}
	p.after = captureAfterImage(p.Entity)
	p.struck = false
	p.state = Dashing
}

// StopDash opens the strike window. Ignored unless dashing.
func (p *Player) StopDash() {
	if p.state != Dashing {
		return
	}
	p.latched = false
	p.state = Attacking
}

// Striking reports whether ghosts should test the strike segment.
func (p *Player) Striking() bool {
	return p.state == Attacking
}

// MarkStruck records that the strike segment crossed a ghost.
func (p *Player) MarkStruck() {
	if p.state == Attacking {
		p.struck = true
	}
}

// Hit applies one point of damage and reports whether it landed.
// Hits are ignored while invulnerable or dead. A hit during a dash cancels
// it into the fail window.
func (p *Player) Hit() bool {
	if p.invulnerable || p.state == Dead {
		return false
	}

	p.health--
	if p.health <= 0 {
		p.health = 0
		p.state = Dead
		p.rotation = 90
	} else {
		p.tint = TintHit
		if p.state == Dashing {
			p.state = Failing
			p.failElapsed = 0
		}
	}
	p.invulnerable = true
	p.invElapsed = 0
	return true
}

// Heal restores one point of health up to the cap and reports whether
// anything changed.
func (p *Player) Heal() bool {
	if p.state == Dead || p.health >= p.maxHealth {
		return false
	}
	p.health++
	return true
}

// Draw emits the fail gauge and the player sprite. The dash trail belongs
// to the after-image.
func (p *Player) Draw(r Renderer) {
	if p.state == Failing {
		progress := 0.0
		if p.failWindow > 0 {
			progress = core.ClampF(1-p.failElapsed/p.failWindow, 0, 1)
		}
		r.Bar(Bar{Pos: p.Pos.Add(core.V(0, 100)), W: 150, H: 20, Progress: progress})
	}

	s := p.sprite(KindPlayer)
	s.Tint = p.tint
	s.Rotation = p.rotation
	r.Sprite(s)
}

package dasher

import (
	"testing"

	"github.com/vovakirdan/dasher/internal/core"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(testConfig())

	if p.Pos != core.V(640, 360) {
		t.Errorf("Pos = %v, expected world center", p.Pos)
	}
	if p.Facing != Down {
		t.Errorf("Facing = %v, expected down", p.Facing)
	}
	if p.Health() != 3 || p.State() != Idle {
		t.Errorf("Health/State = %d/%v, expected 3/idle", p.Health(), p.State())
	}
	minX, minY, maxX, maxY := p.ClampBounds()
	if minX != 70 || maxX != 1210 || minY != 70 || maxY != 650 {
		t.Errorf("ClampBounds() = %v %v %v %v", minX, minY, maxX, maxY)
	}
}

func TestMovementVector(t *testing.T) {
	tests := []struct {
		name string
		m    Movement
		want core.Vec2
	}{
		{"none", Movement{}, core.V(0, 0)},
		{"right", Movement{Right: true}, core.V(1, 0)},
		{"up", Movement{Up: true}, core.V(0, -1)},
		{"cancel out", Movement{Left: true, Right: true}, core.V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.Vector(); got != tc.want {
				t.Errorf("Vector() = %v, expected %v", got, tc.want)
			}
		})
	}

	diag := Movement{Right: true, Down: true}.Vector()
	if !near(diag.Len(), 1) {
		t.Errorf("diagonal length = %v, expected 1", diag.Len())
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestPlayerMoves(t *testing.T) {
	p := NewPlayer(testConfig())
	p.SetMovement(Movement{Right: true})
	p.Update(0.1)

	if !near(p.Pos.X, 690) || p.Pos.Y != 360 {
		t.Errorf("Pos = %v, expected (690, 360)", p.Pos)
	}
	if p.Facing != Right || !p.Moving {
		t.Errorf("Facing/Moving = %v/%v, expected right/true", p.Facing, p.Moving)
	}

	p.SetMovement(Movement{})
	p.Update(0.1)
	if p.Moving || p.Facing != Right {
		t.Errorf("after stopping Facing/Moving = %v/%v, expected right/false", p.Facing, p.Moving)
	}
}

func TestPlayerClamped(t *testing.T) {
	moves := []Movement{
		{Left: true}, {Right: true}, {Up: true}, {Down: true},
		{Left: true, Up: true}, {Right: true, Down: true},
		{Left: true, Down: true}, {Right: true, Up: true},
	}
	deltas := []float64{frame, 0.5, 3, 100}

	for _, m := range moves {
		for _, d := range deltas {
			cfg := testConfig()
			cfg.World.Margins.Top = 40
			cfg.World.Margins.Right = 15
			p := NewPlayer(cfg)
			p.SetMovement(m)
			minX, minY, maxX, maxY := p.ClampBounds()
			for range 10 {
				p.Update(d)
				if p.Pos.X < minX || p.Pos.X > maxX || p.Pos.Y < minY || p.Pos.Y > maxY {
					t.Fatalf("move %+v delta %v left bounds: %v", m, d, p.Pos)
				}
			}
		}
	}
}

func TestPlayerClampBounds(t *testing.T) {
	tests := []struct {
		name                   string
		top, right             float64
		minX, minY, maxX, maxY float64
	}{
		{"no margins", 0, 0, 70, 70, 1210, 650},
		{"top and right margins", 40, 15, 70, 110, 1195, 650},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.World.Margins.Top = tc.top
			cfg.World.Margins.Right = tc.right
			p := NewPlayer(cfg)

			minX, minY, maxX, maxY := p.ClampBounds()
			if minX != tc.minX || minY != tc.minY || maxX != tc.maxX || maxY != tc.maxY {
				t.Errorf("ClampBounds() = %v %v %v %v, expected %v %v %v %v",
					minX, minY, maxX, maxY, tc.minX, tc.minY, tc.maxX, tc.maxY)
			}

			p.SetMovement(Movement{Right: true, Up: true})
			p.Update(100)
			if p.Pos != core.V(maxX, minY) {
				t.Errorf("Pos after a long move = %v, expected corner (%v, %v)", p.Pos, maxX, minY)
			}
		})
	}
}

func TestDashWithoutStrikeFails(t *testing.T) {
	p := NewPlayer(testConfig())

	p.StartDash()
	if p.State() != Dashing {
		t.Fatalf("State() = %v, expected dashing", p.State())
	}
	p.StopDash()
	if p.State() != Attacking {
		t.Fatalf("State() = %v, expected attacking", p.State())
	}

	p.Update(frame)
	if p.State() != Attacking {
		t.Errorf("after one update State() = %v, expected attacking", p.State())
	}
	p.Update(frame)
	if p.State() != Failing {
		t.Errorf("after two updates State() = %v, expected failing", p.State())
	}
	if p.Health() != 3 {
		t.Errorf("Health() = %d, expected unchanged 3", p.Health())
	}

	// Fail window runs out after one second.
	for range 57 {
		p.Update(frame)
	}
	if p.State() != Failing {
		t.Errorf("State() before window ends = %v, expected failing", p.State())
	}
	for range 3 {
		p.Update(frame)
	}
	if p.State() != Idle {
		t.Errorf("State() after window = %v, expected idle", p.State())
	}
}

func TestDashStrikeTeleports(t *testing.T) {
	p := NewPlayer(testConfig())
	start := p.Pos
	startFacing := p.Facing

	p.StartDash()
	p.SetMovement(Movement{Right: true})
	for range 30 {
		p.Update(frame)
	}
	if p.Pos == start {
		t.Fatal("player should have moved away from the after-image")
	}
	if p.AfterImage().Pos != start {
		t.Errorf("after-image moved to %v, expected it to stay at %v", p.AfterImage().Pos, start)
	}

	p.StopDash()
	p.Update(frame)
	p.MarkStruck()
	p.Update(frame)

	if p.State() != Idle {
		t.Errorf("State() = %v, expected idle", p.State())
	}
	if p.Pos != start || p.Facing != startFacing {
		t.Errorf("Pos/Facing = %v/%v, expected after-image %v/%v", p.Pos, p.Facing, start, startFacing)
	}
}

func TestDashTransitionGuards(t *testing.T) {
	p := NewPlayer(testConfig())

	p.StopDash()
	if p.State() != Idle {
		t.Errorf("StopDash from idle: State() = %v", p.State())
	}

	p.StartDash()
	first := p.AfterImage()
	p.SetMovement(Movement{Up: true})
	p.Update(0.1)
	p.StartDash()
	if p.AfterImage() != first {
		t.Error("StartDash while dashing should not recapture the after-image")
	}

	p.StopDash()
	p.StartDash()
	p.StopDash()
	if p.State() != Attacking {
		t.Errorf("State() = %v, expected attacking to ignore dash input", p.State())
	}

	p.Update(frame)
	p.Update(frame)
	p.StartDash()
	if p.State() != Failing {
		t.Errorf("StartDash while failing: State() = %v", p.State())
	}

	p.MarkStruck()
	if p.struck {
		t.Error("MarkStruck outside the strike window should be ignored")
	}
}

func TestHitInvulnerability(t *testing.T) {
	p := NewPlayer(testConfig())

	if !p.Hit() {
		t.Fatal("first Hit() should land")
	}
	if p.Hit() {
		t.Error("second Hit() inside the window should be ignored")
	}
	if p.Health() != 2 {
		t.Errorf("Health() = %d, expected 2", p.Health())
	}
	if p.Tint() != TintHit {
		t.Errorf("Tint() = %v, expected hit tint", p.Tint())
	}

	for range 60 {
		p.Update(frame)
		p.Hit()
	}
	if p.Health() != 2 {
		t.Errorf("Health() after 1s = %d, expected 2", p.Health())
	}

	for range 40 {
		p.Update(frame)
	}
	if p.Invulnerable() || p.Tint() != TintNone {
		t.Errorf("after 1.5s Invulnerable/Tint = %v/%v", p.Invulnerable(), p.Tint())
	}
	if !p.Hit() || p.Health() != 1 {
		t.Errorf("Hit() after window: Health() = %d, expected 1", p.Health())
	}
}

func TestHitCancelsDash(t *testing.T) {
	p := NewPlayer(testConfig())
	p.StartDash()
	p.Hit()

	if p.State() != Failing {
		t.Errorf("State() = %v, expected failing", p.State())
	}
}

func TestDeath(t *testing.T) {
	p := NewPlayer(testConfig())
	for range 3 {
		p.Hit()
		p.invulnerable = false
	}

	if !p.Dead() || p.Health() != 0 {
		t.Fatalf("Dead/Health = %v/%d, expected dead at 0", p.Dead(), p.Health())
	}
	if p.Rotation() != 90 {
		t.Errorf("Rotation() = %v, expected 90", p.Rotation())
	}

	pos := p.Pos
	p.SetMovement(Movement{Left: true})
	if !p.Update(1) {
		t.Error("Update() on a dead player should report true")
	}
	if p.Pos != pos {
		t.Error("dead player should not move")
	}

	p.StartDash()
	p.invulnerable = false
	if p.Hit() || p.Heal() || p.State() != Dead || p.Health() != 0 {
		t.Error("dead player should ignore input, hits and heals")
	}
}

func TestHeal(t *testing.T) {
	p := NewPlayer(testConfig())
	if p.Heal() {
		t.Error("Heal() at full health should be a no-op")
	}

	p.Hit()
	if !p.Heal() || p.Health() != 3 {
		t.Errorf("Heal() after hit: Health() = %d, expected 3", p.Health())
	}
}

func TestPlayerDraw(t *testing.T) {
	p := NewPlayer(testConfig())
	var r recorder

	p.Draw(&r)
	if len(r.sprites) != 1 || len(r.lines) != 0 || len(r.bars) != 0 {
		t.Fatalf("idle draw = %d sprites %d lines %d bars", len(r.sprites), len(r.lines), len(r.bars))
	}

	p.StartDash()
	p.SetMovement(Movement{Left: true})
	p.Update(0.2)
	r = recorder{}
	p.Draw(&r)
	if kinds := r.kinds(); len(kinds) != 1 || kinds[0] != KindPlayer || len(r.lines) != 0 {
		t.Errorf("dashing draw = kinds %v, %d lines; expected the player only", kinds, len(r.lines))
	}

	p.StopDash()
	p.Update(frame)
	p.Update(0.5)
	r = recorder{}
	p.Draw(&r)
	if len(r.bars) != 1 {
		t.Fatalf("failing draw bars = %d, expected 1", len(r.bars))
	}
	first := r.bars[0]
	if first.Pos != p.Pos.Add(core.V(0, 100)) || first.W != 150 || first.Progress <= 0 || first.Progress > 1 {
		t.Errorf("fail bar = %+v", first)
	}

	// The gauge drains toward the end of the fail window.
	p.Update(0.25)
	r = recorder{}
	p.Draw(&r)
	if len(r.bars) != 1 || !near(r.bars[0].Progress, first.Progress-0.25) {
		t.Errorf("fail bar after 0.25s = %+v, expected progress %v", r.bars, first.Progress-0.25)
	}
}

package dasher

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/highscore"
)

const frame = 1.0 / 60

func testConfig() config.DasherConfig {
	return config.DefaultDasherConfig()
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// recorder is a Renderer that keeps every command.
type recorder struct {
	sprites []Sprite
	lines   [][2]core.Vec2
	bars    []Bar
	huds    []HUD
}

func (r *recorder) Sprite(s Sprite)                       { r.sprites = append(r.sprites, s) }
func (r *recorder) Line(from, to core.Vec2, width float64) { r.lines = append(r.lines, [2]core.Vec2{from, to}) }
func (r *recorder) Bar(b Bar)                             { r.bars = append(r.bars, b) }
func (r *recorder) HUD(h HUD)                             { r.huds = append(r.huds, h) }

func (r *recorder) kinds() []Kind {
	out := make([]Kind, len(r.sprites))
	for i, s := range r.sprites {
		out[i] = s.Kind
	}
	return out
}

func mustSession(t *testing.T, cfg config.DasherConfig, store highscore.Store) *Session {
	t.Helper()
	s, err := NewSession(cfg, newTestRand(), store)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	return s
}

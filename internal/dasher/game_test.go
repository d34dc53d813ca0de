package dasher

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/highscore"
	"github.com/vovakirdan/dasher/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func mustGame(t *testing.T, g *Game) *Game {
	t.Helper()
	if err := g.Reset(testRuntime()); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	return g
}

func frameOf(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hasCue(cues []core.Cue, c core.Cue) bool {
	for _, x := range cues {
		if x == c {
			return true
		}
	}
	return false
}

func TestGamesRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"dasher", "Dasher"},
		{"dasher_classic", "Dasher (Classic)"},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			g, err := registry.Create(tc.id)
			if err != nil {
				t.Fatalf("registry.Create(%q) error: %v", tc.id, err)
			}
			if g.ID() != tc.id || g.Title() != tc.title {
				t.Errorf("ID/Title = %q/%q, expected %q/%q", g.ID(), g.Title(), tc.id, tc.title)
			}
		})
	}
}

func TestGameFirstStepStartsMusic(t *testing.T) {
	g := mustGame(t, New())

	res := g.Step(core.NewInputFrame())
	if !hasCue(res.Cues, core.CueMusicStart) {
		t.Errorf("first Step() cues = %v, expected music-start", res.Cues)
	}
	if res.State.GameOver || res.State.Paused {
		t.Errorf("State = %+v, expected running", res.State)
	}
}

func TestGameMovement(t *testing.T) {
	g := mustGame(t, New())

	for range 6 {
		g.Step(frameOf(core.ActionMoveLeft))
	}
	if got := g.Session().Player().Pos.X; !near(got, 590) {
		t.Errorf("Pos.X = %v, expected 590", got)
	}
}

func TestGameStepDelta(t *testing.T) {
	g := mustGame(t, New())

	in := core.NewInputFrame()
	in.Delta = 0.25
	g.Step(in)
	if got := g.Stats().Duration; !near(got, 0.25) {
		t.Errorf("Duration after a 0.25s frame = %v, expected 0.25", got)
	}

	g.Step(core.NewInputFrame())
	if got := g.Stats().Duration; !near(got, 0.25+1.0/60) {
		t.Errorf("Duration after a fixed tick = %v, expected %v", got, 0.25+1.0/60)
	}
}

func TestGameDashActions(t *testing.T) {
	g := mustGame(t, New())
	p := func() DashState { return g.Session().Player().State() }

	g.Step(frameOf(core.ActionDashToggle))
	if p() != Dashing {
		t.Fatalf("after toggle State() = %v, expected dashing", p())
	}
	g.Step(frameOf(core.ActionDashToggle))
	if p() != Attacking {
		t.Fatalf("after second toggle State() = %v, expected attacking", p())
	}

	g = mustGame(t, New())
	g.Step(frameOf(core.ActionDashPress))
	if p() != Dashing {
		t.Fatalf("after press State() = %v, expected dashing", p())
	}
	g.Step(core.NewInputFrame())
	if p() != Dashing {
		t.Errorf("dash should last while held, State() = %v", p())
	}
	g.Step(frameOf(core.ActionDashRelease))
	if p() != Attacking {
		t.Errorf("after release State() = %v, expected attacking", p())
	}
}

func TestGamePause(t *testing.T) {
	g := mustGame(t, New())

	res := g.Step(frameOf(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("Pause should pause")
	}
	x := g.Session().Player().Pos.X
	g.Step(frameOf(core.ActionMoveLeft))
	if g.Session().Player().Pos.X != x {
		t.Error("player moved while paused")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay not drawn")
	}

	if res := g.Step(frameOf(core.ActionPause)); res.State.Paused {
		t.Error("second Pause should resume")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := mustGame(t, New())
	g.Step(core.NewInputFrame())

	kill(g.Session().Player())
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("State.GameOver = false after death")
	}
	for _, c := range []core.Cue{core.CueMusicStop, core.CueDefeatStart, core.CueGameOver} {
		if !hasCue(res.Cues, c) {
			t.Errorf("game over cues = %v, missing %v", res.Cues, c)
		}
	}

	res = g.Step(frameOf(core.ActionRestart))
	if res.State.GameOver {
		t.Error("Restart should start a new round")
	}
	if !hasCue(res.Cues, core.CueDefeatStop) || !hasCue(res.Cues, core.CueMusicStart) {
		t.Errorf("restart cues = %v", res.Cues)
	}
}

func TestGameClassicRuleset(t *testing.T) {
	g := mustGame(t, NewClassic())
	cfg := g.Session().Config()

	if cfg.Ghost.ContactRadius != 150 {
		t.Errorf("ContactRadius = %v, expected 150", cfg.Ghost.ContactRadius)
	}
	if cfg.Horde.HeartsEnabled {
		t.Error("classic ruleset should not drop hearts")
	}
}

func TestGamePreset(t *testing.T) {
	tests := []struct {
		preset   config.DifficultyPreset
		interval float64
		steps    int
	}{
		{config.DifficultyNormal, 5, 5},
		{config.DifficultyHard, 3.75, 5},
		{config.DifficultyFixed, 5, 1},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			g := New()
			g.SetPreset(tc.preset)
			mustGame(t, g)

			horde := g.Session().Config().Horde
			if got := horde.SpawnInterval(0); !near(got, tc.interval) {
				t.Errorf("SpawnInterval(0) = %v, expected %v", got, tc.interval)
			}
			if len(horde.Schedule) != tc.steps {
				t.Errorf("len(Schedule) = %d, expected %d", len(horde.Schedule), tc.steps)
			}
		})
	}
}

func TestGameHighScoreStore(t *testing.T) {
	SetHighScoreStore("dasher", &highscore.Memory{Score: 40})
	t.Cleanup(func() { SetHighScoreStore("dasher", &highscore.Memory{}) })

	g := mustGame(t, New())
	if got := g.State().HighScore; got != 40 {
		t.Errorf("State().HighScore = %d, expected 40", got)
	}
	if got := mustGame(t, NewClassic()).State().HighScore; got != 0 {
		t.Errorf("classic State().HighScore = %d, expected its own store", got)
	}
}

func TestGameBadConfig(t *testing.T) {
	SetConfigPath("/nonexistent/dasher.yaml")
	t.Cleanup(func() { SetConfigPath("") })

	if err := New().Reset(testRuntime()); err == nil {
		t.Error("Reset() with missing config file expected error")
	}
}

func TestCueMapping(t *testing.T) {
	tests := []struct {
		kind     EventKind
		expected core.Cue
	}{
		{EventHit, core.CueHit},
		{EventPickup, core.CuePickup},
		{EventMusicStart, core.CueMusicStart},
		{EventMusicStop, core.CueMusicStop},
		{EventDefeatStart, core.CueDefeatStart},
		{EventDefeatStop, core.CueDefeatStop},
		{EventGameOver, core.CueGameOver},
		{EventNewHighScore, core.CueHighScore},
	}

	for _, tc := range tests {
		if got := cueFor(tc.kind); got != tc.expected {
			t.Errorf("cueFor(%v) = %v, expected %v", tc.kind, got, tc.expected)
		}
	}
	if cuesFor(nil) != nil {
		t.Error("cuesFor(nil) should be nil")
	}
}

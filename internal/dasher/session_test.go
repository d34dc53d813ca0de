package dasher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/highscore"
)

func kindsOf(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func equalKinds(a, b []EventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// kill drops the player to zero health.
func kill(p *Player) {
	for !p.Dead() {
		p.invulnerable = false
		p.Hit()
	}
}

func TestNewSessionStartsMusic(t *testing.T) {
	s := mustSession(t, testConfig(), nil)

	got := kindsOf(s.DrainEvents())
	if !equalKinds(got, []EventKind{EventMusicStart}) {
		t.Errorf("initial events = %v, expected [music-start]", got)
	}
	if len(s.DrainEvents()) != 0 {
		t.Error("DrainEvents() should clear the queue")
	}
}

func TestNewSessionRejectsBadInput(t *testing.T) {
	cfg := testConfig()
	cfg.Player.MaxHealth = 0
	if _, err := NewSession(cfg, newTestRand(), nil); err == nil {
		t.Error("NewSession() with invalid config expected error")
	}
	if _, err := NewSession(testConfig(), nil, nil); err == nil {
		t.Error("NewSession() with nil rng expected error")
	}
}

func TestSessionGameOver(t *testing.T) {
	store := &highscore.Memory{Score: 100}
	s := mustSession(t, testConfig(), store)
	s.DrainEvents()

	kill(s.Player())
	if !s.Update(frame) {
		t.Fatal("Update() after death should report game over")
	}
	if !s.Over() {
		t.Error("Over() = false after death")
	}

	got := kindsOf(s.DrainEvents())
	want := []EventKind{EventMusicStop, EventDefeatStart, EventGameOver}
	if !equalKinds(got, want) {
		t.Errorf("events = %v, expected %v", got, want)
	}
	if store.Score != 100 {
		t.Errorf("high score overwritten with lower score: %d", store.Score)
	}

	// Further updates are no-ops.
	ghosts := len(s.Horde().Ghosts())
	for range 600 {
		if !s.Update(frame) {
			t.Fatal("Update() should keep reporting game over")
		}
	}
	if len(s.Horde().Ghosts()) != ghosts || len(s.DrainEvents()) != 0 {
		t.Error("horde should not advance after game over")
	}
}

func TestSessionNewHighScore(t *testing.T) {
	store := &highscore.Memory{Score: 5}
	s := mustSession(t, testConfig(), store)
	s.DrainEvents()

	p := s.Player()
	cfgNoContact := s.cfg
	cfgNoContact.Ghost.ContactRadius = 1
	s.horde.cfg = cfgNoContact
	lineUp(t, s.horde, p, 2)
	s.Update(0)
	if s.Score() != 20 {
		t.Fatalf("Score() = %d, expected 20", s.Score())
	}

	kill(p)
	s.Update(frame)

	events := s.DrainEvents()
	last := events[len(events)-1]
	if last.Kind != EventNewHighScore || last.Score != 20 {
		t.Errorf("last event = %+v, expected new high score 20", last)
	}
	if store.Score != 20 || s.HighScore() != 20 {
		t.Errorf("stored/session high score = %d/%d, expected 20", store.Score, s.HighScore())
	}
	if s.SaveErr() != nil {
		t.Errorf("SaveErr() = %v", s.SaveErr())
	}
}

func TestSessionCorruptHighScoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("not_a_number"), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := highscore.NewFile(path)
	if err != nil {
		t.Fatal(err)
	}

	s := mustSession(t, testConfig(), store)
	if s.HighScore() != 0 {
		t.Fatalf("HighScore() = %d, expected 0", s.HighScore())
	}

	s.horde.score = 30
	kill(s.Player())
	if !s.Update(frame) {
		t.Fatal("session should complete")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "30" {
		t.Errorf("high score file = %q, expected %q", data, "30")
	}
}

func TestSessionRestart(t *testing.T) {
	s := mustSession(t, testConfig(), nil)
	s.DrainEvents()

	s.Restart()
	if len(s.DrainEvents()) != 0 {
		t.Error("Restart() while playing should be ignored")
	}

	old := s.Player()
	s.horde.score = 70
	kill(old)
	s.Update(frame)
	s.DrainEvents()

	s.Restart()
	if s.Over() || s.Score() != 0 {
		t.Errorf("after Restart Over/Score = %v/%d", s.Over(), s.Score())
	}
	if s.Player() == old || s.Player().Health() != 3 {
		t.Error("Restart() should build a fresh player")
	}
	if s.HighScore() != 70 {
		t.Errorf("HighScore() = %d, expected 70 kept across restart", s.HighScore())
	}
	got := kindsOf(s.DrainEvents())
	if !equalKinds(got, []EventKind{EventDefeatStop, EventMusicStart}) {
		t.Errorf("restart events = %v", got)
	}
	if s.Update(frame) {
		t.Error("Update() after restart should not report game over")
	}
}

func TestSessionHitEvents(t *testing.T) {
	s := mustSession(t, testConfig(), nil)
	s.DrainEvents()

	s.horde.SpawnAt(0).Pos = s.Player().Pos.Add(core.V(100, 0))
	s.Update(frame)

	got := kindsOf(s.DrainEvents())
	if !equalKinds(got, []EventKind{EventHit}) {
		t.Errorf("events = %v, expected [hit]", got)
	}
	if s.Player().Health() != 2 {
		t.Errorf("Health() = %d, expected 2", s.Player().Health())
	}
}

func TestSessionPickupEvents(t *testing.T) {
	s := mustSession(t, testConfig(), nil)
	s.DrainEvents()

	p := s.Player()
	s.horde.hearts = append(s.horde.hearts, NewHeart(p.Pos, p, s.cfg))
	s.Update(frame)

	got := kindsOf(s.DrainEvents())
	if !equalKinds(got, []EventKind{EventPickup}) {
		t.Errorf("events = %v, expected [pickup]", got)
	}
}

func TestSessionInputForwarding(t *testing.T) {
	s := mustSession(t, testConfig(), nil)

	s.SetMovement(Movement{Up: true})
	s.StartDash()
	if s.Player().State() != Dashing {
		t.Fatalf("State() = %v, expected dashing", s.Player().State())
	}
	s.Update(0.1)
	if !near(s.Player().Pos.Y, 310) {
		t.Errorf("Pos.Y = %v, expected 310", s.Player().Pos.Y)
	}
	s.StopDash()
	if s.Player().State() != Attacking {
		t.Errorf("State() = %v, expected attacking", s.Player().State())
	}
}

func TestSessionDraw(t *testing.T) {
	s := mustSession(t, testConfig(), &highscore.Memory{Score: 12})
	p := s.Player()
	s.horde.hearts = append(s.horde.hearts, NewHeart(core.V(100, 100), p, s.cfg))
	s.horde.SpawnAt(0)
	p.StartDash()

	var r recorder
	s.Draw(&r)

	want := []Kind{KindHeart, KindGhost, KindAfterImage, KindPlayer}
	got := r.kinds()
	if len(got) != len(want) {
		t.Fatalf("sprite kinds = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sprite kinds = %v, expected %v", got, want)
		}
	}
	if len(r.huds) != 1 {
		t.Fatalf("HUD calls = %d, expected 1", len(r.huds))
	}
	if hud := r.huds[0]; hud.Health != 3 || hud.MaxHealth != 3 || hud.HighScore != 12 || hud.GameOver {
		t.Errorf("HUD = %+v", hud)
	}

	if len(r.lines) != 1 || r.lines[0] != [2]core.Vec2{p.Pos, p.AfterImage().Pos} {
		t.Errorf("dash trail = %v, expected one line from player to after-image", r.lines)
	}
	if r.sprites[2].Tint != TintFaded {
		t.Errorf("after-image tint = %v, expected faded", r.sprites[2].Tint)
	}

	actors := s.Actors()
	if len(actors) != 4 || actors[3].Kind() != KindPlayer {
		t.Errorf("Actors() = %d entries, last %v", len(actors), actors[len(actors)-1].Kind())
	}

	// Once the dash ends there is no after-image or trail.
	p.StopDash()
	r = recorder{}
	s.Draw(&r)
	if len(r.lines) != 0 {
		t.Errorf("attacking draw lines = %d, expected 0", len(r.lines))
	}
	for _, k := range r.kinds() {
		if k == KindAfterImage {
			t.Error("after-image drawn outside a dash")
		}
	}
}

func TestSessionStats(t *testing.T) {
	s := mustSession(t, testConfig(), nil)
	cfgNoContact := s.cfg
	cfgNoContact.Ghost.ContactRadius = 1
	s.horde.cfg = cfgNoContact

	lineUp(t, s.horde, s.Player(), 3)
	s.Update(0.5)

	st := s.Stats()
	if st.Kills != 3 || st.Score != 30 || !near(st.Duration, 0.5) {
		t.Errorf("Stats() = %+v, expected 3 kills, 30 points, 0.5s", st)
	}

	kill(s.Player())
	s.Update(frame)
	s.Restart()
	if st := s.Stats(); st.Kills != 0 || st.Duration != 0 {
		t.Errorf("Stats() after restart = %+v, expected zero", st)
	}
}

// Package dasher implements the Dasher game: a player who dodges homing
// ghosts and kills them by dashing through them.
//
// The package is pure simulation. Frontends feed it elapsed time and input,
// draw it through the Renderer interface and realize its events as sound.
package dasher

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/highscore"
)

// Session is one game: a player, the horde, the game-over flag and the
// high score.
type Session struct {
	cfg   config.DasherConfig
	rng   *rand.Rand
	store highscore.Store

	player *Player
	horde  *Horde

	over      bool
	kills     int
	elapsed   float64
	highScore int
	newRecord bool
	saveErr   error
	events    []Event
}

// NewSession validates cfg and starts a game. rng drives all randomness for
// the session's lifetime. A nil store keeps the high score in memory.
func NewSession(cfg config.DasherConfig, rng *rand.Rand, store highscore.Store) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dasher: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("dasher: nil random source")
	}
	if store == nil {
		store = &highscore.Memory{}
	}

	s := &Session{cfg: cfg, rng: rng, store: store}
	s.highScore = store.Load()
	s.build()
	s.emit(EventMusicStart, 0)
	return s, nil
}

func (s *Session) build() {
	s.player = NewPlayer(s.cfg)
	s.horde = NewHorde(s.cfg, s.player, s.rng)
}

func (s *Session) emit(kind EventKind, score int) {
	s.events = append(s.events, Event{Kind: kind, Score: score})
}

// Update advances the game by delta seconds and reports whether it is over.
func (s *Session) Update(delta float64) bool {
	if s.over {
		return true
	}

	if s.player.Update(delta) {
		s.finish()
		return true
	}
	s.elapsed += delta

	rep := s.horde.Update(delta)
	s.kills += rep.Kills
	for range rep.Hits {
		s.emit(EventHit, 0)
	}
	for range rep.Pickups {
		s.emit(EventPickup, 0)
	}
	return false
}

func (s *Session) finish() {
	score := s.horde.Score()
	s.newRecord = false
	s.saveErr = nil
	if score > s.highScore {
		s.highScore = score
		s.newRecord = true
		s.saveErr = s.store.Save(score)
	}

	s.emit(EventMusicStop, 0)
	s.emit(EventDefeatStart, 0)
	s.emit(EventGameOver, score)
	if s.newRecord {
		s.emit(EventNewHighScore, score)
	}
	s.over = true
}

// Restart begins a new run. Ignored unless the game is over.
func (s *Session) Restart() {
	if !s.over {
		return
	}
	s.build()
	s.over = false
	s.newRecord = false
	s.kills = 0
	s.elapsed = 0
	s.emit(EventDefeatStop, 0)
	s.emit(EventMusicStart, 0)
}

// SetMovement forwards the held direction keys to the player.
func (s *Session) SetMovement(m Movement) {
	s.player.SetMovement(m)
}

// StartDash begins a dash if the player is idle.
func (s *Session) StartDash() {
	s.player.StartDash()
}

// StopDash releases a dash into a strike.
func (s *Session) StopDash() {
	s.player.StopDash()
}

// DrainEvents returns and clears the pending events.
func (s *Session) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// Over reports whether the run has ended.
func (s *Session) Over() bool { return s.over }

// Score returns the current run's score.
func (s *Session) Score() int { return s.horde.Score() }

// RunStats summarizes the current run.
type RunStats struct {
	Score    int
	Kills    int
	Duration float64 // seconds survived
}

// Stats returns the current run's totals.
func (s *Session) Stats() RunStats {
	return RunStats{Score: s.horde.Score(), Kills: s.kills, Duration: s.elapsed}
}

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int { return s.highScore }

// SaveErr returns the error from persisting the last new high score, if any.
func (s *Session) SaveErr() error { return s.saveErr }

// Player returns the player.
func (s *Session) Player() *Player { return s.player }

// Horde returns the horde.
func (s *Session) Horde() *Horde { return s.horde }

// Config returns the tuning the session runs with.
func (s *Session) Config() config.DasherConfig { return s.cfg }

// Actors returns every entity on the field in draw order.
func (s *Session) Actors() []Actor {
	actors := make([]Actor, 0, len(s.horde.hearts)+len(s.horde.ghosts)+2)
	for _, h := range s.horde.hearts {
		actors = append(actors, h)
	}
	for _, g := range s.horde.ghosts {
		actors = append(actors, g)
	}
	if s.player.State() == Dashing {
		actors = append(actors, s.player.after.withTrail(s.player.Pos))
	}
	return append(actors, s.player)
}

// Draw emits the frame back to front. It does not change the session.
func (s *Session) Draw(r Renderer) {
	for _, a := range s.Actors() {
		a.Draw(r)
	}
	r.HUD(HUD{
		Health:    s.player.Health(),
		MaxHealth: s.player.MaxHealth(),
		Score:     s.horde.Score(),
		HighScore: s.highScore,
		GameOver:  s.over,
		NewRecord: s.newRecord,
	})
}

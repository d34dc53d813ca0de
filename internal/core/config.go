package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

func (c RuntimeConfig) rate() int {
	if c.TickRate <= 0 {
		return 60
	}
	return c.TickRate
}

// TickDelta returns the wall-clock length of one tick in seconds.
// Falls back to 60 ticks per second when TickRate is unset.
func (c RuntimeConfig) TickDelta() float64 {
	return 1.0 / float64(c.rate())
}

// TickInterval is TickDelta as a time.Duration.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.rate())
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score known to the game
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Audio/visual signals raised during this tick
}

// Cue is a discrete presentation signal raised by a game (play a sound,
// switch music). The platform decides how to realize it.
type Cue int

const (
	CueNone Cue = iota
	CueHit
	CuePickup
	CueMusicStart
	CueMusicStop
	CueDefeatStart
	CueDefeatStop
	CueGameOver
	CueHighScore
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CuePickup:
		return "pickup"
	case CueMusicStart:
		return "music-start"
	case CueMusicStop:
		return "music-stop"
	case CueDefeatStart:
		return "defeat-start"
	case CueDefeatStop:
		return "defeat-stop"
	case CueGameOver:
		return "game-over"
	case CueHighScore:
		return "high-score"
	default:
		return "none"
	}
}

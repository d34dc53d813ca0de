// Package config provides YAML-based tuning for Dasher and the difficulty
// presets that reshape its spawn schedule.
package config

import "fmt"

// DasherConfig contains all tuning for a Dasher session.
type DasherConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Ghost     GhostConfig     `yaml:"ghost"`
	Horde     HordeConfig     `yaml:"horde"`
	Heart     HeartConfig     `yaml:"heart"`
	Animation AnimationConfig `yaml:"animation"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Margins Margins `yaml:"margins"` // Extra inset applied when clamping the player
}

// Center returns the middle of the playfield.
func (w WorldConfig) Center() (float64, float64) {
	return w.Width / 2, w.Height / 2
}

// Margins insets the clamping box on each side.
type Margins struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// SpriteSize is the size of one sprite sheet frame in source pixels.
type SpriteSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// PlayerConfig defines the player's movement and survivability.
type PlayerConfig struct {
	Speed           float64    `yaml:"speed"` // World units per second
	Sprite          SpriteSize `yaml:"sprite"`
	Scale           float64    `yaml:"scale"`
	Facing          int        `yaml:"facing"`          // Initial facing, 0=right 1=left 2=down 3=up
	MaxHealth       int        `yaml:"max_health"`      // Starting and maximum health
	Invulnerability float64    `yaml:"invulnerability"` // Seconds of immunity after a hit
	FailWindow      float64    `yaml:"fail_window"`     // Seconds of lockout after a missed dash
}

// GhostConfig defines enemy behaviour.
type GhostConfig struct {
	Speed         float64    `yaml:"speed"`
	Sprite        SpriteSize `yaml:"sprite"`
	Scale         float64    `yaml:"scale"`
	ContactRadius float64    `yaml:"contact_radius"` // 0 = sum of both sprites' half-widths
}

// HordeConfig defines spawning and scoring.
type HordeConfig struct {
	SpawnRadius   float64     `yaml:"spawn_radius"` // Distance from the world center
	Schedule      []SpawnStep `yaml:"schedule"`
	KillReward    int         `yaml:"kill_reward"`
	DropReward    int         `yaml:"drop_reward"` // Awarded instead when a heart drops
	HeartsEnabled bool        `yaml:"hearts_enabled"`
}

// SpawnStep applies Interval seconds between spawns once the score
// reaches MinScore.
type SpawnStep struct {
	MinScore int     `yaml:"min_score"`
	Interval float64 `yaml:"interval"`
}

// HeartConfig defines heart pickups.
type HeartConfig struct {
	PickupRadius float64 `yaml:"pickup_radius"`
}

// AnimationConfig defines sprite sheet cycling shared by all entities.
type AnimationConfig struct {
	Period float64 `yaml:"period"` // Seconds per frame
	Frames int     `yaml:"frames"` // Frames per sheet row
}

// SpawnInterval returns the seconds between spawns at the given score.
// Steps are matched by the highest MinScore not above score.
func (h HordeConfig) SpawnInterval(score int) float64 {
	interval := 0.0
	best := -1
	for _, s := range h.Schedule {
		if s.MinScore <= score && s.MinScore > best {
			best = s.MinScore
			interval = s.Interval
		}
	}
	return interval
}

// HealthCap is the most health a player can have; heart drop odds are
// (HealthCap - health) / HealthCap.
const HealthCap = 3

// Validate checks that a loaded config can drive a session.
func (c DasherConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.Player.MaxHealth <= 0 || c.Player.MaxHealth > HealthCap:
		return fmt.Errorf("config: player max_health must be 1..%d, got %d", HealthCap, c.Player.MaxHealth)
	case c.Player.Sprite.W <= 0 || c.Player.Sprite.H <= 0 || c.Player.Scale <= 0:
		return fmt.Errorf("config: player sprite and scale must be positive")
	case c.Ghost.Sprite.W <= 0 || c.Ghost.Sprite.H <= 0 || c.Ghost.Scale <= 0:
		return fmt.Errorf("config: ghost sprite and scale must be positive")
	case c.Player.Facing < 0 || c.Player.Facing > 3:
		return fmt.Errorf("config: player facing must be 0..3, got %d", c.Player.Facing)
	case c.Animation.Period <= 0 || c.Animation.Frames <= 0:
		return fmt.Errorf("config: animation period and frames must be positive")
	case len(c.Horde.Schedule) == 0:
		return fmt.Errorf("config: horde schedule is empty")
	}
	for i, s := range c.Horde.Schedule {
		if s.Interval <= 0 {
			return fmt.Errorf("config: horde schedule step %d has non-positive interval %v", i, s.Interval)
		}
	}
	if c.Horde.SpawnInterval(0) == 0 {
		return fmt.Errorf("config: horde schedule has no step for score 0")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IntervalScaleForPreset returns the factor applied to every spawn interval.
func IntervalScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables the difficulty ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

package config

import (
	_ "embed"
)

//go:embed defaults/dasher.yaml
var defaultDasherYAML []byte

// DefaultDasherConfig returns the hardcoded Dasher tuning.
// defaults/dasher.yaml mirrors these values.
func DefaultDasherConfig() DasherConfig {
	return DasherConfig{
		World: WorldConfig{
			Width:  1280,
			Height: 720,
		},
		Player: PlayerConfig{
			Speed:           500,
			Sprite:          SpriteSize{W: 14, H: 15},
			Scale:           10,
			Facing:          2,
			MaxHealth:       3,
			Invulnerability: 1.5,
			FailWindow:      1.0,
		},
		Ghost: GhostConfig{
			Speed:         100,
			Sprite:        SpriteSize{W: 19, H: 21},
			Scale:         10,
			ContactRadius: 0,
		},
		Horde: HordeConfig{
			SpawnRadius: 700,
			Schedule: []SpawnStep{
				{MinScore: 0, Interval: 5},
				{MinScore: 100, Interval: 4},
				{MinScore: 300, Interval: 3},
				{MinScore: 500, Interval: 2},
				{MinScore: 1000, Interval: 1},
			},
			KillReward:    10,
			DropReward:    5,
			HeartsEnabled: true,
		},
		Heart: HeartConfig{
			PickupRadius: 140,
		},
		Animation: AnimationConfig{
			Period: 0.2,
			Frames: 4,
		},
	}
}

// ClassicDasherConfig returns the tuning of the earlier ruleset:
// a flat contact radius, no heart drops and a constant spawn interval.
func ClassicDasherConfig() DasherConfig {
	cfg := DefaultDasherConfig()
	ApplyClassic(&cfg)
	return cfg
}

// ApplyClassic rewrites a loaded config into the classic ruleset while
// keeping its world, sprite and speed settings.
func ApplyClassic(cfg *DasherConfig) {
	cfg.Ghost.ContactRadius = 150
	cfg.Horde.HeartsEnabled = false
	first := cfg.Horde.SpawnInterval(0)
	if first <= 0 {
		first = 5
	}
	cfg.Horde.Schedule = []SpawnStep{{MinScore: 0, Interval: first}}
}

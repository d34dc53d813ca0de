package config

import "sort"

// ApplyDasherPreset reshapes the spawn schedule for a difficulty preset.
// Easy and hard stretch or compress every interval; fixed keeps only the
// opening interval so the game never speeds up. Normal and empty leave the
// schedule as loaded.
func ApplyDasherPreset(cfg *DasherConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Horde.Schedule = []SpawnStep{{MinScore: 0, Interval: cfg.Horde.SpawnInterval(0)}}
		return
	}

	scale := IntervalScaleForPreset(preset)
	steps := make([]SpawnStep, len(cfg.Horde.Schedule))
	for i, s := range cfg.Horde.Schedule {
		steps[i] = SpawnStep{MinScore: s.MinScore, Interval: s.Interval * scale}
	}
	cfg.Horde.Schedule = steps
}

// Steps returns the schedule ordered by MinScore, for display.
func (h HordeConfig) Steps() []SpawnStep {
	steps := append([]SpawnStep(nil), h.Schedule...)
	sort.Slice(steps, func(i, j int) bool {
		return steps[i].MinScore < steps[j].MinScore
	})
	return steps
}

package dasher

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
)

// HordeReport summarizes one horde update.
type HordeReport struct {
	Kills   int
	Hits    int // contact hits that landed on the player
	Pickups int
	Spawned int
}

// Horde owns the ghosts and dropped hearts and keeps the score.
// Ghosts never leave on their own; the population only shrinks through kills.
type Horde struct {
	cfg    config.DasherConfig
	player *Player // not owned
	rng    *rand.Rand

	ghosts  []*Ghost
	hearts  []*Heart
	elapsed float64
	score   int
}

// NewHorde creates an empty horde hunting player.
func NewHorde(cfg config.DasherConfig, player *Player, rng *rand.Rand) *Horde {
	return &Horde{cfg: cfg, player: player, rng: rng}
}

// Score returns the points earned so far.
func (h *Horde) Score() int { return h.score }

// Ghosts returns the live ghosts.
func (h *Horde) Ghosts() []*Ghost { return h.ghosts }

// Hearts returns the hearts waiting on the field.
func (h *Horde) Hearts() []*Heart { return h.hearts }

// Interval returns the current seconds between spawns.
func (h *Horde) Interval() float64 {
	return h.cfg.Horde.SpawnInterval(h.score)
}

// Update runs ghosts, then hearts, then the spawn timer.
func (h *Horde) Update(delta float64) HordeReport {
	var rep HordeReport
	h.updateGhosts(delta, &rep)
	h.updateHearts(&rep)
	if h.tickSpawn(delta) {
		rep.Spawned++
	}
	return rep
}

func (h *Horde) updateGhosts(delta float64, rep *HordeReport) {
	alive := h.ghosts[:0]
	for _, g := range h.ghosts {
		killed, hurt := g.Update(delta)
		if hurt {
			rep.Hits++
		}
		if !killed {
			alive = append(alive, g)
			continue
		}
		rep.Kills++
		h.score += h.reward(g.Pos)
	}
	clear(h.ghosts[len(alive):])
	h.ghosts = alive
}

// reward drops a heart with probability (max-health)/max and returns the
// points for the kill.
func (h *Horde) reward(at core.Vec2) int {
	hc := h.cfg.Horde
	if !hc.HeartsEnabled || h.player.MaxHealth() <= 0 {
		return hc.KillReward
	}
	if h.rng.Intn(h.player.MaxHealth()) >= h.player.Health() {
		h.hearts = append(h.hearts, NewHeart(at, h.player, h.cfg))
		return hc.DropReward
	}
	return hc.KillReward
}

func (h *Horde) updateHearts(rep *HordeReport) {
	left := h.hearts[:0]
	for _, ht := range h.hearts {
		if ht.Update() {
			rep.Pickups++
			continue
		}
		left = append(left, ht)
	}
	clear(h.hearts[len(left):])
	h.hearts = left
}

// tickSpawn accumulates delta and spawns one ghost when the interval for
// the current score has passed. The accumulator restarts from zero.
func (h *Horde) tickSpawn(delta float64) bool {
	h.elapsed += delta
	if h.elapsed < h.Interval() {
		return false
	}
	h.elapsed = 0
	h.Spawn()
	return true
}

// Spawn places a ghost on the spawn circle around the world center at a
// uniformly random angle.
func (h *Horde) Spawn() *Ghost {
	return h.SpawnAt(h.rng.Float64() * 2 * math.Pi)
}

// SpawnAt places a ghost on the spawn circle at angle radians.
func (h *Horde) SpawnAt(angle float64) *Ghost {
	cx, cy := h.cfg.World.Center()
	pos := core.V(cx, cy).Add(core.FromPolar(h.cfg.Horde.SpawnRadius, angle))
	g := NewGhost(pos, h.player, h.cfg)
	h.ghosts = append(h.ghosts, g)
	return g
}

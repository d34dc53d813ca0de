package dasher

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/dasher/internal/assets"
	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/highscore"
	"github.com/vovakirdan/dasher/internal/registry"
)

// Registered ruleset ids.
const (
	ID        = "dasher"
	ClassicID = "dasher_classic"
)

func init() {
	registry.Register(ID, "Hearts drop from kills, the horde speeds up with your score",
		func() registry.Game { return New() })
	registry.Register(ClassicID, "No hearts, wide ghost reach, one ghost every five seconds",
		func() registry.Game { return NewClassic() })
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// highScores holds one shared store per ruleset id.
var (
	highScoresMu sync.Mutex
	highScores   = map[string]highscore.Store{}
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetHighScoreStore sets where games of ruleset id keep their high score.
// The store is wrapped for use by concurrent sessions.
func SetHighScoreStore(id string, store highscore.Store) {
	highScoresMu.Lock()
	defer highScoresMu.Unlock()
	highScores[id] = highscore.NewSynced(store)
}

// HighScoreStore returns the store for ruleset id, keeping scores in memory
// when none was set.
func HighScoreStore(id string) highscore.Store {
	highScoresMu.Lock()
	defer highScoresMu.Unlock()
	s, ok := highScores[id]
	if !ok {
		s = highscore.NewSynced(&highscore.Memory{})
		highScores[id] = s
	}
	return s
}

// LoadConfig resolves the tuning for a ruleset using the CLI settings.
func LoadConfig(classic bool) (config.DasherConfig, error) {
	return LoadConfigWith(classic, difficultyPreset)
}

// LoadConfigWith resolves the tuning for a ruleset with an explicit preset.
func LoadConfigWith(classic bool, preset config.DifficultyPreset) (config.DasherConfig, error) {
	cfg, err := config.LoadDasher(configPath)
	if err != nil {
		return cfg, err
	}
	if classic {
		config.ApplyClassic(&cfg)
	}
	if preset != "" {
		config.ApplyDasherPreset(&cfg, preset)
	}
	return cfg, nil
}

// Game adapts a Session to the registry's fixed-tick game interface.
type Game struct {
	classic  bool
	preset   *config.DifficultyPreset // overrides the CLI preset when set
	runtime  core.RuntimeConfig
	session  *Session
	renderer *ScreenRenderer
	paused   bool
}

// New creates the current ruleset.
func New() *Game {
	return &Game{}
}

// NewClassic creates the earlier ruleset: flat contact radius, no heart
// drops and a constant spawn interval.
func NewClassic() *Game {
	return &Game{classic: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.classic {
		return ClassicID
	}
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "Dasher (Classic)"
	}
	return "Dasher"
}

// SetPreset picks the difficulty for this game alone, taking effect on the
// next Reset.
func (g *Game) SetPreset(p config.DifficultyPreset) {
	g.preset = &p
}

// Reset builds a fresh session. Missing sprite sheets or unusable tuning
// are construction errors.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	preset := difficultyPreset
	if g.preset != nil {
		preset = *g.preset
	}
	cfg, err := LoadConfigWith(g.classic, preset)
	if err != nil {
		return err
	}

	sheets, err := assets.Load(assets.DefaultRequirements(cfg.Animation.Frames))
	if err != nil {
		return err
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := NewSession(cfg, rand.New(rand.NewSource(seed)), HighScoreStore(g.ID()))
	if err != nil {
		return fmt.Errorf("dasher: cannot start session: %w", err)
	}

	g.runtime = runtime
	g.session = s
	g.renderer = NewScreenRenderer(sheets, cfg.World.Width, cfg.World.Height)
	g.paused = false
	return nil
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Stats returns the current run's totals.
func (g *Game) Stats() RunStats {
	if g.session == nil {
		return RunStats{}
	}
	return g.session.Stats()
}

// Step applies input and advances the session by in.Delta, or by one
// fixed tick when the frame carries no elapsed time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session

	if in.Has(core.ActionPause) && !s.Over() {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		s.Restart()
	}
	if g.paused {
		return core.StepResult{State: g.State(), Cues: cuesFor(s.DrainEvents())}
	}

	s.SetMovement(Movement{
		Left:  in.Has(core.ActionMoveLeft),
		Right: in.Has(core.ActionMoveRight),
		Up:    in.Has(core.ActionMoveUp),
		Down:  in.Has(core.ActionMoveDown),
	})
	if in.Has(core.ActionDashPress) {
		s.StartDash()
	}
	if in.Has(core.ActionDashRelease) {
		s.StopDash()
	}
	if in.Has(core.ActionDashToggle) {
		switch s.Player().State() {
		case Idle:
			s.StartDash()
		case Dashing:
			s.StopDash()
		}
	}

	delta := in.Delta
	if delta <= 0 {
		delta = g.runtime.TickDelta()
	}
	s.Update(delta)
	return core.StepResult{State: g.State(), Cues: cuesFor(s.DrainEvents())}
}

func cuesFor(events []Event) []core.Cue {
	if len(events) == 0 {
		return nil
	}
	cues := make([]core.Cue, 0, len(events))
	for _, e := range events {
		cues = append(cues, cueFor(e.Kind))
	}
	return cues
}

func cueFor(k EventKind) core.Cue {
	switch k {
	case EventHit:
		return core.CueHit
	case EventPickup:
		return core.CuePickup
	case EventMusicStart:
		return core.CueMusicStart
	case EventMusicStop:
		return core.CueMusicStop
	case EventDefeatStart:
		return core.CueDefeatStart
	case EventDefeatStop:
		return core.CueDefeatStop
	case EventGameOver:
		return core.CueGameOver
	case EventNewHighScore:
		return core.CueHighScore
	default:
		return core.CueNone
	}
}

// Render draws the session into dst.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.Render(g.session, dst)
	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		GameOver:  g.session.Over(),
		Paused:    g.paused,
	}
}

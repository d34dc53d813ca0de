// Package window runs Dasher in a desktop window with ebiten. Unlike a
// terminal it sees real key releases, so dashes follow the dash key exactly.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dasher/internal/assets"
	"github.com/vovakirdan/dasher/internal/audio"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/dasher"
	"github.com/vovakirdan/dasher/internal/platform/pixel"
	"github.com/vovakirdan/dasher/internal/storage"
)

var _ dasher.Renderer = (*Renderer)(nil)

// overlayOpacity is where the game-over fade settles.
const overlayOpacity = 0.85

// Options configures a window session. Store, Sound and Logger may be nil.
type Options struct {
	Game    *dasher.Game
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Sound   *audio.SoundManager
	Logger  *log.Logger
}

// Game adapts a Dasher game to ebiten.Game.
type Game struct {
	game     *dasher.Game
	runtime  core.RuntimeConfig
	renderer *Renderer
	store    *storage.Store
	sound    *audio.SoundManager
	logger   *log.Logger
	fade     pixel.Fade
	width    int
	height   int
}

// New resets the game and prepares the window renderer. A game whose
// assets cannot load cannot be shown, so any error here is fatal.
func New(opts Options) (*Game, error) {
	if opts.Game == nil {
		return nil, errors.New("window: no game")
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = ebiten.DefaultTPS
	}
	if err := opts.Game.Reset(opts.Runtime); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	cfg := opts.Game.Session().Config()
	sheets, err := assets.Load(assets.DefaultRequirements(cfg.Animation.Frames))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load sprites: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Game{
		game:     opts.Game,
		runtime:  opts.Runtime,
		renderer: NewRenderer(sheets, cfg.World.Width, cfg.World.Height),
		store:    opts.Store,
		sound:    opts.Sound,
		logger:   logger,
		width:    int(cfg.World.Width),
		height:   int(cfg.World.Height),
	}, nil
}

func readControls() pixel.Controls {
	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	just := func(f func(ebiten.Key) bool, keys ...ebiten.Key) bool {
		for _, k := range keys {
			if f(k) {
				return true
			}
		}
		return false
	}
	dashKeys := []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight, ebiten.KeySpace}

	return pixel.Controls{
		Up:       held(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:     held(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:     held(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:    held(ebiten.KeyD, ebiten.KeyArrowRight),
		DashDown: just(inpututil.IsKeyJustPressed, dashKeys...),
		DashUp:   just(inpututil.IsKeyJustReleased, dashKeys...) && !held(dashKeys...),
		Restart:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Pause:    inpututil.IsKeyJustPressed(ebiten.KeyP),
	}
}

// Update advances the game one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	res := g.game.Step(readControls().Frame())
	g.sound.HandleCues(res.Cues)
	for _, c := range res.Cues {
		g.handleCue(c, res.State)
	}
	g.fade.Update(g.runtime.TickDelta())
	return nil
}

func (g *Game) handleCue(c core.Cue, st core.GameState) {
	switch c {
	case core.CueGameOver:
		g.fade.Start(overlayOpacity)
		g.logger.Info("game over", "ruleset", g.game.ID(), "score", st.Score)
		g.recordRun(st)
	case core.CueHighScore:
		g.logger.Info("new high score", "ruleset", g.game.ID(), "score", st.Score)
		if err := g.game.Session().SaveErr(); err != nil {
			g.logger.Warn("could not save high score", "error", err)
		}
	case core.CueDefeatStop:
		g.fade.Stop()
	}
}

// recordRun stores the finished run in the history database.
func (g *Game) recordRun(st core.GameState) {
	if g.store == nil || st.Score <= 0 {
		return
	}
	stats := g.game.Stats()
	_, err := g.store.SaveRun(storage.Run{
		Ruleset:  g.game.ID(),
		Score:    st.Score,
		Kills:    stats.Kills,
		Duration: time.Duration(stats.Duration * float64(time.Second)),
	})
	if err != nil {
		g.logger.Warn("could not record run", "error", err)
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(g.game.Session(), screen, g.fade.Value())
	if g.game.State().Paused {
		g.renderer.Paused(screen)
	}
}

// Layout keeps the world's logical size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.runtime.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

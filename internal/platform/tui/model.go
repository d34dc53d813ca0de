package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dasher/internal/audio"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/dasher"
	"github.com/vovakirdan/dasher/internal/registry"
	"github.com/vovakirdan/dasher/internal/storage"
)

// statsReporter is implemented by games that track per-run totals.
type statsReporter interface {
	Stats() dasher.RunStats
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.SoundManager
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	holds      *HoldTracker
	keyMapper  *KeyMapper
	now        func() time.Time
	lastTick   time.Time // timestamp of the previous TickMsg
	gameState  core.GameState
	embedded   bool // run inside a SessionModel; Back returns to its menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been recorded for current game over
}

// NewModel resets game and wraps it in a Bubble Tea model. store and sound
// may be nil.
func NewModel(game registry.Game, store *storage.Store, sound *audio.SoundManager, cfg core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		holds:      NewHoldTracker(DefaultInitialHold, DefaultRepeatHold),
		keyMapper:  NewKeyMapper(),
		now:        time.Now,
		gameState:  game.State(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case isMovement(action):
		m.holds.Press(action, m.now())
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		if msg.String() == "esc" {
			m.inputFrame.Set(core.ActionPause)
		}
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize only resizes the screen; the world scales to fit.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// maxTickDelta caps the time one tick may simulate after a stall.
const maxTickDelta = 0.1

// handleTick steps the game by the time elapsed since the previous tick.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if !m.lastTick.IsZero() && !at.IsZero() {
		m.inputFrame.Delta = core.ClampF(at.Sub(m.lastTick).Seconds(), 0, maxTickDelta)
	}
	m.lastTick = at

	m.holds.Apply(&m.inputFrame, m.now())

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.sound.HandleCues(result.Cues)

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.recordRun()
		m.scoreSaved = true
		m.holds.Reset()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run in the history database.
func (m Model) recordRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	run := storage.Run{Ruleset: m.game.ID(), Score: m.gameState.Score}
	if sr, ok := m.game.(statsReporter); ok {
		st := sr.Stats()
		run.Kills = st.Kills
		run.Duration = time.Duration(st.Duration * float64(time.Second))
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(run)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".dasher", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting && !m.backToMenu
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, sound *audio.SoundManager, cfg core.RuntimeConfig) error {
	model, err := NewModel(game, store, sound, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}

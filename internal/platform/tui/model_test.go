package tui

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/dasher"
	"github.com/vovakirdan/dasher/internal/storage"
)

// stubGame records the frames it is stepped with.
type stubGame struct {
	state  core.GameState
	stats  dasher.RunStats
	frames []core.InputFrame
}

func (g *stubGame) ID() string                     { return "stub" }
func (g *stubGame) Title() string                  { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) error { return nil }
func (g *stubGame) Render(s *core.Screen)          { s.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState          { return g.state }
func (g *stubGame) Stats() dasher.RunStats         { return g.stats }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) last() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestModel(t *testing.T, g *stubGame, store *storage.Store) (Model, *fakeClock) {
	t.Helper()
	m, err := NewModel(g, store, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m.now = clock.now
	return m, clock
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelTickDelta(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g, nil)
	start := time.Unix(2000, 0)

	tests := []struct {
		name     string
		gap      time.Duration
		expected float64
	}{
		{"first tick uses the fixed step", 0, 0},
		{"wall clock gap", 100 * time.Millisecond, 0.1},
		{"short gap", 20 * time.Millisecond, 0.02},
		{"stall is capped", 3 * time.Second, maxTickDelta},
	}

	at := start
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			at = at.Add(tc.gap)
			m = update(m, TickMsg(at))
			if got := g.last().Delta; math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Delta = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestModelAdvancesByElapsedTime(t *testing.T) {
	game := dasher.New()
	m, err := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}

	start := time.Unix(3000, 0)
	m = update(m, TickMsg(start))
	update(m, TickMsg(start.Add(100*time.Millisecond)))

	expected := 1.0/60 + 0.1
	if got := game.Stats().Duration; math.Abs(got-expected) > 1e-9 {
		t.Errorf("session elapsed = %v, expected %v", got, expected)
	}
}

func TestModelHeldMovement(t *testing.T) {
	g := &stubGame{}
	m, clock := newTestModel(t, g, nil)

	m = update(m, runeKey("a"))
	m = update(m, TickMsg{})
	if !g.last().Has(core.ActionMoveLeft) {
		t.Fatal("tick after press should carry MoveLeft")
	}

	clock.t = clock.t.Add(200 * time.Millisecond)
	m = update(m, TickMsg{})
	if !g.last().Has(core.ActionMoveLeft) {
		t.Error("key should still be held inside the initial window")
	}

	clock.t = clock.t.Add(time.Second)
	update(m, TickMsg{})
	if g.last().Has(core.ActionMoveLeft) {
		t.Error("key should be released once presses stop")
	}
}

func TestModelEdgeActions(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g, nil)

	m = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(m, TickMsg{})
	if !g.last().Has(core.ActionDashToggle) {
		t.Error("space should toggle the dash")
	}

	m = update(m, TickMsg{})
	if g.last().Has(core.ActionDashToggle) {
		t.Error("edge actions should last one tick")
	}

	m = update(m, runeKey("r"))
	update(m, TickMsg{})
	if g.last().Has(core.ActionRestart) {
		t.Error("restart should be ignored while running")
	}
}

func TestModelRestartWhenOver(t *testing.T) {
	g := &stubGame{state: core.GameState{GameOver: true}}
	m, _ := newTestModel(t, g, nil)

	m = update(m, runeKey("r"))
	update(m, TickMsg{})
	if !g.last().Has(core.ActionRestart) {
		t.Error("restart should pass through after game over")
	}
}

func TestModelBack(t *testing.T) {
	tests := []struct {
		name     string
		state    core.GameState
		embedded bool
		back     bool
		quitting bool
		pause    bool
	}{
		{"esc while running pauses", core.GameState{}, false, false, false, true},
		{"back when paused leaves", core.GameState{Paused: true}, false, true, false, false},
		{"back when over in session", core.GameState{GameOver: true}, true, true, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &stubGame{state: tc.state}
			m, _ := newTestModel(t, g, nil)
			m.embedded = tc.embedded

			m = update(m, tea.KeyMsg{Type: tea.KeyEsc})
			if m.BackToMenu() != tc.back {
				t.Errorf("BackToMenu() = %v, expected %v", m.BackToMenu(), tc.back)
			}
			if m.IsQuitting() != tc.quitting {
				t.Errorf("IsQuitting() = %v, expected %v", m.IsQuitting(), tc.quitting)
			}
			if !tc.back {
				update(m, TickMsg{})
				if got := g.last().Has(core.ActionPause); got != tc.pause {
					t.Errorf("Has(Pause) = %v, expected %v", got, tc.pause)
				}
			}
		})
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, &stubGame{}, nil)
	next, cmd := m.Update(runeKey("q"))
	m = next.(Model)

	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("q should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &stubGame{stats: dasher.RunStats{Score: 30, Kills: 3, Duration: 2.5}}
	m, _ := newTestModel(t, g, store)

	m = update(m, TickMsg{})
	g.state = core.GameState{Score: 30, GameOver: true}
	m = update(m, TickMsg{})
	m = update(m, TickMsg{})

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, expected 1", len(runs))
	}
	if runs[0].Score != 30 || runs[0].Kills != 3 || runs[0].Duration != 2500*time.Millisecond {
		t.Errorf("run = %+v, expected score 30, 3 kills, 2.5s", runs[0])
	}

	// A restart followed by another game over records a second run.
	g.state = core.GameState{}
	m = update(m, TickMsg{})
	g.state = core.GameState{Score: 30, GameOver: true}
	update(m, TickMsg{})

	if runs, _ = store.TopRuns("stub", 10); len(runs) != 2 {
		t.Errorf("recorded %d runs after second round, expected 2", len(runs))
	}
}

func TestModelSkipsEmptyRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &stubGame{state: core.GameState{GameOver: true}}
	m, _ := newTestModel(t, g, store)
	update(m, TickMsg{})

	if runs, _ := store.TopRuns("stub", 10); len(runs) != 0 {
		t.Errorf("recorded %d runs for a zero score, expected 0", len(runs))
	}
}

func TestModelViewAndResize(t *testing.T) {
	m, _ := newTestModel(t, &stubGame{}, nil)
	m = update(m, tea.WindowSizeMsg{Width: 20, Height: 4})

	if m.screen.Width() != 20 || m.screen.Height() != 4 {
		t.Errorf("screen = %dx%d, expected 20x4", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("View() should contain the rendered game")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(0, 1, "cd")

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[1], "cd") {
		t.Errorf("RenderScreen() = %q", lines)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{80 * time.Second, "1:20"},
	}
	for _, tc := range tests {
		if got := formatDuration(tc.d); got != tc.expected {
			t.Errorf("formatDuration(%v) = %q, expected %q", tc.d, got, tc.expected)
		}
	}
}

func TestMenuLists(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := m.View()
	for _, title := range []string{"Dasher", "Dasher (Classic)"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu View() missing %q", title)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

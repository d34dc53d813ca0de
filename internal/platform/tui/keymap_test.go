package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dasher/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"w", runeKey("w"), core.ActionMoveUp, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionMoveUp, false},
		{"s", runeKey("s"), core.ActionMoveDown, false},
		{"a", runeKey("a"), core.ActionMoveLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDashToggle, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestHoldTrackerWindows(t *testing.T) {
	start := time.Unix(1000, 0)
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)

	h.Press(core.ActionMoveLeft, start)
	tests := []struct {
		name     string
		at       time.Duration
		expected bool
	}{
		{"right after press", 0, true},
		{"inside initial window", 450 * time.Millisecond, true},
		{"after initial window", 600 * time.Millisecond, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := h.Held(core.ActionMoveLeft, start.Add(tc.at)); got != tc.expected {
				t.Errorf("Held() at +%v = %v, expected %v", tc.at, got, tc.expected)
			}
		})
	}

	// A repeat inside the window switches to the short window.
	repeat := start.Add(400 * time.Millisecond)
	h.Press(core.ActionMoveLeft, repeat)
	if !h.Held(core.ActionMoveLeft, repeat.Add(90*time.Millisecond)) {
		t.Error("Held() inside repeat window = false, expected true")
	}
	if h.Held(core.ActionMoveLeft, repeat.Add(150*time.Millisecond)) {
		t.Error("Held() after repeat window = true, expected false")
	}
}

func TestHoldTrackerOppositeRelease(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHoldTracker(DefaultInitialHold, DefaultRepeatHold)

	h.Press(core.ActionMoveLeft, now)
	h.Press(core.ActionMoveUp, now)
	h.Press(core.ActionMoveRight, now)

	if h.Held(core.ActionMoveLeft, now) {
		t.Error("pressing right should release left")
	}
	if !h.Held(core.ActionMoveUp, now) || !h.Held(core.ActionMoveRight, now) {
		t.Error("up and right should both be held")
	}
}

func TestHoldTrackerApply(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHoldTracker(DefaultInitialHold, DefaultRepeatHold)
	h.Press(core.ActionMoveDown, now)

	frame := core.NewInputFrame()
	h.Apply(&frame, now.Add(100*time.Millisecond))
	if !frame.Has(core.ActionMoveDown) {
		t.Error("Apply() inside window should set MoveDown")
	}

	frame.Clear()
	h.Apply(&frame, now.Add(time.Second))
	if frame.Has(core.ActionMoveDown) {
		t.Error("Apply() after window should not set MoveDown")
	}
	if len(h.keys) != 0 {
		t.Errorf("expired keys kept: %v", h.keys)
	}

	h.Press(core.ActionMoveUp, now)
	h.Reset()
	if h.Held(core.ActionMoveUp, now) {
		t.Error("Reset() should release every key")
	}
}

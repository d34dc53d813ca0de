package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dasher/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionMoveUp, false
	case "s", "down":
		return core.ActionMoveDown, false
	case "a", "left":
		return core.ActionMoveLeft, false
	case "d", "right":
		return core.ActionMoveRight, false
	case " ", "shift+space":
		return core.ActionDashToggle, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// isMovement reports whether a is one of the four direction actions.
func isMovement(a core.Action) bool {
	switch a {
	case core.ActionMoveUp, core.ActionMoveDown, core.ActionMoveLeft, core.ActionMoveRight:
		return true
	}
	return false
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionMoveUp:
		return core.ActionMoveDown
	case core.ActionMoveDown:
		return core.ActionMoveUp
	case core.ActionMoveLeft:
		return core.ActionMoveRight
	case core.ActionMoveRight:
		return core.ActionMoveLeft
	}
	return core.ActionNone
}

// Hold windows for terminal key repeat. A fresh press counts as held long
// enough to cover the repeat delay; once repeats arrive the window shrinks
// to just over the repeat interval so a release stops the player quickly.
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// HoldTracker turns key presses into held state. Terminals report presses
// and auto-repeats but no releases, so a key is held until its presses stop
// arriving.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	keys    map[core.Action]hold
}

type hold struct {
	last      time.Time
	repeating bool
}

// NewHoldTracker creates a tracker with the given hold windows.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		keys:    make(map[core.Action]hold),
	}
}

func (h *HoldTracker) window(k hold) time.Duration {
	if k.repeating {
		return h.repeat
	}
	return h.initial
}

// Press records a press of a at now. Pressing a direction releases the
// opposite one.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	k, ok := h.keys[a]
	k.repeating = ok && now.Sub(k.last) <= h.window(k)
	k.last = now
	h.keys[a] = k
	delete(h.keys, opposite(a))
}

// Held reports whether a is still held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	k, ok := h.keys[a]
	return ok && now.Sub(k.last) <= h.window(k)
}

// Apply sets every held action on frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a := range h.keys {
		if h.Held(a, now) {
			frame.Set(a)
		} else {
			delete(h.keys, a)
		}
	}
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	clear(h.keys)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

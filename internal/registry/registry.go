// Package registry keeps the rulesets a frontend can offer. Rulesets
// register in init() so the CLI, menu and SSH server can enumerate them
// without importing each one by name.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/dasher/internal/core"
)

// Game is the interface every registered ruleset implements.
// Implementations hold pure simulation state and never touch a terminal,
// window or clock; frontends translate input into frames and call Step
// once per tick.
type Game interface {
	// ID is the stable key used on the command line and in score storage.
	ID() string

	// Title is the display name, e.g. "Dasher (Classic)".
	Title() string

	// Reset starts a fresh run with the given screen size, tick rate and
	// seed. An error means the ruleset cannot run (bad tuning, missing
	// sprite sheets).
	Reset(cfg core.RuntimeConfig) error

	// Step advances one fixed tick using the actions held this frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current run into dst.
	Render(dst *core.Screen)

	// State reports score, pause and game-over flags.
	State() core.GameState
}

// GameInfo describes a registered ruleset.
type GameInfo struct {
	ID      string
	Title   string
	Summary string
}

// Factory creates a fresh instance of a ruleset.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
	byID    = make(map[string]int)
)

// Register adds a ruleset. The title is taken from a throwaway instance.
// Rulesets are listed in registration order. Panics on a duplicate id.
func Register(id, summary string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[id]; exists {
		panic(fmt.Sprintf("registry: ruleset %q already registered", id))
	}

	byID[id] = len(entries)
	entries = append(entries, entry{
		info:    GameInfo{ID: id, Title: f().Title(), Summary: summary},
		factory: f,
	})
}

// List returns every registered ruleset in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, len(entries))
	for i, e := range entries {
		result[i] = e.info
	}
	return result
}

// Info looks up a ruleset's description.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return GameInfo{}, false
	}
	return entries[i].info, true
}

// Create instantiates the ruleset registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown ruleset %q", id)
	}
	return entries[i].factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}

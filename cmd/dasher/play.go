package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/platform/tui"
	"github.com/vovakirdan/dasher/internal/registry"
	"github.com/vovakirdan/dasher/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [ruleset]",
	Short: "Play in the terminal",
	Long: `Start playing the given ruleset (default: dasher) in the terminal.

Terminals report no key releases, so a direction stays held while the
terminal keeps repeating it, and Space toggles the dash on and off.

Controls:
  WASD/Arrows - Move
  Space       - Start / stop a dash
  P/Esc       - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Ghosts arrive 1.5x slower
  normal - The configured spawn schedule
  hard   - Ghosts arrive 1.33x faster
  fixed  - No speed-up, the opening interval for the whole run

Examples:
  dasher play
  dasher play dasher_classic
  dasher play --difficulty hard
  dasher play --config ./my-dasher.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	id, err := rulesetArg(args)
	if err != nil {
		fail(err)
	}

	game, err := registry.Create(id)
	if err != nil {
		fail(fmt.Errorf("creating game: %w", err))
	}

	store := openStore()
	if err := configureHighScores(store); err != nil {
		closeStore(store)
		fail(err)
	}
	sound := newSound()

	runErr := tui.Run(game, store, sound, runtimeConfig())

	// Release resources before a potential exit
	sound.Cleanup()
	closeStore(store)

	if runErr != nil {
		fail(fmt.Errorf("running game: %w", runErr))
	}
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/dasher"
	"github.com/vovakirdan/dasher/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window [ruleset]",
	Short: "Play in a desktop window",
	Long: `Start the given ruleset (default: dasher) in a desktop window.

A window sees real key releases: hold Shift or Space to dash and let go to
strike.

Controls:
  WASD/Arrows  - Move
  Shift/Space  - Dash while held
  P            - Pause
  R            - Restart (after game over)
  Esc          - Quit

Examples:
  dasher window
  dasher window dasher_classic --fps 120
  dasher window --highscore gdata`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, args []string) {
	id, err := rulesetArg(args)
	if err != nil {
		fail(err)
	}

	game := dasher.New()
	if id == dasher.ClassicID {
		game = dasher.NewClassic()
	}

	store := openStore()
	if err := configureHighScores(store); err != nil {
		closeStore(store)
		fail(err)
	}
	sound := newSound()

	cfg := runtimeConfig()
	runErr := window.Run(window.Options{
		Game:    game,
		Runtime: cfg,
		Store:   store,
		Sound:   sound,
		Logger:  logger,
	})

	sound.Cleanup()
	closeStore(store)

	if runErr != nil {
		logger.Error("window closed with error", "error", runErr)
		fail(runErr)
	}
}

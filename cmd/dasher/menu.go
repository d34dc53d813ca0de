package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/dasher"
	"github.com/vovakirdan/dasher/internal/platform/tui"
	"github.com/vovakirdan/dasher/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a ruleset from a menu",
	Long: `Start Dasher in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a ruleset and Tab for
the scoreboard. Without --difficulty, a difficulty picker follows the
ruleset. After a game ends, B returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select ruleset
  Tab          - Scoreboard
  Q            - Quit

Examples:
  dasher menu
  dasher menu --fps 30
  dasher menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if err := configureHighScores(store); err != nil {
		closeStore(store)
		fail(err)
	}
	sound := newSound()
	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// --difficulty skips the picker
		if flagDifficulty == "" {
			preset, pickErr := tui.RunDifficultySelector(menuResult.GameID, cfg)
			if pickErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
				continue
			}
			if preset == nil {
				continue // Back to menu
			}
			if g, ok := game.(*dasher.Game); ok {
				g.SetPreset(*preset)
			}
		}

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, sound, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Leaving mid-run must not leave the music playing over the menu
		sound.HandleCues([]core.Cue{core.CueMusicStop, core.CueDefeatStop})
	}

	sound.Cleanup()
	closeStore(store)
}

// dasher is a top-down arcade game: dash through the ghost horde before it
// reaches you. It runs in the terminal, in a desktop window, or over SSH.
//
// Usage:
//
//	dasher list              - List rulesets and their spawn schedules
//	dasher play [ruleset]    - Play in the terminal (default: dasher)
//	dasher menu              - Pick a ruleset interactively
//	dasher window [ruleset]  - Play in a desktop window
//	dasher serve             - Start SSH server for remote play
//	dasher scores [ruleset]  - Show the best recorded runs
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set run history path (default: ~/.dasher/runs.db)
//	--highscore <store>   - High score store: gdata (default), db, or a file path
//	--config <path>       - Custom tuning YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/dasher"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagHighScore  string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "dasher",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dasher",
	Short: "Dasher - dash through the ghost horde",
	Long: `Dasher is a top-down arcade game. Ghosts close in from every side;
dash through them to score, and don't let them touch you.

Available commands:
  list     - Show rulesets and spawn schedules
  play     - Play in the terminal
  menu     - Interactive ruleset picker
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  dasher play
  dasher play dasher_classic --difficulty hard
  dasher window --highscore ~/.dasher/highscore.txt
  dasher serve --ssh :2222
  dasher scores`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		dasher.SetConfigPath(flagConfig)
		dasher.SetDifficultyPreset(preset)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dasher/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", backendGData, "High score store: gdata, db, or a file path")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

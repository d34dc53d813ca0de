package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/dasher/internal/audio"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/dasher"
	"github.com/vovakirdan/dasher/internal/highscore"
	"github.com/vovakirdan/dasher/internal/registry"
	"github.com/vovakirdan/dasher/internal/storage"
)

// High score backends selectable with --highscore. Anything else is a path.
const (
	backendDB    = "db"
	backendGData = "gdata"
)

// openStore opens the run history. Failure is not fatal: the game still
// runs, it just forgets finished runs.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// rulesetSuffix is what sets a ruleset's high score apart from the main
// one's: "" for dasher, "_classic" for dasher_classic.
func rulesetSuffix(id string) string {
	return strings.TrimPrefix(id, dasher.ID)
}

// siblingPath returns path with suffix inserted before its extension.
func siblingPath(path, suffix string) string {
	if suffix == "" {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// fallbackHighScoreFile is used when the game data directory is unavailable.
const fallbackHighScoreFile = "~/.dasher/highscore.txt"

// configureHighScores points every registered ruleset at the backend named
// by --highscore. The default is the gdata text store; db keeps scores in
// the run database.
func configureHighScores(store *storage.Store) error {
	games := registry.List()

	switch flagHighScore {
	case backendDB:
		if store == nil {
			logger.Warn("high scores will not persist without the run database")
			return nil
		}
		for _, g := range games {
			dasher.SetHighScoreStore(g.ID, store.HighScoresFor(g.ID))
		}
		return nil

	case backendGData, "":
		m, err := highscore.OpenGData("dasher")
		if err != nil {
			logger.Warn("game data unavailable, using a file", "path", fallbackHighScoreFile, "error", err)
			return useHighScoreFiles(fallbackHighScoreFile)
		}
		for _, g := range games {
			key := highscore.DefaultItemKey + rulesetSuffix(g.ID)
			dasher.SetHighScoreStore(g.ID, highscore.NewGData(m, key))
		}
		return nil
	}

	return useHighScoreFiles(flagHighScore)
}

// useHighScoreFiles keeps each ruleset's score in a text file next to path.
func useHighScoreFiles(path string) error {
	for _, g := range registry.List() {
		s, err := highscore.NewFile(siblingPath(path, rulesetSuffix(g.ID)))
		if err != nil {
			return fmt.Errorf("high score file: %w", err)
		}
		dasher.SetHighScoreStore(g.ID, s)
	}
	return nil
}

// newSound starts audio output unless --mute is set. A missing device only
// costs the sound.
func newSound() *audio.SoundManager {
	if flagMute {
		return nil
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return nil
	}
	return sm
}

// runtimeConfig builds the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// rulesetArg returns the ruleset named in args, defaulting to dasher.
func rulesetArg(args []string) (string, error) {
	id := dasher.ID
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown ruleset %q (run 'dasher list' to see them)", id)
	}
	return id, nil
}

// portOf returns the port of a listen address like ":23234".
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

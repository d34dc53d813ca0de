package storage

import (
	"sync"

	"github.com/vovakirdan/dasher/internal/highscore"
)

// HighScores exposes one ruleset's best score as a high score store.
// Run history is recorded separately through SaveRun.
type HighScores struct {
	store   *Store
	ruleset string

	mu  sync.Mutex
	err error
}

var _ highscore.Store = (*HighScores)(nil)

// HighScoresFor returns the high score store for ruleset.
func (s *Store) HighScoresFor(ruleset string) *HighScores {
	return &HighScores{store: s, ruleset: ruleset}
}

// Load returns the best recorded score, or 0 when the query fails.
func (h *HighScores) Load() int {
	score, err := h.store.Best(h.ruleset)
	h.mu.Lock()
	h.err = err
	h.mu.Unlock()
	if err != nil {
		return 0
	}
	return score
}

// Save records score as the best unless a higher one is stored.
func (h *HighScores) Save(score int) error {
	return h.store.SaveBest(h.ruleset, score)
}

// Err returns the error from the last Load, if any.
func (h *HighScores) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

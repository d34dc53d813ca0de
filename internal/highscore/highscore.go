// Package highscore persists the single best score as bare decimal text.
// Missing or unreadable data always loads as zero; only writes report errors.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"
)

// Store loads and saves the high score.
type Store interface {
	Load() int
	Save(score int) error
}

// Backend moves the raw bytes. Read returns (nil, nil) or an fs.ErrNotExist
// error when nothing has been saved yet.
type Backend interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// TextStore encodes the score as a bare decimal integer on a Backend.
type TextStore struct {
	backend Backend
	lastErr error
}

// NewTextStore wraps a backend.
func NewTextStore(b Backend) *TextStore {
	return &TextStore{backend: b}
}

// Load returns the stored score, or 0 when it is missing, corrupt or negative.
// The read or parse failure, if any, is available from Err.
func (s *TextStore) Load() int {
	s.lastErr = nil
	data, err := s.backend.Read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.lastErr = fmt.Errorf("highscore: cannot read: %w", err)
		}
		return 0
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		s.lastErr = fmt.Errorf("highscore: corrupt value %q: %w", text, err)
		return 0
	}
	if n < 0 {
		s.lastErr = fmt.Errorf("highscore: negative value %d", n)
		return 0
	}
	return n
}

// Err returns why the last Load fell back to 0, or nil.
func (s *TextStore) Err() error {
	return s.lastErr
}

// Save writes the score.
func (s *TextStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("highscore: refusing to save negative score %d", score)
	}
	if err := s.backend.Write([]byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("highscore: cannot write: %w", err)
	}
	return nil
}

// Memory is an in-process Store, used when nothing should touch disk.
type Memory struct {
	Score int
}

// Load returns the kept score.
func (m *Memory) Load() int { return m.Score }

// Save keeps the score.
func (m *Memory) Save(score int) error {
	m.Score = score
	return nil
}

// Synced serializes access to a Store shared by concurrent sessions, such as
// one per SSH connection.
type Synced struct {
	mu    sync.Mutex
	store Store
}

// NewSynced wraps store.
func NewSynced(store Store) *Synced {
	return &Synced{store: store}
}

// Load reads the wrapped store.
func (s *Synced) Load() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load()
}

// Save writes score unless a concurrent session already stored a higher one.
func (s *Synced) Save(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.Load() >= score {
		return nil
	}
	return s.store.Save(score)
}

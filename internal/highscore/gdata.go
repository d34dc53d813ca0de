package highscore

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

// DefaultItemKey is the gdata item holding the main ruleset's score.
const DefaultItemKey = "highscore"

// GDataBackend keeps the score as an item in the per-user game data
// directory managed by gdata.
type GDataBackend struct {
	m   *gdata.Manager
	key string
}

// OpenGData opens the per-user game data directory for appName.
func OpenGData(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot open game data for %s: %w", appName, err)
	}
	return m, nil
}

// NewGData returns a TextStore on the item key of m.
func NewGData(m *gdata.Manager, key string) *TextStore {
	return NewTextStore(GDataBackend{m: m, key: key})
}

// Read loads the item. A missing item reads as nil.
func (g GDataBackend) Read() ([]byte, error) {
	return g.m.LoadItem(g.key)
}

// Write saves the item.
func (g GDataBackend) Write(data []byte) error {
	return g.m.SaveItem(g.key, data)
}

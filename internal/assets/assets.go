// Package assets holds the glyph sprite sheets the terminal renderer draws
// with. Sheets are embedded and validated on load; a frontend that cannot
// load them must not start.
package assets

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dasher/internal/core"
)

//go:embed sprites.yaml
var spritesYAML []byte

// Sheet names.
const (
	Player = "player"
	Ghost  = "ghost"
	Heart  = "heart"
)

// Glyph is one frame: equal-width lines of runes, top to bottom.
type Glyph []string

// Rotate returns g turned a quarter turn clockwise.
func (g Glyph) Rotate() Glyph {
	if len(g) == 0 {
		return g
	}
	src := make([][]rune, len(g))
	for i, l := range g {
		src[i] = []rune(l)
	}
	w, h := len(src[0]), len(src)
	out := make(Glyph, w)
	for i := range w {
		var sb strings.Builder
		for j := range h {
			sb.WriteRune(src[h-1-j][i])
		}
		out[i] = sb.String()
	}
	return out
}

// Sheet is a grid of glyph frames, rows by animation columns.
type Sheet struct {
	Name       string
	Color      core.Color
	HitColor   core.Color
	FadedColor core.Color
	W, H       int // glyph size in cells
	rows       [][]Glyph
}

// Rows returns the number of rows.
func (s *Sheet) Rows() int { return len(s.rows) }

// Cols returns the number of frames in the shortest row.
func (s *Sheet) Cols() int {
	if len(s.rows) == 0 {
		return 0
	}
	n := len(s.rows[0])
	for _, r := range s.rows[1:] {
		n = min(n, len(r))
	}
	return n
}

// Frame returns the glyph at row, col, wrapping out-of-range indexes.
func (s *Sheet) Frame(row, col int) Glyph {
	r := s.rows[mod(row, len(s.rows))]
	return r[mod(col, len(r))]
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

// Set is the full collection of sheets.
type Set struct {
	sheets map[string]*Sheet
}

// Sheet returns the named sheet, or nil.
func (s *Set) Sheet(name string) *Sheet {
	return s.sheets[name]
}

// Requirements states how many rows and columns each sheet must address.
type Requirements map[string][2]int

// DefaultRequirements returns the grid the animation clock can address:
// eight rows (four facings, idle and moving) of frames columns for player
// and ghost, and a single frame for the heart.
func DefaultRequirements(frames int) Requirements {
	return Requirements{
		Player: {8, frames},
		Ghost:  {8, frames},
		Heart:  {1, 1},
	}
}

type fileSheet struct {
	Color      string       `yaml:"color"`
	HitColor   string       `yaml:"hit_color"`
	FadedColor string       `yaml:"faded_color"`
	Rows       [][][]string `yaml:"rows"`
}

type file struct {
	Sheets map[string]fileSheet `yaml:"sheets"`
}

// Load parses the embedded sheets and checks them against req.
func Load(req Requirements) (*Set, error) {
	return Parse(spritesYAML, req)
}

// Parse decodes sheet YAML and checks it against req.
func Parse(data []byte, req Requirements) (*Set, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sprite sheets: %w", err)
	}

	set := &Set{sheets: make(map[string]*Sheet, len(f.Sheets))}
	for name, fs := range f.Sheets {
		sh, err := buildSheet(name, fs)
		if err != nil {
			return nil, err
		}
		set.sheets[name] = sh
	}

	for name, need := range req {
		sh := set.sheets[name]
		if sh == nil {
			return nil, fmt.Errorf("assets: missing sprite sheet %q", name)
		}
		if sh.Rows() < need[0] || sh.Cols() < need[1] {
			return nil, fmt.Errorf("assets: sheet %q is %dx%d, need at least %dx%d",
				name, sh.Rows(), sh.Cols(), need[0], need[1])
		}
	}
	return set, nil
}

func buildSheet(name string, fs fileSheet) (*Sheet, error) {
	color, err := parseColor(name, "color", fs.Color, core.ColorDefault)
	if err != nil {
		return nil, err
	}
	hit, err := parseColor(name, "hit_color", fs.HitColor, color)
	if err != nil {
		return nil, err
	}
	faded, err := parseColor(name, "faded_color", fs.FadedColor, core.ColorGray)
	if err != nil {
		return nil, err
	}

	sh := &Sheet{Name: name, Color: color, HitColor: hit, FadedColor: faded}
	if len(fs.Rows) == 0 {
		return nil, fmt.Errorf("assets: sheet %q has no rows", name)
	}
	for ri, row := range fs.Rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("assets: sheet %q row %d has no frames", name, ri)
		}
		glyphs := make([]Glyph, len(row))
		for ci, lines := range row {
			if err := sh.fit(lines); err != nil {
				return nil, fmt.Errorf("assets: sheet %q frame %d,%d: %w", name, ri, ci, err)
			}
			glyphs[ci] = Glyph(lines)
		}
		sh.rows = append(sh.rows, glyphs)
	}
	return sh, nil
}

// fit checks a frame against the sheet's glyph size, fixing the size from
// the first frame.
func (s *Sheet) fit(lines []string) error {
	if len(lines) == 0 {
		return fmt.Errorf("empty frame")
	}
	w := utf8.RuneCountInString(lines[0])
	for _, l := range lines[1:] {
		if utf8.RuneCountInString(l) != w {
			return fmt.Errorf("ragged lines")
		}
	}
	if s.W == 0 && s.H == 0 {
		s.W, s.H = w, len(lines)
		return nil
	}
	if w != s.W || len(lines) != s.H {
		return fmt.Errorf("frame is %dx%d, sheet is %dx%d", w, len(lines), s.W, s.H)
	}
	return nil
}

func parseColor(sheet, field, name string, fallback core.Color) (core.Color, error) {
	if name == "" {
		return fallback, nil
	}
	c, ok := core.ParseColor(name)
	if !ok {
		return 0, fmt.Errorf("assets: sheet %q has unknown %s %q", sheet, field, name)
	}
	return c, nil
}

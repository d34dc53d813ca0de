package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/dasher"
)

// difficultyOption is one row of the difficulty picker.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
	blurb  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyNormal, "Normal", "The configured spawn schedule"},
	{config.DifficultyEasy, "Easy", "Ghosts arrive 1.5x slower"},
	{config.DifficultyHard, "Hard", "Ghosts arrive 1.33x faster"},
	{config.DifficultyFixed, "Fixed", "The opening pace for the whole run"},
}

// DifficultyModel lets users choose a difficulty preset for a ruleset and
// previews the spawn schedule it produces.
type DifficultyModel struct {
	ruleset   string
	classic   bool
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a picker for the given ruleset id.
func NewDifficultyModel(ruleset string, width, height int) DifficultyModel {
	return DifficultyModel{
		ruleset:   ruleset,
		classic:   ruleset == dasher.ClassicID,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = difficultyOptions[m.cursor].preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the picker and the schedule under the cursor.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled("  D I F F I C U L T Y  ", menuTitleStyle, m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, opt.label, opt.blurb)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, line := range m.schedulePreview() {
		b.WriteString(centerStyled(line, menuHintStyle, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled("Enter: Select  |  Esc: Back  |  Q: Quit", menuHintStyle, m.width))

	return b.String()
}

// schedulePreview lists the spawn intervals of the highlighted preset.
func (m DifficultyModel) schedulePreview() []string {
	cfg, err := dasher.LoadConfigWith(m.classic, difficultyOptions[m.cursor].preset)
	if err != nil {
		return []string{fmt.Sprintf("config error: %v", err)}
	}
	steps := cfg.Horde.Steps()
	lines := make([]string, 0, len(steps))
	for _, s := range steps {
		lines = append(lines, fmt.Sprintf("from %4d points: a ghost every %.2fs", s.MinScore, s.Interval))
	}
	return lines
}

// Selected returns the chosen preset, or nil if still choosing.
func (m DifficultyModel) Selected() *config.DifficultyPreset {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector runs the picker for ruleset and returns the chosen
// preset, or nil when the user backed out or quit.
func RunDifficultySelector(ruleset string, cfg core.RuntimeConfig) (*config.DifficultyPreset, error) {
	p := tea.NewProgram(
		NewDifficultyModel(ruleset, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}

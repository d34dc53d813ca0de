package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/registry"
	"github.com/vovakirdan/dasher/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// centerText centers every line of text within width cells.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

func centerStyled(text string, style lipgloss.Style, width int) string {
	return centerText(style.Render(text), width)
}

// MenuItem is one ruleset row with its best recorded score.
type MenuItem struct {
	GameID  string
	Title   string
	Summary string
	Best    int
}

// menuItems lists the registered rulesets, with best scores when a run
// database is available.
func menuItems(store *storage.Store) []MenuItem {
	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, Summary: g.Summary}
		if store == nil {
			continue
		}
		if best, err := store.Best(g.ID); err == nil {
			items[i].Best = best
		}
	}
	return items
}

// menuOutcome is how the menu was left.
type menuOutcome int

const (
	menuOpen menuOutcome = iota
	menuPicked
	menuScores
	menuQuit
)

// MenuModel picks a ruleset or opens the scoreboard.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	outcome   menuOutcome
}

// NewMenuModel creates a menu sized to cfg. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     menuItems(store),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor, tracks the terminal size and leaves the menu on
// select, scoreboard or quit.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.items) > 0 {
				return m.leave(menuPicked)
			}
		case MenuActionScoreboard:
			return m.leave(menuScores)
		case MenuActionQuit:
			return m.leave(menuQuit)
		}
	}
	return m, nil
}

func (m MenuModel) leave(o menuOutcome) (tea.Model, tea.Cmd) {
	m.outcome = o
	return m, tea.Quit
}

// View renders the title, one row per ruleset and the key hints.
func (m MenuModel) View() string {
	if m.outcome == menuQuit {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		centerStyled("  D A S H E R  ", menuTitleStyle, w),
		"",
		centerText("Dash through the ghosts. Don't let them touch you.", w),
		"",
	}
	for i, item := range m.items {
		row := fmt.Sprintf("  %-18s best %d", item.Title, item.Best)
		if i == m.cursor {
			row = menuCursor.Render(fmt.Sprintf("> %-18s best %d", item.Title, item.Best))
		}
		lines = append(lines, centerText(row, w))
	}
	if len(m.items) > 0 {
		lines = append(lines, "", centerStyled(m.items[m.cursor].Summary, menuHintStyle, w))
	}
	lines = append(lines,
		"",
		centerStyled("WASD/Arrows: move  Space: dash on/off  P: pause", menuHintStyle, w),
		centerStyled("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", menuHintStyle, w),
	)
	return strings.Join(lines, "\n") + "\n"
}

// Selected returns the picked ruleset, or nil.
func (m MenuModel) Selected() *MenuItem {
	if m.outcome != menuPicked {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

// IsQuitting reports whether the user quit from the menu.
func (m MenuModel) IsQuitting() bool {
	return m.outcome == menuQuit
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.outcome == menuScores
}

// Config returns the runtime config, resized to the latest terminal size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult is what the standalone menu program ended with.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu in its own program.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.config}
	switch m.outcome {
	case menuPicked:
		res.GameID = m.items[m.cursor].GameID
	case menuScores:
		res.WantsScoreboard = true
	default:
		res.Quit = true
	}
	return res, nil
}

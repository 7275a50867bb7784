// Package ui is the terminal launcher: a small bubbletea menu that collects
// session settings before handing off to the raylib game window.
package ui

import (
	"fmt"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type AppConfig struct {
	Version string
	Seed    int64
	Columns int
}

// Launch is the outcome of the menu: either quit, or start the game with the
// chosen settings.
type Launch struct {
	Start   bool
	Seed    int64
	Columns int
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() (Launch, error) {
	m := newMenuModel(a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Launch{}, err
	}
	done, ok := final.(menuModel)
	if !ok {
		return Launch{}, fmt.Errorf("unexpected final model %T", final)
	}
	return done.launch, nil
}

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// --- Menu model ---

type menuItem int

const (
	itemStart menuItem = iota
	itemSeed
	itemColumns
	itemQuit
	menuItemCount
)

const (
	minColumns = 10
	maxColumns = 48
)

type menuModel struct {
	cfg AppConfig
	idx int

	seed    int64
	columns int

	launch Launch
	status string
}

func newMenuModel(cfg AppConfig) menuModel {
	return menuModel{
		cfg:     cfg,
		seed:    cfg.Seed,
		columns: cfg.Columns,
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.idx = (m.idx + int(menuItemCount) - 1) % int(menuItemCount)
			return m, nil
		case "down", "j":
			m.idx = (m.idx + 1) % int(menuItemCount)
			return m, nil
		case "left", "h":
			if menuItem(m.idx) == itemColumns && m.columns > minColumns {
				m.columns--
			}
			return m, nil
		case "right", "l":
			if menuItem(m.idx) == itemColumns && m.columns < maxColumns {
				m.columns++
			}
			return m, nil
		case "enter":
			switch menuItem(m.idx) {
			case itemStart:
				m.launch = Launch{Start: true, Seed: m.seed, Columns: m.columns}
				return m, tea.Quit
			case itemSeed:
				m.seed = rand.Int64()
				m.status = fmt.Sprintf("Seed set to %d.", m.seed)
				return m, nil
			case itemColumns:
				m.status = "Use left/right to adjust grid columns."
				return m, nil
			case itemQuit:
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m menuModel) View() string {
	title := brightGreen.Render("WORD LANTERN")
	ver := dimGreen.Render(fmt.Sprintf("v%s", m.cfg.Version))

	seedLabel := "random each session"
	if m.seed != 0 {
		seedLabel = fmt.Sprintf("%d", m.seed)
	}
	items := []string{
		"Start",
		fmt.Sprintf("Reroll seed   [%s]", seedLabel),
		fmt.Sprintf("Grid columns  [%d]", m.columns),
		"Quit",
	}

	out := ""
	out += title + "  " + ver + "\n"
	out += border.Render("----------------------------------------") + "\n\n"

	for i, it := range items {
		cursor := "  "
		line := green.Render(it)
		if i == m.idx {
			cursor = "> "
			line = brightGreen.Render(it)
		}
		out += cursor + line + "\n"
	}

	out += "\n" + border.Render("----------------------------------------") + "\n"
	out += dimGreen.Render("↑/↓ to move, ←/→ to adjust, Enter to select, q to quit") + "\n"
	out += dimGreen.Render("In game: hold the mouse over a word to capture it.") + "\n"
	if m.status != "" {
		out += "\n" + green.Render(m.status) + "\n"
	}
	return out
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retropix/internal/registry"
)

// menuKeyMap defines the key bindings for the scene picker.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

var menuKeys = menuKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "play"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	menuCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true)
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the scene picker menu.
type MenuModel struct {
	scenes   []registry.SceneInfo
	cursor   int
	help     help.Model
	selected string // scene ID chosen by the user, empty until selection
	quitting bool
}

// NewMenuModel creates a picker over all registered scenes.
func NewMenuModel() MenuModel {
	return MenuModel{
		scenes: registry.List(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd { return nil }

// Update moves the cursor and records the selection.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, menuKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, menuKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, menuKeys.Down):
			if m.cursor < len(m.scenes)-1 {
				m.cursor++
			}
		case key.Matches(msg, menuKeys.Select):
			if len(m.scenes) > 0 {
				m.selected = m.scenes[m.cursor].ID
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View renders the scene list with the short help line underneath.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(menuTitleStyle.Render("retropix scenes"))
	sb.WriteString("\n\n")

	if len(m.scenes) == 0 {
		sb.WriteString(menuDimStyle.Render("No scenes registered."))
		sb.WriteString("\n")
	}

	for i, s := range m.scenes {
		cursor := "  "
		line := fmt.Sprintf("%s  %s", s.ID, menuDimStyle.Render(s.Title))
		if i == m.cursor {
			cursor = menuCursorStyle.Render("> ")
			line = menuSelectedStyle.Render(s.ID) + "  " + menuDimStyle.Render(s.Title)
		}
		sb.WriteString(cursor)
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(menuKeys))
	return sb.String()
}

// RunMenu shows the scene picker and returns the chosen scene ID, or an
// empty string if the user backed out.
func RunMenu() (string, error) {
	p := tea.NewProgram(NewMenuModel())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return "", fmt.Errorf("tui: unexpected menu model type %T", final)
	}
	return m.selected, nil
}

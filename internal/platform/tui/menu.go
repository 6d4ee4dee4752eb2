package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tanks/internal/config"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuKeyMap defines the key bindings of the difficulty picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
	}
}

// MenuModel is the Bubble Tea model for picking a difficulty.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	selected config.Difficulty
	quitting bool
}

// NewMenuModel creates a picker with the cursor on initial.
func NewMenuModel(initial config.Difficulty, width, height int) MenuModel {
	cursor := 0
	if initial.Validate() == nil {
		cursor = int(initial - config.MinDifficulty)
	}
	return MenuModel{
		cursor: cursor,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	levels := int(config.MaxDifficulty - config.MinDifficulty + 1)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < levels-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selected = config.MinDifficulty + config.Difficulty(m.cursor)
		return m, tea.Quit
	default:
		// Digits pick directly.
		if d, err := config.ParseDifficulty(msg.String()); err == nil {
			m.selected = d
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T A N K S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a difficulty:", m.width))
	b.WriteString("\n\n")

	for d := config.MinDifficulty; d <= config.MaxDifficulty; d++ {
		line := fmt.Sprintf("  %d. %s", int(d), d)
		if int(d-config.MinDifficulty) == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("> %d. %s", int(d), d))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter or 1-3: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen difficulty, or 0 if none was chosen.
func (m MenuModel) Selected() config.Difficulty {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu shows the picker and returns the chosen difficulty.
// ok is false when the user quit without choosing.
func RunMenu(initial config.Difficulty) (d config.Difficulty, ok bool, err error) {
	p := tea.NewProgram(NewMenuModel(initial, 80, 24), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return 0, false, err
	}
	m, isMenu := final.(MenuModel)
	if !isMenu || m.IsQuitting() || m.Selected() == 0 {
		return 0, false, nil
	}
	return m.Selected(), true, nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/registry"
)

// MenuKeyMap defines the key bindings for the preset menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// PresetMenuModel lets users choose a board preset before playing.
type PresetMenuModel struct {
	presets  []registry.Preset
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	selected *registry.Preset
	quitting bool
}

// NewPresetMenuModel creates a menu over the registered presets.
// The cursor starts on the preset whose variant matches current, if any.
func NewPresetMenuModel(current string, width, height int) PresetMenuModel {
	m := PresetMenuModel{
		presets: registry.List(),
		width:   width,
		height:  height,
		keys:    DefaultMenuKeyMap(),
	}
	for i, p := range m.presets {
		if p.Rules.Variant() == current {
			m.cursor = i
			break
		}
	}
	return m
}

// Init initializes the model.
func (m PresetMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.presets) > 0 {
				p := m.presets[m.cursor]
				m.selected = &p
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the preset list.
func (m PresetMenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a board:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("  %-20s %dx%d  to %d", p.Title, p.Rules.Size, p.Rules.Size, p.Rules.WinTarget)
		if i == m.cursor {
			line = cursorStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("Enter: Play  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil if the user quit.
func (m PresetMenuModel) Selected() *registry.Preset {
	return m.selected
}

// centerText pads text so it sits centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunPresetMenu shows the preset menu and returns the choice.
// Returns nil when the user quits.
func RunPresetMenu(current string, width, height int) (*registry.Preset, error) {
	p := tea.NewProgram(
		NewPresetMenuModel(current, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(PresetMenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}

package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Badge    string // shown dimmed after the label, e.g. "✓ 80%"
	Shortcut string // a key that selects and activates the item
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu that skips disabled items.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	if next, ok := m.step(-1, 1); ok {
		m.Selected = next
	}
	return m
}

// step walks from i in direction dir to the next enabled item.
func (m Menu) step(i, dir int) (int, bool) {
	for i += dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i, true
		}
	}
	return 0, false
}

// activate runs the action of item i when it is enabled.
func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if i, ok := m.step(m.Selected, -1); ok {
			m.Selected = i
		}
		return m, nil
	case "down", "j":
		if i, ok := m.step(m.Selected, 1); ok {
			m.Selected = i
		}
		return m, nil
	case "enter":
		return m, m.activate(m.Selected)
	}

	for i, item := range m.Items {
		if item.Shortcut != "" && strings.EqualFold(item.Shortcut, key) && !item.Disabled {
			m.Selected = i
			return m, m.activate(i)
		}
	}
	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	badge := lipgloss.NewStyle().Foreground(theme.TextDim)
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString("    " + theme.Disabled.Render(item.Label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		if item.Badge != "" {
			b.WriteString("  " + badge.Render(item.Badge))
		}
		b.WriteString("\n")
	}
	return b.String()
}

package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ascendquiz/ascendquiz/internal/ui/theme"
)

// MenuItem is one entry in a Menu. Disabled items render but cannot be
// selected, which is how the home screen shows quiz pools that failed
// to load.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions driven by up/down/enter.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i := range items {
		if !items[i].Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Init returns nil.
func (m Menu) Init() tea.Cmd {
	return nil
}

// move walks the cursor in the given direction, skipping disabled
// items. The cursor stays put if no enabled item exists that way.
func (m *Menu) move(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// Update handles keyboard navigation and activation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			break
		}
		if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}

	return m, nil
}

// View renders the menu with a cursor marker on the selected item.
func (m Menu) View() string {
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	idle := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case i == m.Selected:
			b.WriteString(active.Render("  ▸ " + item.Label))
		case item.Disabled:
			b.WriteString(dim.Render("    " + item.Label))
		default:
			b.WriteString(idle.Render("    " + item.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

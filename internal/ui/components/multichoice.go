package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ascendquiz/ascendquiz/internal/ui/theme"
)

var optionLetters = [...]string{"A", "B", "C", "D", "E", "F"}

// MultiChoice presents one question with its answer options. Once an
// answer is submitted the component locks and recolors the options to
// reveal the correct one.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice builds a selector for a single question.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and records the submitted answer. After
// submission all input is ignored; the quiz screen owns what happens
// next.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Submitted {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.ChosenIndex = m.Selected
		m.Submitted = true
	}

	return m, nil
}

// optionStyle picks the color for option i given the current state.
func (m MultiChoice) optionStyle(i int) lipgloss.Style {
	if !m.Submitted {
		if i == m.Selected {
			return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return lipgloss.NewStyle().Foreground(theme.Text)
	}
	switch i {
	case m.CorrectIndex:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case m.ChosenIndex:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

// View renders the question text followed by its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Selected && !m.Submitted {
			cursor = "▸ "
		}
		letter := "?"
		if i < len(optionLetters) {
			letter = optionLetters[i]
		}
		b.WriteString(m.optionStyle(i).Render(cursor + letter + ")  " + opt))
		b.WriteByte('\n')
	}

	return b.String()
}

// IsCorrect reports whether a submitted answer matched the key.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}

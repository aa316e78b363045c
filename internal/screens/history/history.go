package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ascendquiz/ascendquiz/internal/router"
	"github.com/ascendquiz/ascendquiz/internal/screen"
	"github.com/ascendquiz/ascendquiz/internal/store"
	"github.com/ascendquiz/ascendquiz/internal/ui/layout"
	"github.com/ascendquiz/ascendquiz/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []*store.SessionRecord
	Err      error
}

// HistoryScreen lists the user's past quiz sessions.
type HistoryScreen struct {
	user     *store.User
	sessions store.SessionRepo

	records  []*store.SessionRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen.
func New(user *store.User, sessions store.SessionRepo) *HistoryScreen {
	return &HistoryScreen{user: user, sessions: sessions}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.sessions.History(context.Background(), s.user.ID)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: records}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Take one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		mastery := "       "
		if rec.MasteryAchieved {
			mastery = "MASTERY"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-24s  score %5.1f  %2d questions  %s",
			prefix,
			rec.CreatedAt.Format("Jan 02, 2006"),
			truncate(rec.DocumentName, 24),
			rec.FinalScore,
			rec.QuestionsAnswered,
			mastery)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		} else if rec.MasteryAchieved {
			style = style.Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

func (s *HistoryScreen) Username() string {
	return s.user.Username
}

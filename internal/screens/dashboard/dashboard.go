package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ascendquiz/ascendquiz/internal/router"
	"github.com/ascendquiz/ascendquiz/internal/screen"
	"github.com/ascendquiz/ascendquiz/internal/store"
	"github.com/ascendquiz/ascendquiz/internal/ui/components"
	"github.com/ascendquiz/ascendquiz/internal/ui/layout"
	"github.com/ascendquiz/ascendquiz/internal/ui/theme"
)

// Weak-topic cutoffs, matching the stats report in cmd.
const (
	weakAccuracyThreshold = 60.0
	weakMinAttempts       = 2
	recentLimit           = 5
)

type dashboardLoadedMsg struct {
	Stats  *store.OverallStats
	Topics []*store.TopicStat
	Weak   []*store.TopicStat
	Recent []*store.SessionRecord
	Err    error
}

// DashboardScreen shows the user's aggregate performance: overall
// numbers, weak topics, and recent sessions.
type DashboardScreen struct {
	user     *store.User
	sessions store.SessionRepo
	topics   store.TopicStatRepo

	stats  *store.OverallStats
	all    []*store.TopicStat
	weak   []*store.TopicStat
	recent []*store.SessionRecord
	loaded bool
	errMsg string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen.
func New(user *store.User, sessions store.SessionRepo, topics store.TopicStatRepo) *DashboardScreen {
	return &DashboardScreen{user: user, sessions: sessions, topics: topics}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		stats, err := s.sessions.Overall(ctx, s.user.ID)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}
		all, err := s.topics.ByUser(ctx, s.user.ID)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}
		weak, err := s.topics.Weak(ctx, s.user.ID, weakAccuracyThreshold, weakMinAttempts)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}
		recent, err := s.sessions.Recent(ctx, s.user.ID, recentLimit)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}

		return dashboardLoadedMsg{Stats: stats, Topics: all, Weak: weak, Recent: recent}
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
			s.all = msg.Topics
			s.weak = msg.Weak
			s.recent = msg.Recent
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading dashboard...")
	}
	if s.stats == nil || s.stats.TotalSessions == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Take one to see your stats!")
	}

	var b strings.Builder
	center := func(line string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 56)))
	section := func(name string) {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(name))
		center(divider)
	}

	b.WriteString("\n")
	statsLine := fmt.Sprintf("Quizzes: %d     Mastered: %d     Avg score: %.1f     Questions: %d",
		s.stats.TotalSessions, s.stats.MasteredSessions, s.stats.AverageScore, s.stats.TotalQuestions)
	center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(statsLine))

	section("Topics")
	for _, t := range s.all {
		bar := components.NewProgressBar(
			fmt.Sprintf("%-20s", t.Topic),
			t.Accuracy/100.0,
			true,
			min(width-16, 56),
		)
		center(bar.View())
	}

	if len(s.weak) > 0 {
		section("Needs work")
		for _, t := range s.weak {
			line := fmt.Sprintf("%-20s %.0f%% over %d attempts", t.Topic, t.Accuracy, t.Attempts)
			center(lipgloss.NewStyle().Foreground(theme.Error).Render(line))
		}
	}

	if len(s.recent) > 0 {
		section("Recent quizzes")
		for _, rec := range s.recent {
			mark := "·"
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if rec.MasteryAchieved {
				mark = "★"
				style = style.Foreground(theme.Success)
			}
			line := fmt.Sprintf("%s %s  %s  score %.0f  (%d questions)",
				mark,
				rec.CreatedAt.Format("Jan 02"),
				rec.DocumentName,
				rec.FinalScore,
				rec.QuestionsAnswered)
			center(style.Render(line))
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (s *DashboardScreen) Username() string {
	return s.user.Username
}

package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ascendquiz/ascendquiz/internal/pool"
	"github.com/ascendquiz/ascendquiz/internal/router"
	"github.com/ascendquiz/ascendquiz/internal/screen"
	"github.com/ascendquiz/ascendquiz/internal/screens/dashboard"
	"github.com/ascendquiz/ascendquiz/internal/screens/history"
	"github.com/ascendquiz/ascendquiz/internal/screens/quiz"
	"github.com/ascendquiz/ascendquiz/internal/store"
	"github.com/ascendquiz/ascendquiz/internal/ui/components"
	"github.com/ascendquiz/ascendquiz/internal/ui/theme"
)

// PoolSource is a quiz the user can start from the menu. Build runs
// when the quiz is selected, so expensive sources stay lazy.
type PoolSource struct {
	Label        string
	DocumentName string
	Build        func() (*pool.Pool, error)
}

// statsLoadedMsg delivers the greeting-line numbers.
type statsLoadedMsg struct {
	Stats *store.OverallStats
}

// HomeScreen is the main menu after login.
type HomeScreen struct {
	user     *store.User
	sessions store.SessionRepo
	menu     components.Menu
	stats    *store.OverallStats
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen for the logged-in user.
func New(user *store.User, sources []PoolSource, sessions store.SessionRepo, topics store.TopicStatRepo) *HomeScreen {
	var items []components.MenuItem

	for _, src := range sources {
		src := src
		items = append(items, components.MenuItem{
			Label: "TAKE QUIZ: " + strings.ToUpper(src.Label),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quiz.New(user, src.DocumentName, src.Build, sessions, topics),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "DASHBOARD",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: dashboard.New(user, sessions, topics)}
				}
			},
		},
		components.MenuItem{
			Label: "HISTORY",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(user, sessions)}
				}
			},
		},
		components.MenuItem{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return &HomeScreen{
		user:     user,
		sessions: sessions,
		menu:     components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		stats, err := h.sessions.Overall(context.Background(), h.user.ID)
		if err != nil {
			return statsLoadedMsg{}
		}
		return statsLoadedMsg{Stats: stats}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		h.stats = m.Stats
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	greeting := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Welcome back, %s!", h.user.Username))
	sections = append(sections, greeting)

	if h.stats != nil && h.stats.TotalSessions > 0 {
		line := fmt.Sprintf("%d quizzes taken   %d mastered   average score %.0f",
			h.stats.TotalSessions, h.stats.MasteredSessions, h.stats.AverageScore)
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(line))
	}

	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Username() string {
	return h.user.Username
}

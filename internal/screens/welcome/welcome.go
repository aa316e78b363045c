package welcome

import (
	"context"
	"errors"
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

// loginDoneMsg is sent when the user lookup/create completes.
type loginDoneMsg struct {
	User *store.User
	Err  error
}

// WelcomeScreen asks for a username and logs in, creating the account
// on first use.
type WelcomeScreen struct {
	users       store.UserRepo
	homeFactory func(user *store.User) screen.Screen
	input       components.TextInput
	pending     bool
	errMsg      string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced
// by homeFactory after login.
func New(users store.UserRepo, homeFactory func(user *store.User) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		users:       users,
		homeFactory: homeFactory,
		input:       components.NewTextInput("Enter your name...", 24),
	}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Log in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		w.pending = false
		if msg.Err != nil {
			w.errMsg = msg.Err.Error()
			return w, nil
		}
		home := w.homeFactory(msg.User)
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: home}
		}

	case tea.KeyMsg:
		if msg.String() == "enter" && !w.pending {
			username := strings.TrimSpace(w.input.Value())
			if username == "" {
				w.errMsg = "Please enter a name"
				return w, nil
			}
			w.errMsg = ""
			w.pending = true
			return w, w.login(username)
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

// login looks up the username, creating the account if it is new.
func (w *WelcomeScreen) login(username string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		u, err := w.users.GetByUsername(ctx, username)
		if err == nil {
			return loginDoneMsg{User: u}
		}
		if !errors.Is(err, store.ErrUserNotFound) {
			return loginDoneMsg{Err: err}
		}

		u, err = w.users.Create(ctx, username)
		if err != nil {
			return loginDoneMsg{Err: err}
		}
		return loginDoneMsg{User: u}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Adaptive quizzes that find your level")
	sections = append(sections, tagline)
	sections = append(sections, "")

	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Who's studying today?")
	sections = append(sections, label)
	sections = append(sections, "")
	sections = append(sections, w.input.View())

	if w.pending {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Logging in..."))
	}
	if w.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

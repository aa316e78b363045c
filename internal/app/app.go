package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ascendquiz/ascendquiz/internal/router"
	"github.com/ascendquiz/ascendquiz/internal/screen"
	"github.com/ascendquiz/ascendquiz/internal/screens/home"
	"github.com/ascendquiz/ascendquiz/internal/screens/welcome"
	"github.com/ascendquiz/ascendquiz/internal/store"
	"github.com/ascendquiz/ascendquiz/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Store *store.Store

	// Sources are the quizzes offered on the home menu (demo pool,
	// generated pools, pool files).
	Sources []home.PoolSource
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	users := opts.Store.Users()
	sessions := opts.Store.Sessions()
	topics := opts.Store.TopicStats()

	welcomeScreen := welcome.New(users, func(user *store.User) screen.Screen {
		return home.New(user, opts.Sources, sessions, topics)
	})

	return AppModel{
		router: router.New(welcomeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	username := ""
	if active != nil {
		title = active.Title()
		if up, ok := active.(screen.UserProvider); ok {
			username = up.Username()
		}
	}

	header := layout.RenderHeader(title, username, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

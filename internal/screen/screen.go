package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ascendquiz/ascendquiz/internal/ui/layout"
)

// Screen is one full-terminal view managed by the router. Screens are
// value-updated in the Bubble Tea style: Update returns the screen to
// keep on the stack.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles one message.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content region between header and footer.
	View(width, height int) string

	// Title is shown centered in the header bar.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// UserProvider is an optional interface for screens that know the
// logged-in user, so the header can show who is studying.
type UserProvider interface {
	Username() string
}

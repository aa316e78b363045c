// Package layout renders the chrome shared by all screens: the header
// bar, the key-hint footer, and the frame that stacks them around the
// content.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ascendquiz/ascendquiz/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size
// the screens are designed for.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// barStyle is the boxed bar shared by the header and footer.
func barStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader draws the top bar: app name on the left, the screen
// title centered, and the active username on the right.
func RenderHeader(title, username string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  AscendQuiz")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	right := ""
	if username != "" {
		right = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("⬡ %s", username))
	}

	inner := width - 4
	if inner < 0 {
		inner = 0
	}

	// Center the title against the full bar, then pad the remainder.
	leftGap := (inner-lipgloss.Width(center))/2 - lipgloss.Width(left)
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := inner - lipgloss.Width(left) - leftGap - lipgloss.Width(center) - lipgloss.Width(right)
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return barStyle(width).Render(content)
}

// RenderFooter draws the bottom bar listing the screen's key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return barStyle(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content, and footer to fill the given
// height, stretching the content region to whatever is left over.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}

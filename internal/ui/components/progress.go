package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ascendquiz/ascendquiz/internal/ui/theme"
)

// ProgressBar renders a horizontal fill bar, used for the mastery
// score during a quiz and per-topic accuracy on the dashboard.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0..1
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a progress bar sized to the given total width
// (label and percentage readout included).
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// View renders the bar. The track shrinks to fit whatever width is
// left after the label and percentage, with a floor of 4 cells.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	reserved := lipgloss.Width(b.String())
	if p.ShowPercent {
		reserved += 6 // " 100%"
	}
	track := p.Width - reserved
	if track < 4 {
		track = 4
	}

	filled := clampInt(int(float64(track)*p.Percent), 0, track)

	b.WriteString(lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", track-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100))))
	}

	return b.String()
}

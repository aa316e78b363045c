package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ascendquiz/ascendquiz/internal/ui/components"
	"github.com/ascendquiz/ascendquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.controller == nil {
		return renderLoading(width, height)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.showingFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderStatusBar(width))
	b.WriteString("\n\n")

	q := s.current

	tierBadge := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("[Tier %d · %s]", q.Tier, q.Tier.Label()))
	topicTag := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(q.Topic)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tierBadge+"  "+topicTag))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	b.WriteString("\n")

	return b.String()
}

func (s *QuizScreen) renderFeedback(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderStatusBar(width))
	b.WriteString("\n\n")

	ev := s.lastEval

	// Options with correct/incorrect coloring.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	b.WriteString("\n")

	var verdict string
	if ev.Correct {
		verdict = lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("✓ Correct!")
	} else {
		correct := ""
		if ev.CorrectIndex >= 0 && ev.CorrectIndex < len(s.current.Options) {
			correct = s.current.Options[ev.CorrectIndex]
		}
		verdict = lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render(fmt.Sprintf("✗ Not quite. The answer was: %s", correct))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
	b.WriteString("\n\n")

	if ev.Explanation != "" {
		expl := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-8, 72)).
			Render(ev.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expl))
		b.WriteString("\n\n")
	}

	if s.finished != nil {
		var banner string
		if s.finished.MasteryAchieved {
			banner = lipgloss.NewStyle().
				Foreground(theme.Success).
				Bold(true).
				Render("Mastery reached! Press any key for your results.")
		} else {
			banner = lipgloss.NewStyle().
				Foreground(theme.Accent).
				Render("Question pool exhausted. Press any key for your results.")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, banner))
		b.WriteString("\n")
	} else {
		next := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(fmt.Sprintf("Next up: tier %d", ev.NewTier))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, next))
		b.WriteString("\n")
	}

	return b.String()
}

// renderStatusBar shows progress through the session: questions
// answered, current target tier, and the mastery score bar.
func (s *QuizScreen) renderStatusBar(width int) string {
	answered := len(s.controller.History())
	left := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Question %d", answered+1))

	bar := components.NewProgressBar(
		"Mastery",
		s.controller.Score()/100.0,
		true,
		min(width/2, 48),
	)

	return left + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View())
}

func renderLoading(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Preparing your quiz..."))
}

func renderError(width, height int, msg string) string {
	content := lipgloss.NewStyle().
		Foreground(theme.Error).
		Render("Something went wrong:\n\n"+msg) +
		"\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to go back")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderQuitConfirm(width, height int) string {
	content := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this quiz?") +
		"\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Progress will not be saved.  (y/n)")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

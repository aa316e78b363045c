package summary

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ascendquiz/ascendquiz/internal/router"
	"github.com/ascendquiz/ascendquiz/internal/screen"
	sess "github.com/ascendquiz/ascendquiz/internal/session"
	"github.com/ascendquiz/ascendquiz/internal/ui/layout"
	"github.com/ascendquiz/ascendquiz/internal/ui/theme"
)

// SummaryScreen displays the result of a finished quiz.
type SummaryScreen struct {
	snap       sess.Snapshot
	persistErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. persistErr, when non-nil, is surfaced
// as a warning that the result wasn't recorded.
func New(snap sess.Snapshot, persistErr error) *SummaryScreen {
	return &SummaryScreen{snap: snap, persistErr: persistErr}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder
	center := func(line string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if s.snap.MasteryAchieved {
		center(lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("🏆 MASTERY ACHIEVED"))
	} else {
		center(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("Quiz complete"))
	}
	b.WriteString("\n")

	center(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Final score: %.1f / 100", s.snap.FinalScore)))
	center(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d questions answered · %s", s.snap.QuestionsAnswered, reasonText(s.snap.Reason))))
	b.WriteString("\n")

	// Topic breakdown.
	if len(s.snap.TopicBreakdown) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 52)))
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Topics"))
		center(divider)
		b.WriteString("\n")

		topics := make([]string, 0, len(s.snap.TopicBreakdown))
		for t := range s.snap.TopicBreakdown {
			topics = append(topics, t)
		}
		sort.Strings(topics)

		for _, t := range topics {
			tally := s.snap.TopicBreakdown[t]
			line := fmt.Sprintf("%-24s %d/%d correct", t, tally.Correct, tally.Attempts)
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if tally.Correct == tally.Attempts {
				style = style.Foreground(theme.Success)
			} else if tally.Correct == 0 {
				style = style.Foreground(theme.Error)
			}
			center(style.Render(line))
		}
	}

	if s.persistErr != nil {
		b.WriteString("\n")
		center(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("Warning: result could not be saved: " + s.persistErr.Error()))
	}

	return b.String()
}

func reasonText(r sess.FinishReason) string {
	switch r {
	case sess.FinishHighTierAccuracy:
		return "mastered the hardest tiers"
	case sess.FinishScore:
		return "mastery score reached"
	case sess.FinishExhausted:
		return "ran out of questions"
	default:
		return string(r)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

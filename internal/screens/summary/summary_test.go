package summary

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ascendquiz/ascendquiz/internal/session"
)

func testSnapshot() session.Snapshot {
	return session.Snapshot{
		SessionID:         "test-session",
		FinalScore:        82.5,
		MasteryAchieved:   true,
		Reason:            session.FinishScore,
		QuestionsAnswered: 9,
		TopicBreakdown: map[string]session.TopicTally{
			"Photosynthesis": {Attempts: 5, Correct: 5},
			"Cell Division":  {Attempts: 4, Correct: 2},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSnapshot(), nil)
	if s.Title() != "Quiz Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSnapshot(), nil)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "MASTERY ACHIEVED") {
		t.Error("expected mastery banner for a mastered session")
	}
	if !strings.Contains(view, "82.5") {
		t.Error("expected final score in view")
	}
	if !strings.Contains(view, "Photosynthesis") {
		t.Error("expected topic breakdown in view")
	}
}

func TestSummaryScreen_NonMastery(t *testing.T) {
	snap := testSnapshot()
	snap.MasteryAchieved = false
	snap.Reason = session.FinishExhausted

	s := New(snap, nil)
	view := s.View(80, 24)
	if strings.Contains(view, "MASTERY ACHIEVED") {
		t.Error("did not expect mastery banner")
	}
	if !strings.Contains(view, "ran out of questions") {
		t.Error("expected exhausted reason text")
	}
}

func TestSummaryScreen_PersistWarning(t *testing.T) {
	s := New(testSnapshot(), errors.New("disk full"))
	view := s.View(80, 24)
	if !strings.Contains(view, "could not be saved") {
		t.Error("expected persist warning in view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSnapshot(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSnapshot(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSnapshot(), nil)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}

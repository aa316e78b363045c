package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ascendquiz/ascendquiz/internal/pool"
	"github.com/ascendquiz/ascendquiz/internal/screen"
	"github.com/ascendquiz/ascendquiz/internal/store"
)

// mockSessionRepo implements store.SessionRepo for testing.
type mockSessionRepo struct {
	saved []store.SessionData
}

func (m *mockSessionRepo) Save(_ context.Context, data store.SessionData) error {
	m.saved = append(m.saved, data)
	return nil
}
func (m *mockSessionRepo) History(_ context.Context, _ int) ([]*store.SessionRecord, error) {
	return nil, nil
}
func (m *mockSessionRepo) Recent(_ context.Context, _, _ int) ([]*store.SessionRecord, error) {
	return nil, nil
}
func (m *mockSessionRepo) Overall(_ context.Context, _ int) (*store.OverallStats, error) {
	return &store.OverallStats{}, nil
}

// mockTopicRepo implements store.TopicStatRepo for testing.
type mockTopicRepo struct {
	recorded int
}

func (m *mockTopicRepo) Record(_ context.Context, _ int, _ string, _ bool) error {
	m.recorded++
	return nil
}
func (m *mockTopicRepo) ByUser(_ context.Context, _ int) ([]*store.TopicStat, error) {
	return nil, nil
}
func (m *mockTopicRepo) Weak(_ context.Context, _ int, _ float64, _ int) ([]*store.TopicStat, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []pool.Question {
	qs := make([]pool.Question, 0, 8)
	for i, predicted := range []int{85, 80, 72, 68, 55, 45, 35, 25} {
		qs = append(qs, pool.Question{
			ID:               string(rune('a' + i)),
			Text:             "Question " + string(rune('A'+i)),
			Topic:            "General",
			PredictedCorrect: predicted,
			Tier:             pool.TierFromPredicted(predicted),
			Options:          []string{"one", "two", "three", "four"},
			CorrectIndex:     0,
			Explanation:      "because",
		})
	}
	return qs
}

func testQuizScreen(t *testing.T) (*QuizScreen, *mockSessionRepo, *mockTopicRepo) {
	t.Helper()

	p, err := pool.New(testQuestions())
	if err != nil {
		t.Fatalf("pool.New: %v", err)
	}

	sessions := &mockSessionRepo{}
	topics := &mockTopicRepo{}
	user := &store.User{ID: 1, Username: "tester"}

	s := New(user, "Test Doc", func() (*pool.Pool, error) { return p, nil }, sessions, topics)

	// Run the async Init inline.
	msg := s.Init()()
	scr, _ := s.Update(msg)
	return scr.(*QuizScreen), sessions, topics
}

func TestQuizScreen_Title(t *testing.T) {
	s, _, _ := testQuizScreen(t)
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestQuizScreen_InitPresentsQuestion(t *testing.T) {
	s, _, _ := testQuizScreen(t)
	if s.controller == nil {
		t.Fatal("expected controller after init")
	}
	if s.current.ID == "" {
		t.Error("expected a current question after init")
	}
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty question view")
	}
}

func TestQuizScreen_PoolError(t *testing.T) {
	sessions := &mockSessionRepo{}
	topics := &mockTopicRepo{}
	user := &store.User{ID: 1, Username: "tester"}

	s := New(user, "Broken", func() (*pool.Pool, error) { return nil, pool.ErrEmptyPool }, sessions, topics)
	msg := s.Init()()
	scr, _ := s.Update(msg)
	qs := scr.(*QuizScreen)

	if qs.errMsg == "" {
		t.Error("expected error message for failed pool build")
	}
	if qs.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}
}

func TestQuizScreen_AnswerShowsFeedback(t *testing.T) {
	s, _, _ := testQuizScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	qs := scr.(*QuizScreen)

	if !qs.showingFeedback {
		t.Error("expected feedback after answering")
	}
	if !qs.lastEval.Correct {
		t.Error("expected option 1 to be the correct answer")
	}
}

func TestQuizScreen_FeedbackDismissAdvances(t *testing.T) {
	s, _, _ := testQuizScreen(t)
	first := s.current.ID

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(keyPress(' '))
	qs := scr.(*QuizScreen)

	if qs.showingFeedback {
		t.Error("expected feedback dismissed")
	}
	if qs.current.ID == first {
		t.Error("expected a new question after dismissing feedback")
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testQuizScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	qs := scr.(*QuizScreen)
	if !qs.showingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = qs.Update(keyPress('n'))
	qs = scr.(*QuizScreen)
	if qs.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestQuizScreen_QuitConfirm_Yes(t *testing.T) {
	s, _, _ := testQuizScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a pop command after quit confirmation")
	}
}

func TestQuizScreen_SessionEndPersists(t *testing.T) {
	s, sessions, topics := testQuizScreen(t)

	// Answer correctly until the controller finishes.
	var scr screen.Screen = s
	qs := s
	for i := 0; i < 20 && qs.finished == nil; i++ {
		scr, _ = qs.Update(keyPress('1'))
		qs = scr.(*QuizScreen)
		if qs.finished != nil {
			break
		}
		scr, _ = qs.Update(keyPress(' '))
		qs = scr.(*QuizScreen)
	}
	if qs.finished == nil {
		t.Fatal("expected session to finish on a streak of correct answers")
	}

	// Dismissing the final feedback triggers the persist command.
	scr, cmd := qs.Update(keyPress(' '))
	qs = scr.(*QuizScreen)
	if cmd == nil {
		t.Fatal("expected persist command after final feedback")
	}
	msg := cmd()
	if _, ok := msg.(persistDoneMsg); !ok {
		t.Fatalf("expected persistDoneMsg, got %T", msg)
	}

	if len(sessions.saved) != 1 {
		t.Fatalf("expected 1 saved session, got %d", len(sessions.saved))
	}
	saved := sessions.saved[0]
	if saved.DocumentName != "Test Doc" {
		t.Errorf("DocumentName = %q, want %q", saved.DocumentName, "Test Doc")
	}
	if !saved.MasteryAchieved {
		t.Error("expected mastery on an all-correct run")
	}
	if topics.recorded != saved.QuestionsAnswered {
		t.Errorf("topic records = %d, want %d", topics.recorded, saved.QuestionsAnswered)
	}
}

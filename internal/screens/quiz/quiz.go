package quiz

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/ascendquiz/ascendquiz/internal/pool"
	"github.com/ascendquiz/ascendquiz/internal/router"
	"github.com/ascendquiz/ascendquiz/internal/screen"
	"github.com/ascendquiz/ascendquiz/internal/screens/summary"
	sess "github.com/ascendquiz/ascendquiz/internal/session"
	"github.com/ascendquiz/ascendquiz/internal/store"
	"github.com/ascendquiz/ascendquiz/internal/ui/components"
	"github.com/ascendquiz/ascendquiz/internal/ui/layout"
)

// QuizScreen drives one adaptive session from first question to the
// summary screen.
type QuizScreen struct {
	user         *store.User
	documentName string
	buildPool    func() (*pool.Pool, error)
	sessions     store.SessionRepo
	topics       store.TopicStatRepo

	controller *sess.Controller
	current    pool.Question
	mc         components.MultiChoice

	// feedback state after each answer
	showingFeedback bool
	lastEval        sess.AnswerEvaluated
	pendingQuestion *pool.Question
	finished        *sess.SessionFinished

	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. buildPool runs asynchronously in Init.
func New(user *store.User, documentName string, buildPool func() (*pool.Pool, error), sessions store.SessionRepo, topics store.TopicStatRepo) *QuizScreen {
	return &QuizScreen{
		user:         user,
		documentName: documentName,
		buildPool:    buildPool,
		sessions:     sessions,
		topics:       topics,
	}
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Init() tea.Cmd {
	return func() tea.Msg {
		p, err := s.buildPool()
		if err != nil {
			return controllerReadyMsg{Err: err}
		}
		ctrl, err := sess.New(p)
		if err != nil {
			return controllerReadyMsg{Err: err}
		}
		if _, err := ctrl.Start(); err != nil {
			return controllerReadyMsg{Err: err}
		}
		return controllerReadyMsg{Controller: ctrl}
	}
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4 ↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case controllerReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.controller = msg.Controller
		if q, ok := s.controller.Current(); ok {
			s.setQuestion(q)
		}
		return s, nil

	case persistDoneMsg:
		// Persistence failures shouldn't block the summary; the score
		// is still shown, just not recorded.
		return s.pushSummary(msg.Err)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.controller == nil {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s.dismissFeedback()
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(s.current.Options) {
			s.mc.Selected = idx
			return s.submitAnswer()
		}
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	return s, cmd
}

// setQuestion resets the choice component for a new question.
func (s *QuizScreen) setQuestion(q pool.Question) {
	s.current = q
	s.mc = components.NewMultiChoice(q.Text, q.Options, q.CorrectIndex)
}

// submitAnswer feeds the chosen option to the controller and captures
// the resulting events for the feedback overlay.
func (s *QuizScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	events, err := s.controller.SubmitAnswer(s.current.ID, s.mc.Selected)
	if err != nil {
		// A busy controller means a submit is already in flight; all
		// other errors are terminal for the screen.
		if errors.Is(err, sess.ErrBusy) {
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}

	s.mc.Submitted = true
	s.mc.ChosenIndex = s.mc.Selected

	s.pendingQuestion = nil
	s.finished = nil
	for _, ev := range events {
		switch ev := ev.(type) {
		case sess.AnswerEvaluated:
			s.lastEval = ev
		case sess.QuestionPresented:
			q := ev.Question
			s.pendingQuestion = &q
		case sess.SessionFinished:
			fin := ev
			s.finished = &fin
		}
	}

	s.showingFeedback = true
	return s, nil
}

// dismissFeedback advances to the next question or ends the session.
func (s *QuizScreen) dismissFeedback() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false

	if s.finished != nil {
		return s, s.persistSession()
	}

	if s.pendingQuestion != nil {
		s.setQuestion(*s.pendingQuestion)
		s.pendingQuestion = nil
	}
	return s, nil
}

// persistSession saves the snapshot and topic tallies, then pushes the
// summary screen.
func (s *QuizScreen) persistSession() tea.Cmd {
	snap := s.controller.Snapshot()
	return func() tea.Msg {
		ctx := context.Background()

		data := store.SessionData{
			SessionID:         snap.SessionID,
			UserID:            s.user.ID,
			DocumentName:      s.documentName,
			FinalScore:        snap.FinalScore,
			MasteryAchieved:   snap.MasteryAchieved,
			QuestionsAnswered: snap.QuestionsAnswered,
			FinishReason:      string(snap.Reason),
		}
		for _, item := range snap.Items {
			data.Responses = append(data.Responses, store.ResponseData{
				QuestionID:   item.QuestionID,
				QuestionText: item.QuestionText,
				Topic:        item.Topic,
				Tier:         int(item.Tier),
				Correct:      item.Correct,
				SeqInSession: item.Seq,
			})
		}

		if err := s.sessions.Save(ctx, data); err != nil {
			return persistDoneMsg{Err: err}
		}
		for _, item := range snap.Items {
			if err := s.topics.Record(ctx, s.user.ID, item.Topic, item.Correct); err != nil {
				return persistDoneMsg{Err: err}
			}
		}
		return persistDoneMsg{}
	}
}

func (s *QuizScreen) pushSummary(persistErr error) (screen.Screen, tea.Cmd) {
	snap := s.controller.Snapshot()
	sum := summary.New(snap, persistErr)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sum}
	}
}

func (s *QuizScreen) Username() string {
	return s.user.Username
}

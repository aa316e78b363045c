package session

import "github.com/ascendquiz/ascendquiz/internal/pool"

// Event is emitted by the controller for the presentation layer.
// Start and SubmitAnswer return the events produced by that transition,
// in order.
type Event interface {
	isEvent()
}

// QuestionPresented carries the next question to display.
type QuestionPresented struct {
	Question pool.Question
}

// AnswerEvaluated reports the outcome of a submitted answer.
type AnswerEvaluated struct {
	Correct      bool
	CorrectIndex int
	Explanation  string

	// NewTier is the target tier for the next question.
	NewTier pool.Tier

	// MasteryScore is the updated weighted score, 0-100.
	MasteryScore float64
}

// SessionFinished is the terminal event.
type SessionFinished struct {
	FinalScore      float64
	MasteryAchieved bool
	Reason          FinishReason
	History         []AnsweredItem
}

func (QuestionPresented) isEvent() {}
func (AnswerEvaluated) isEvent()   {}
func (SessionFinished) isEvent()   {}

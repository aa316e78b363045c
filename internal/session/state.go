package session

import (
	"time"

	"github.com/ascendquiz/ascendquiz/internal/pool"
)

// Phase is the controller's position in the quiz state machine.
type Phase int

const (
	// PhaseStart means the session exists but no question has been
	// presented yet.
	PhaseStart Phase = iota

	// PhaseAwaitingAnswer means a question is on display and the
	// controller is waiting for SubmitAnswer.
	PhaseAwaitingAnswer

	// PhaseFinished is terminal. The final score and history are fixed.
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// AnsweredItem records one answered question. The history is append-only
// and never contains the same question id twice.
type AnsweredItem struct {
	QuestionID string
	Correct    bool

	// Tier is the tier at which the question was asked.
	Tier pool.Tier

	// Seq is the 1-based order index within the session.
	Seq int

	// At is when the answer was recorded.
	At time.Time
}

// FinishReason explains why the session ended.
type FinishReason string

const (
	// FinishHighTierAccuracy: at least 5 answers at tier >= 6 with >= 75%
	// accuracy in that band.
	FinishHighTierAccuracy FinishReason = "high-tier-accuracy"

	// FinishScore: the weighted mastery score reached 70.
	FinishScore FinishReason = "score"

	// FinishExhausted: the difficulty index ran out of questions before
	// mastery was reached.
	FinishExhausted FinishReason = "exhausted"
)

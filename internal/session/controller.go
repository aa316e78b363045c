package session

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ascendquiz/ascendquiz/internal/pool"
)

// Tuning constants for the adaptive loop.
const (
	// anchorPredicted is the predicted-correctness percentage the first
	// question is anchored to.
	anchorPredicted = 70

	// masteryScoreTarget ends the session once the weighted score
	// reaches it.
	masteryScoreTarget = 70.0

	// highTierMin is the lowest tier counted toward the high-tier
	// mastery band.
	highTierMin = pool.Tier(6)

	// highTierMinAnswers is how many high-tier answers are needed before
	// the band accuracy check applies.
	highTierMinAnswers = 5

	// highTierAccuracyTarget is the required accuracy within the
	// high-tier band.
	highTierAccuracyTarget = 0.75

	// minAnswersForScore is the floor before the overall-score rule can
	// end the session. Without it a single correct answer scores 100 and
	// the quiz would end on question one.
	minAnswersForScore = 5
)

var (
	// ErrNotStarted is returned by SubmitAnswer before Start.
	ErrNotStarted = errors.New("session not started")

	// ErrAlreadyStarted is returned by a second Start call.
	ErrAlreadyStarted = errors.New("session already started")

	// ErrFinished is returned when the session is over and no further
	// answers are accepted.
	ErrFinished = errors.New("session finished")

	// ErrUnknownQuestion is returned when the submitted id is not the
	// question currently presented. Session state is unchanged.
	ErrUnknownQuestion = errors.New("answer does not match the presented question")

	// ErrBusy is returned when SubmitAnswer is called while a previous
	// call is still evaluating. The first call is unaffected; the caller
	// must serialize submissions.
	ErrBusy = errors.New("evaluation in progress")
)

// Controller drives one quiz attempt end to end: it selects the starting
// question, walks the difficulty index up and down as answers come in,
// maintains the weighted mastery score, and decides when the session
// ends. It owns its state exclusively and processes one SubmitAnswer at
// a time; concurrent sessions each get their own Controller.
type Controller struct {
	id    string
	pool  *pool.Pool
	index *pool.Index

	phase   Phase
	current pool.Question

	// targetTier is the tier requested for the next fetch. The question
	// actually served may sit in a nearby tier when the target is spent.
	targetTier pool.Tier

	asked   map[string]bool
	history []AnsweredItem

	// Tier-weighted running sums behind the mastery score.
	correctWeight int
	totalWeight   int

	// High-tier band counters for the accuracy termination rule.
	highTierAnswered int
	highTierCorrect  int

	masteryAchieved bool
	finishReason    FinishReason

	// evaluating guards against re-entrant SubmitAnswer calls.
	evaluating atomic.Bool

	now func() time.Time
}

// New creates a Controller over a validated pool. The pool must be
// non-empty; malformed questions are rejected earlier by pool.New.
func New(p *pool.Pool) (*Controller, error) {
	if p == nil || p.Len() == 0 {
		return nil, pool.ErrEmptyPool
	}
	idx, err := pool.BuildIndex(p)
	if err != nil {
		return nil, err
	}
	return &Controller{
		id:    uuid.NewString(),
		pool:  p,
		index: idx,
		asked: make(map[string]bool),
		now:   time.Now,
	}, nil
}

// ID returns the session's uuid.
func (c *Controller) ID() string { return c.id }

// Phase returns the current state-machine phase.
func (c *Controller) Phase() Phase { return c.phase }

// Score returns the weighted mastery score, always within [0,100].
func (c *Controller) Score() float64 {
	if c.totalWeight == 0 {
		return 0
	}
	return float64(c.correctWeight) / float64(c.totalWeight) * 100
}

// TargetTier returns the tier the controller is currently aiming for.
func (c *Controller) TargetTier() pool.Tier { return c.targetTier }

// Current returns the question awaiting an answer, if any.
func (c *Controller) Current() (pool.Question, bool) {
	if c.phase != PhaseAwaitingAnswer {
		return pool.Question{}, false
	}
	return c.current, true
}

// History returns a copy of the answered items in order.
func (c *Controller) History() []AnsweredItem {
	out := make([]AnsweredItem, len(c.history))
	copy(out, c.history)
	return out
}

// MasteryAchieved reports whether the session ended in mastery.
// False until the session finishes.
func (c *Controller) MasteryAchieved() bool { return c.masteryAchieved }

// Reason returns why the session finished, empty while running.
func (c *Controller) Reason() FinishReason { return c.finishReason }

// Start anchors the session at the tier whose predicted-correctness is
// nearest 70% and presents the first question.
func (c *Controller) Start() ([]Event, error) {
	if c.phase != PhaseStart {
		return nil, ErrAlreadyStarted
	}

	c.targetTier = c.pool.TierNearestPredicted(anchorPredicted)

	q, err := c.index.Fetch(c.targetTier, c.asked)
	if err != nil {
		// Unreachable with a non-empty pool, but the exhausted path is
		// the defined fallback everywhere else too.
		return []Event{c.finish(FinishExhausted)}, nil
	}

	c.current = q
	c.phase = PhaseAwaitingAnswer
	return []Event{QuestionPresented{Question: q}}, nil
}

// SubmitAnswer records the learner's choice for the currently presented
// question and advances the state machine. It returns the events
// produced by the transition: an AnswerEvaluated, followed by either the
// next QuestionPresented or a SessionFinished.
func (c *Controller) SubmitAnswer(questionID string, chosen int) ([]Event, error) {
	if !c.evaluating.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer c.evaluating.Store(false)

	switch c.phase {
	case PhaseStart:
		return nil, ErrNotStarted
	case PhaseFinished:
		return nil, ErrFinished
	}
	if questionID != c.current.ID {
		return nil, ErrUnknownQuestion
	}

	q := c.current
	correct := q.IsCorrect(chosen)

	c.asked[q.ID] = true
	c.history = append(c.history, AnsweredItem{
		QuestionID: q.ID,
		Correct:    correct,
		Tier:       q.Tier,
		Seq:        len(c.history) + 1,
		At:         c.now(),
	})

	// Tier-weighted running average: harder questions move the score
	// more, in both directions.
	c.totalWeight += int(q.Tier)
	if correct {
		c.correctWeight += int(q.Tier)
	}

	if q.Tier >= highTierMin {
		c.highTierAnswered++
		if correct {
			c.highTierCorrect++
		}
	}

	// Walk the tier ladder from the tier actually asked.
	if correct {
		c.targetTier = (q.Tier + 1).Clamp()
	} else {
		c.targetTier = (q.Tier - 1).Clamp()
	}

	evaluated := AnswerEvaluated{
		Correct:      correct,
		CorrectIndex: q.CorrectIndex,
		Explanation:  q.Explanation,
		NewTier:      c.targetTier,
		MasteryScore: c.Score(),
	}

	if reason, done := c.terminal(); done {
		return []Event{evaluated, c.finish(reason)}, nil
	}

	next, err := c.index.Fetch(c.targetTier, c.asked)
	if errors.Is(err, pool.ErrExhausted) {
		return []Event{evaluated, c.finish(FinishExhausted)}, nil
	}
	if err != nil {
		return nil, err
	}

	c.current = next
	return []Event{evaluated, QuestionPresented{Question: next}}, nil
}

// terminal evaluates the mastery termination rules. The high-tier band
// rule is checked before the overall score rule.
func (c *Controller) terminal() (FinishReason, bool) {
	if c.highTierAnswered >= highTierMinAnswers {
		accuracy := float64(c.highTierCorrect) / float64(c.highTierAnswered)
		if accuracy >= highTierAccuracyTarget {
			return FinishHighTierAccuracy, true
		}
	}
	if len(c.history) >= minAnswersForScore && c.Score() >= masteryScoreTarget {
		return FinishScore, true
	}
	return "", false
}

func (c *Controller) finish(reason FinishReason) SessionFinished {
	c.phase = PhaseFinished
	c.finishReason = reason
	c.masteryAchieved = reason != FinishExhausted
	return SessionFinished{
		FinalScore:      c.Score(),
		MasteryAchieved: c.masteryAchieved,
		Reason:          reason,
		History:         c.History(),
	}
}

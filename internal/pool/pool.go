package pool

import (
	"errors"
	"fmt"
)

// ErrEmptyPool indicates the pool has zero questions, so no session can
// start from it.
var ErrEmptyPool = errors.New("question pool is empty")

// ErrInvalidPool indicates a malformed question was found during pool
// construction. Individual failures wrap this sentinel.
var ErrInvalidPool = errors.New("invalid question pool")

// InvalidQuestionError reports which question failed validation and why.
type InvalidQuestionError struct {
	Index  int    // position in the input slice
	ID     string // question id, may be empty
	Reason string
}

func (e *InvalidQuestionError) Error() string {
	return fmt.Sprintf("question %d (%q): %s", e.Index, e.ID, e.Reason)
}

func (e *InvalidQuestionError) Unwrap() error { return ErrInvalidPool }

// Pool is the validated, read-only question set for one document.
// A Pool is safe for concurrent reads; it is never mutated after New.
type Pool struct {
	questions []Question
	byID      map[string]Question
}

// New validates questions and builds a Pool. It fails with ErrEmptyPool
// for a zero-length input and with an error wrapping ErrInvalidPool for
// the first malformed question found.
func New(questions []Question) (*Pool, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyPool
	}

	byID := make(map[string]Question, len(questions))
	for i, q := range questions {
		if err := validate(i, q); err != nil {
			return nil, err
		}
		if _, dup := byID[q.ID]; dup {
			return nil, &InvalidQuestionError{Index: i, ID: q.ID, Reason: "duplicate id"}
		}
		byID[q.ID] = q
	}

	qs := make([]Question, len(questions))
	copy(qs, questions)

	return &Pool{questions: qs, byID: byID}, nil
}

func validate(i int, q Question) error {
	fail := func(reason string) error {
		return &InvalidQuestionError{Index: i, ID: q.ID, Reason: reason}
	}

	if q.ID == "" {
		return fail("missing id")
	}
	if q.Text == "" {
		return fail("missing question text")
	}
	if !q.Tier.Valid() {
		return fail(fmt.Sprintf("tier %d outside [1,8]", q.Tier))
	}
	if q.PredictedCorrect < 0 || q.PredictedCorrect > 100 {
		return fail(fmt.Sprintf("predicted correctness %d outside [0,100]", q.PredictedCorrect))
	}
	if len(q.Options) != OptionCount {
		return fail(fmt.Sprintf("%d options, want %d", len(q.Options), OptionCount))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
		return fail(fmt.Sprintf("correct index %d outside [0,%d)", q.CorrectIndex, OptionCount))
	}
	return nil
}

// Len returns the number of questions in the pool.
func (p *Pool) Len() int {
	return len(p.questions)
}

// Questions returns the pool contents in insertion order.
// The returned slice must not be modified.
func (p *Pool) Questions() []Question {
	return p.questions
}

// ByID looks up a question by id.
func (p *Pool) ByID(id string) (Question, bool) {
	q, ok := p.byID[id]
	return q, ok
}

// TierNearestPredicted returns the tier of the question whose
// predicted-correctness is closest to target. Ties resolve to the lower
// tier. This anchors session start at the ~70% correctness point.
func (p *Pool) TierNearestPredicted(target int) Tier {
	best := p.questions[0].Tier
	bestDist := absInt(p.questions[0].PredictedCorrect - target)

	for _, q := range p.questions[1:] {
		d := absInt(q.PredictedCorrect - target)
		if d < bestDist || (d == bestDist && q.Tier < best) {
			best = q.Tier
			bestDist = d
		}
	}
	return best
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

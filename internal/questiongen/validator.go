package questiongen

import (
	"fmt"
	"strings"

	"github.com/ascendquiz/ascendquiz/internal/pool"
)

// Validator checks a generated question for acceptability.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural".
	Name() string

	// Validate checks the question and returns nil if it passes.
	Validate(q pool.Question) *ValidationError
}

// ValidationError describes why a question was rejected.
type ValidationError struct {
	Validator string // name of the validator that failed
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that required fields are present, within
// length limits, and within range.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q pool.Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}

	if strings.TrimSpace(q.Text) == "" {
		return fail("question_text is empty")
	}
	if len(q.Text) > 600 {
		return fail("question_text exceeds 600 characters")
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return fail("explanation is empty")
	}
	if len(q.Explanation) > 1200 {
		return fail("explanation exceeds 1200 characters")
	}
	if strings.TrimSpace(q.Topic) == "" {
		return fail("topic is empty")
	}
	if len(q.Options) != pool.OptionCount {
		return fail(fmt.Sprintf("%d options, want %d", len(q.Options), pool.OptionCount))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fail(fmt.Sprintf("option %d is empty", i))
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= pool.OptionCount {
		return fail(fmt.Sprintf("correct_index %d outside [0,%d)", q.CorrectIndex, pool.OptionCount))
	}
	if q.PredictedCorrect < 0 || q.PredictedCorrect > 100 {
		return fail(fmt.Sprintf("predicted_correct %d outside [0,100]", q.PredictedCorrect))
	}
	return nil
}

// DistinctOptionsValidator rejects questions whose options repeat:
// duplicate distractors make the correct answer guessable by
// elimination.
type DistinctOptionsValidator struct{}

func (v *DistinctOptionsValidator) Name() string { return "distinct-options" }

func (v *DistinctOptionsValidator) Validate(q pool.Question) *ValidationError {
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		key := strings.ToLower(strings.TrimSpace(opt))
		if seen[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option %q", opt),
			}
		}
		seen[key] = true
	}
	return nil
}

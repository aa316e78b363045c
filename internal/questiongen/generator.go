package questiongen

import (
	"context"

	"github.com/ascendquiz/ascendquiz/internal/pool"
)

// Generator produces a scored question pool from document text using an
// LLM provider. Generation happens entirely before the adaptive session
// is constructed; the session controller never waits on it.
type Generator interface {
	// GeneratePool produces validated questions for the given input.
	// All configured validators run on every question before it is
	// accepted; questions failing validation are dropped.
	GeneratePool(ctx context.Context, input Input) ([]pool.Question, error)
}

// Input holds all context needed to generate a question pool.
type Input struct {
	// DocumentName labels the source document (shown in history).
	DocumentName string

	// Text is the extracted document text the questions are based on.
	Text string

	// QuestionCount is how many questions to request. Zero means the
	// config default.
	QuestionCount int
}

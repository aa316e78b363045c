package questiongen

import (
	"strings"
	"testing"

	"github.com/ascendquiz/ascendquiz/internal/pool"
)

func validQuestion() pool.Question {
	return pool.Question{
		ID:               "q1",
		Text:             "Which organelle produces ATP?",
		Topic:            "Cell Biology",
		Tier:             pool.Tier(5),
		PredictedCorrect: 60,
		Options:          []string{"Mitochondria", "Nucleus", "Ribosome", "Golgi apparatus"},
		CorrectIndex:     0,
		Explanation:      "The mitochondrion is the site of ATP synthesis.",
	}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *pool.Question)
		wantErr string
	}{
		{"valid", func(q *pool.Question) {}, ""},
		{"empty text", func(q *pool.Question) { q.Text = "  " }, "question_text is empty"},
		{"text too long", func(q *pool.Question) { q.Text = strings.Repeat("x", 601) }, "exceeds 600"},
		{"empty explanation", func(q *pool.Question) { q.Explanation = "" }, "explanation is empty"},
		{"explanation too long", func(q *pool.Question) { q.Explanation = strings.Repeat("x", 1201) }, "exceeds 1200"},
		{"empty topic", func(q *pool.Question) { q.Topic = "" }, "topic is empty"},
		{"three options", func(q *pool.Question) { q.Options = q.Options[:3] }, "3 options"},
		{"empty option", func(q *pool.Question) { q.Options[2] = " " }, "option 2 is empty"},
		{"negative correct index", func(q *pool.Question) { q.CorrectIndex = -1 }, "correct_index"},
		{"correct index out of range", func(q *pool.Question) { q.CorrectIndex = 4 }, "correct_index"},
		{"predicted too high", func(q *pool.Question) { q.PredictedCorrect = 101 }, "predicted_correct"},
		{"predicted negative", func(q *pool.Question) { q.PredictedCorrect = -5 }, "predicted_correct"},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := v.Validate(q)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Message, tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Message, tt.wantErr)
			}
		})
	}
}

func TestDistinctOptionsValidator(t *testing.T) {
	v := &DistinctOptionsValidator{}

	q := validQuestion()
	if err := v.Validate(q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q.Options = []string{"Mitochondria", "mitochondria ", "Ribosome", "Nucleus"}
	err := v.Validate(q)
	if err == nil {
		t.Fatal("expected duplicate option error")
	}
	if err.Validator != "distinct-options" {
		t.Errorf("unexpected validator name %q", err.Validator)
	}
}

func TestValidationError_Error(t *testing.T) {
	e := &ValidationError{Validator: "structural", Message: "topic is empty"}
	if got := e.Error(); !strings.Contains(got, "structural") || !strings.Contains(got, "topic is empty") {
		t.Errorf("unexpected error string: %q", got)
	}
}

package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ascendquiz/ascendquiz/internal/llm"
	"github.com/ascendquiz/ascendquiz/internal/pool"
)

func questionJSON(text string, predicted int) string {
	return fmt.Sprintf(`{
		"question_text": %q,
		"options": ["Mitochondria", "Nucleus", "Ribosome", "Golgi apparatus"],
		"correct_index": 0,
		"explanation": "The mitochondrion is the site of aerobic respiration and ATP synthesis. The nucleus stores DNA, ribosomes build proteins, and the Golgi packages them.",
		"topic": "Cell Biology",
		"predicted_correct": %d
	}`, text, predicted)
}

func batchJSON(questions ...string) json.RawMessage {
	return json.RawMessage(`{"questions":[` + strings.Join(questions, ",") + `]}`)
}

func validBatch(n int) json.RawMessage {
	qs := make([]string, n)
	for i := range qs {
		qs[i] = questionJSON(fmt.Sprintf("Which organelle produces ATP? (variant %d)", i), 20+i*5)
	}
	return batchJSON(qs...)
}

func testInput() Input {
	return Input{
		DocumentName:  "cells.md",
		Text:          "The mitochondrion produces ATP through aerobic respiration.",
		QuestionCount: 5,
	}
}

func TestGeneratePool_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatch(6)})
	gen := New(mock, DefaultConfig())

	qs, err := gen.GeneratePool(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 6 {
		t.Fatalf("expected 6 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if q.ID == "" {
			t.Errorf("question %d has empty id", i)
		}
		if q.Topic != "Cell Biology" {
			t.Errorf("question %d: unexpected topic %q", i, q.Topic)
		}
		if q.Tier != pool.TierFromPredicted(q.PredictedCorrect) {
			t.Errorf("question %d: tier %d does not match predicted %d", i, q.Tier, q.PredictedCorrect)
		}
	}
}

func TestGeneratePool_AssignsUniqueIDs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatch(8)})
	gen := New(mock, DefaultConfig())

	qs, err := gen.GeneratePool(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[string]bool)
	for _, q := range qs {
		if seen[q.ID] {
			t.Fatalf("duplicate id %q", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestGeneratePool_DropsInvalid(t *testing.T) {
	// 6 valid plus one with empty explanation and one with duplicate options.
	broken := `{
		"question_text": "What stores DNA?",
		"options": ["Nucleus", "Nucleus", "Ribosome", "Vacuole"],
		"correct_index": 0,
		"explanation": "The nucleus stores the cell's DNA.",
		"topic": "Cell Biology",
		"predicted_correct": 80
	}`
	noExplanation := `{
		"question_text": "What builds proteins?",
		"options": ["Ribosome", "Nucleus", "Lysosome", "Vacuole"],
		"correct_index": 0,
		"explanation": "",
		"topic": "Cell Biology",
		"predicted_correct": 70
	}`
	qs := []string{broken, noExplanation}
	for i := 0; i < 6; i++ {
		qs = append(qs, questionJSON(fmt.Sprintf("Valid question %d?", i), 50))
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(qs...)})
	gen := New(mock, DefaultConfig())

	out, err := gen.GeneratePool(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 6 {
		t.Fatalf("expected 6 surviving questions, got %d", len(out))
	}
	for _, q := range out {
		if q.Text == "What stores DNA?" || q.Text == "What builds proteins?" {
			t.Errorf("invalid question %q was not dropped", q.Text)
		}
	}
}

func TestGeneratePool_DedupsRepeatedText(t *testing.T) {
	qs := []string{
		questionJSON("Which organelle produces ATP?", 50),
		questionJSON("Which organelle produces  ATP?", 60), // same after normalization
		questionJSON("WHICH ORGANELLE PRODUCES ATP?", 70),
	}
	for i := 0; i < 5; i++ {
		qs = append(qs, questionJSON(fmt.Sprintf("Distinct question %d?", i), 40))
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(qs...)})
	gen := New(mock, DefaultConfig())

	out, err := gen.GeneratePool(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 6 {
		t.Fatalf("expected 6 after dedup, got %d", len(out))
	}
}

func TestGeneratePool_TooFewAccepted(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatch(3)})
	gen := New(mock, DefaultConfig())

	_, err := gen.GeneratePool(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error when fewer than MinAccepted survive")
	}
	if !strings.Contains(err.Error(), "passed validation") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGeneratePool_ProviderError(t *testing.T) {
	wantErr := errors.New("network down")
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})
	gen := New(mock, DefaultConfig())

	_, err := gen.GeneratePool(context.Background(), testInput())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestGeneratePool_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": "oops"}`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.GeneratePool(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGeneratePool_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatch(5)})
	cfg := DefaultConfig()
	gen := New(mock, cfg)

	if _, err := gen.GeneratePool(context.Background(), testInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != PoolSchema {
		t.Error("expected PoolSchema on the request")
	}
	if req.System != systemPrompt {
		t.Error("expected system prompt on the request")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("expected a single user message")
	}
	if !strings.Contains(req.Messages[0].Content, "Generate 5 questions") {
		t.Errorf("user message missing question count: %q", req.Messages[0].Content)
	}
	if !strings.Contains(req.Messages[0].Content, "cells.md") {
		t.Error("user message missing document name")
	}
	if req.MaxTokens != cfg.MaxTokens {
		t.Errorf("MaxTokens = %d, want %d", req.MaxTokens, cfg.MaxTokens)
	}
}

func TestGeneratePool_DefaultCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatch(5)})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.QuestionCount = 0
	if _, err := gen.GeneratePool(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Generate 15 questions") {
		t.Errorf("expected default count in prompt: %q", mock.Calls[0].Messages[0].Content)
	}
}

func TestBuildUserMessage_TruncatesSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSourceChars = 10
	msg := buildUserMessage(Input{Text: "0123456789ABCDEF"}, 5, cfg)
	if strings.Contains(msg, "ABCDEF") {
		t.Error("source text was not truncated")
	}
	if !strings.Contains(msg, "0123456789") {
		t.Error("truncated prefix missing")
	}
}

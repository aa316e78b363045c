package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "quiz-question",
		Description: "A single multiple-choice question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"correct_index": map[string]any{"type": "integer", "minimum": 0},
				"difficulty":    map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"question", "options", "correct_index"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"all fields", `{"question":"What does the mitochondrion do?","options":["Produces ATP","Stores DNA","Makes proteins","Digests waste"],"correct_index":0,"difficulty":"easy"}`},
		{"without optional difficulty", `{"question":"What is osmosis?","options":["A","B","C","D"],"correct_index":2}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateResponse(questionSchema(), json.RawMessage(tc.raw)); err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
		})
	}
}

func TestValidateResponse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"question":"Incomplete?"}`},
		{"wrong type", `{"question":"Typed?","options":["A","B"],"correct_index":"zero"}`},
		{"bad enum", `{"question":"Enum?","options":["A","B"],"correct_index":0,"difficulty":"impossible"}`},
		{"malformed JSON", `{not json}`},
		{"empty", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResponse(questionSchema(), json.RawMessage(tc.raw))
			if err == nil {
				t.Fatal("expected validation error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
		})
	}
}

func TestValidateResponse_NilSchemaPassesAnything(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedBatch(t *testing.T) {
	schema := &Schema{
		Name:        "quiz-question-batch-test",
		Description: "A batch of questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question":      map[string]any{"type": "string"},
							"correct_index": map[string]any{"type": "integer"},
						},
						"required": []any{"question", "correct_index"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}

	valid := json.RawMessage(`{"questions":[{"question":"Q1?","correct_index":1},{"question":"Q2?","correct_index":3}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"questions":[{"question":"Q1?","correct_index":"one"}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong item field type")
	}
}

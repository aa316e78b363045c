package questiongen

import "github.com/ascendquiz/ascendquiz/internal/llm"

// PoolSchema defines the JSON schema for LLM question-batch responses.
var PoolSchema = &llm.Schema{
	Name:        "quiz-question-batch",
	Description: "A batch of multiple-choice study questions generated from source text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner, self-contained plain text",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 answer options, exactly one correct",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is right and the distractors are wrong",
						},
						"topic": map[string]any{
							"type":        "string",
							"description": "Short subject-area tag, e.g. \"Cell Biology\"",
						},
						"predicted_correct": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     100,
							"description": "Estimated percentage of learners who would answer correctly",
						},
					},
					"required":             []any{"question_text", "options", "correct_index", "explanation", "topic", "predicted_correct"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

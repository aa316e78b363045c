package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ascendquiz/ascendquiz/internal/llm"
	"github.com/ascendquiz/ascendquiz/internal/pool"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	QuestionText     string   `json:"question_text"`
	Options          []string `json:"options"`
	CorrectIndex     int      `json:"correct_index"`
	Explanation      string   `json:"explanation"`
	Topic            string   `json:"topic"`
	PredictedCorrect int      `json:"predicted_correct"`
}

// GeneratePool requests a question batch, validates each entry, drops
// near-duplicates, and returns pool-ready questions with assigned ids
// and tiers. Fails when fewer than MinAccepted questions survive.
func (g *LLMGenerator) GeneratePool(ctx context.Context, input Input) ([]pool.Question, error) {
	ctx = llm.WithPurpose(ctx, "pool-gen")

	count := input.QuestionCount
	if count <= 0 {
		count = g.config.DefaultQuestionCount
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, count, g.config)},
		},
		Schema:      PoolSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	var accepted []pool.Question
	seen := make(map[string]bool)

	for _, out := range raw.Questions {
		q := pool.Question{
			ID:               uuid.NewString(),
			Text:             out.QuestionText,
			Topic:            out.Topic,
			Tier:             pool.TierFromPredicted(out.PredictedCorrect),
			PredictedCorrect: out.PredictedCorrect,
			Options:          out.Options,
			CorrectIndex:     out.CorrectIndex,
			Explanation:      out.Explanation,
		}

		if !g.accept(q) {
			continue
		}

		key := normalizeText(q.Text)
		if seen[key] {
			continue
		}
		seen[key] = true

		accepted = append(accepted, q)
	}

	if len(accepted) < g.config.MinAccepted {
		return nil, fmt.Errorf("only %d of %d generated questions passed validation (need %d)",
			len(accepted), len(raw.Questions), g.config.MinAccepted)
	}

	return accepted, nil
}

func (g *LLMGenerator) accept(q pool.Question) bool {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return false
		}
	}
	return true
}

// normalizeText collapses case and whitespace for duplicate detection.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured output from a language model. The quiz
// pipeline builds a Request with a JSON schema describing a question
// batch and gets validated JSON back.
type Provider interface {
	// Generate runs one completion. When req.Schema is set the provider
	// uses its native structured-output mechanism and Content holds JSON
	// matching the schema; otherwise Content wraps the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a single completion request.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Question generation is
	// single-turn: one user message carrying the study material.
	Messages []Message

	// Schema, when non-nil, constrains the output to this JSON shape.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in 0.0..1.0; zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure the model must emit.
type Schema struct {
	// Name identifies the schema, kebab-case ("quiz-question-batch").
	// Anthropic sees it as a tool name, OpenAI as a schema name.
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is validated JSON when the request carried a Schema, or
	// the raw text wrapped as a JSON string otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks tokens for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

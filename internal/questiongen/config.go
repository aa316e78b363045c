package questiongen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators run on every
	// generated question. A question is dropped on the first failure.
	Validators []Validator

	// DefaultQuestionCount is requested when the input doesn't specify.
	DefaultQuestionCount int

	// MinAccepted is the minimum number of questions that must survive
	// validation for generation to succeed.
	MinAccepted int

	// MaxSourceChars truncates the document excerpt sent in the prompt.
	MaxSourceChars int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DistinctOptionsValidator{},
		},
		DefaultQuestionCount: 15,
		MinAccepted:          5,
		MaxSourceChars:       24_000,
		MaxTokens:            8192,
		Temperature:          0.7,
	}
}

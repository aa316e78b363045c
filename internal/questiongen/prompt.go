package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author creating multiple-choice study questions from source material.

Rules:
- Every question must be answerable from the source text alone; do not rely on outside knowledge.
- The question text should be clear and self-contained. Plain text only, no markdown.
- Provide exactly 4 options where exactly one is correct. Distractors should reflect plausible misunderstandings of the material, not random values.
- The explanation must say why the correct answer is right and briefly address the distractors.
- Tag each question with a short topic drawn from the material (e.g. "Cell Biology", "Linear Equations").
- Estimate predicted_correct honestly: the percentage of learners who have studied this material that would answer correctly. Spread the batch across the full difficulty range, from giveaway (90%) to expert (20%).
- Do not write two questions about the same fact.`

// buildUserMessage constructs the user message from Input and Config limits.
func buildUserMessage(input Input, count int, cfg Config) string {
	text := input.Text
	if cfg.MaxSourceChars > 0 && len(text) > cfg.MaxSourceChars {
		text = text[:cfg.MaxSourceChars]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d questions from the following material.\n", count)
	if input.DocumentName != "" {
		fmt.Fprintf(&b, "Document: %s\n", input.DocumentName)
	}
	b.WriteString("\n--- SOURCE TEXT ---\n")
	b.WriteString(text)
	b.WriteString("\n--- END SOURCE TEXT ---\n")
	return b.String()
}

package cmd

import (
	"fmt"

	"github.com/ascendquiz/ascendquiz/internal/extract"
	"github.com/ascendquiz/ascendquiz/internal/llm"
	"github.com/ascendquiz/ascendquiz/internal/pool"
	"github.com/ascendquiz/ascendquiz/internal/questiongen"
	"github.com/ascendquiz/ascendquiz/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a question pool from a document",
	Long: `Extract text from a document, generate a scored question pool with the
configured LLM provider, and write it to a pool file for later quizzes.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("in", "", "Source document (.txt or .md, required)")
	generateCmd.Flags().String("out", "pool.json", "Output pool file")
	generateCmd.Flags().Int("count", 0, "Number of questions to request (0 = default)")
	_ = generateCmd.MarkFlagRequired("in")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	inPath, _ := cmd.Flags().GetString("in")
	outPath, _ := cmd.Flags().GetString("out")
	count, _ := cmd.Flags().GetInt("count")

	doc, err := extract.FromFile(inPath)
	if err != nil {
		return fmt.Errorf("extract document: %w", err)
	}

	// Open the store so the request is visible in `ascendquiz llm list`.
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.Events())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := questiongen.New(provider, questiongen.DefaultConfig())

	fmt.Printf("Generating questions from %s...\n", doc.Name)
	questions, err := gen.GeneratePool(ctx, questiongen.Input{
		DocumentName:  doc.Name,
		Text:          doc.Text,
		QuestionCount: count,
	})
	if err != nil {
		return fmt.Errorf("generate pool: %w", err)
	}

	if err := pool.WriteFile(outPath, pool.File{Document: doc.Name, Questions: questions}); err != nil {
		return fmt.Errorf("write pool file: %w", err)
	}

	fmt.Printf("Wrote %d questions to %s\n", len(questions), outPath)
	fmt.Printf("Take the quiz with: ascendquiz --pool %s\n", outPath)
	return nil
}

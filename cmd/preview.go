package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ascendquiz/ascendquiz/internal/pool"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <pool-file>",
	Short: "Answer questions from a pool file (no database)",
	Long: `Interactively answer every question in a pool file, in tier order.

This is a stateless developer tool — no adaptive selection, no mastery
tracking, no events. Useful for evaluating generated question quality.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	f, p, err := pool.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read pool file: %w", err)
	}

	questions := p.Questions()
	fmt.Printf("Document: %s (%d questions)\n\n", f.Document, len(questions))

	scanner := bufio.NewScanner(os.Stdin)
	var correct, answered int

	for i, q := range questions {
		fmt.Printf("── Question %d/%d  [Tier %d · %s] ──\n", i+1, len(questions), q.Tier, q.Topic)
		fmt.Println(q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour answer (1-4): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		choice, err := strconv.Atoi(answer)
		if err != nil || choice < 1 || choice > len(q.Options) {
			fmt.Print("(invalid, skipped)\n\n")
			continue
		}

		answered++
		if choice-1 == q.CorrectIndex {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Options[q.CorrectIndex])
		}
		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, answered)
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ascendquiz/ascendquiz/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz sessions for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		if username == "" {
			return listUsers(ctx, s)
		}

		user, err := s.Users().GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("look up user %q: %w", username, err)
		}

		var sessions []*store.SessionRecord
		if limit > 0 {
			sessions, err = s.Sessions().Recent(ctx, user.ID, limit)
		} else {
			sessions, err = s.Sessions().History(ctx, user.ID)
		}
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Printf("No sessions yet for %s.\n", user.Username)
			return nil
		}

		fmt.Printf("%-19s  %-28s  %6s  %9s  %s\n",
			"Date", "Document", "Score", "Questions", "Result")
		fmt.Println(strings.Repeat("─", 80))

		for _, rec := range sessions {
			result := "-"
			if rec.MasteryAchieved {
				result = "MASTERY"
			}
			fmt.Printf("%-19s  %-28s  %6.1f  %9d  %s\n",
				rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(rec.DocumentName, 28),
				rec.FinalScore,
				rec.QuestionsAnswered,
				result,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringP("user", "u", "", "Username to report on")
	historyCmd.Flags().IntP("limit", "n", 0, "Cap the number of sessions shown (0 = all)")
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ascendquiz/ascendquiz/internal/store"
	"github.com/spf13/cobra"
)

// Thresholds for the "needs work" section, matching the dashboard screen.
const (
	statsWeakAccuracy    = 60.0
	statsWeakMinAttempts = 2
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")

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

		overall, err := s.Sessions().Overall(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("query overall stats: %w", err)
		}

		fmt.Printf("Stats for %s\n", user.Username)
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("Sessions:   %d (%d mastered)\n", overall.TotalSessions, overall.MasteredSessions)
		fmt.Printf("Questions:  %d\n", overall.TotalQuestions)
		if overall.TotalSessions > 0 {
			fmt.Printf("Avg score:  %.1f\n", overall.AverageScore)
		}

		topics, err := s.TopicStats().ByUser(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("query topic stats: %w", err)
		}
		if len(topics) > 0 {
			fmt.Println()
			fmt.Println("Topics")
			fmt.Println(strings.Repeat("─", 64))
			fmt.Printf("%-32s  %8s  %8s  %8s\n", "Topic", "Attempts", "Correct", "Accuracy")
			fmt.Println(strings.Repeat("─", 64))
			for _, t := range topics {
				fmt.Printf("%-32s  %8d  %8d  %7.1f%%\n",
					truncate(t.Topic, 32), t.Attempts, t.Correct, t.Accuracy)
			}
		}

		weak, err := s.TopicStats().Weak(ctx, user.ID, statsWeakAccuracy, statsWeakMinAttempts)
		if err != nil {
			return fmt.Errorf("query weak topics: %w", err)
		}
		if len(weak) > 0 {
			fmt.Println()
			fmt.Println("Needs work")
			fmt.Println(strings.Repeat("─", 64))
			for _, t := range weak {
				fmt.Printf("%-32s  %5.1f%% over %d attempts\n",
					truncate(t.Topic, 32), t.Accuracy, t.Attempts)
			}
		}

		return nil
	},
}

func listUsers(ctx context.Context, s *store.Store) error {
	users, err := s.Users().List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		fmt.Println("No users yet. Run ascendquiz to create one.")
		return nil
	}
	fmt.Println("Pick a user with --user:")
	for _, u := range users {
		fmt.Printf("  %s\n", u.Username)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	statsCmd.Flags().StringP("user", "u", "", "Username to report on")
}

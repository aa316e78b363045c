package cmd

import (
	"fmt"

	"github.com/ascendquiz/ascendquiz/internal/app"
	"github.com/ascendquiz/ascendquiz/internal/screens/home"
	"github.com/ascendquiz/ascendquiz/internal/store"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Start the TUI with only the built-in demo quiz",
	Long:  "Launch AscendQuiz with the bundled question pool. No document or LLM provider needed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		return app.Run(app.Options{
			Store:   st,
			Sources: []home.PoolSource{demoSource()},
		})
	},
}

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ascendquiz/ascendquiz/internal/app"
	"github.com/ascendquiz/ascendquiz/internal/demo"
	"github.com/ascendquiz/ascendquiz/internal/pool"
	"github.com/ascendquiz/ascendquiz/internal/screens/home"
	"github.com/ascendquiz/ascendquiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, assembles the quiz menu, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	sources := []home.PoolSource{demoSource()}

	poolPaths, _ := cmd.Flags().GetStringSlice("pool")
	for _, p := range poolPaths {
		src, err := fileSource(p)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}

	return app.Run(app.Options{
		Store:   st,
		Sources: sources,
	})
}

// demoSource is the built-in quiz that needs no document or LLM.
func demoSource() home.PoolSource {
	return home.PoolSource{
		Label:        "Demo Mix",
		DocumentName: demo.DocumentName,
		Build:        demo.NewPool,
	}
}

// fileSource offers a saved pool file on the menu. The file is read
// eagerly so a bad path fails at startup, not mid-menu.
func fileSource(path string) (home.PoolSource, error) {
	f, _, err := pool.ReadFile(path)
	if err != nil {
		return home.PoolSource{}, fmt.Errorf("pool file %s: %w", path, err)
	}

	label := f.Document
	if label == "" {
		label = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	questions := f.Questions
	return home.PoolSource{
		Label:        label,
		DocumentName: label,
		Build: func() (*pool.Pool, error) {
			return pool.New(questions)
		},
	}, nil
}

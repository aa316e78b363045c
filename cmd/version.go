package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by goreleaser via -ldflags.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the installed version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ascendquiz %s\n", version)
	},
}

package main

import (
	"os"

	"github.com/ascendquiz/ascendquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

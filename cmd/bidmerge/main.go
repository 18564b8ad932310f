package main

import (
	"os"

	"github.com/bidmerge-dev/bidmerge/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

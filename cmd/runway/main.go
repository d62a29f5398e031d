package main

import (
	"os"

	"github.com/runway-dev/runway/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

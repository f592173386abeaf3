package main

import (
	"os"

	"github.com/faturai-dev/faturai/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

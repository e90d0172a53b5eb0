package main

import (
	"os"

	"github.com/spend-dev/spend/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

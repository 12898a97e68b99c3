package main

import (
	"os"

	"github.com/ytget/langlearn/cmd/langlearn/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

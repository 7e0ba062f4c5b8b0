package main

import (
	"os"

	"github.com/chronoview/go-timeline-engine/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

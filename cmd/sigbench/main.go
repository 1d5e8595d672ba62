package main

import (
	"os"

	"sigbench/cmd/sigbench/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

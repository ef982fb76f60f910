package main

import (
	"os"

	"tscat/cmd/tscat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

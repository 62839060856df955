package main

import (
	"os"

	"otpmig/cmd/otpmig/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

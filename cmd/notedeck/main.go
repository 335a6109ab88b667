package main

import (
	"os"

	"github.com/cristianoliveira/notedeck/cmd"
	"github.com/cristianoliveira/notedeck/internal/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.Error("command failed", "error", err)
		os.Exit(1)
	}
}

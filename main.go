package main

import (
	"log"
	"os"

	"github.com/plaisio/plaisio/cmd"
	"github.com/plaisio/plaisio/internal/logging"
)

func main() {
	// Logging failures must not block the board itself
	if err := logging.Init(); err != nil {
		log.Printf("Failed to initialize logging: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

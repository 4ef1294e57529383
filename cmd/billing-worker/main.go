package main

import (
	"fmt"
	"os"

	"lesson_billing/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		log := logger.WithComponent("worker")
		log.Error().Err(err).Msg("command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

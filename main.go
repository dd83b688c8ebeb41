package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/tanmay/wordtrail/cmd"
)

func main() {
	// Optional .env for local development; ignore if absent.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

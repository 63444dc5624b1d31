package main

import (
	"github.com/joho/godotenv"

	"github.com/saldodev/finza/cmd"
)

func main() {
	// Load .env for local development overrides (ignore errors when absent).
	_ = godotenv.Load()

	cmd.Execute()
}

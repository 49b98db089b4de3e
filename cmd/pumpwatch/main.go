package main

import (
	"os"

	"github.com/wonny/pumpwatch/cmd/pumpwatch/commands"
)

// main is the entry point for the pumpwatch CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/pumpwatch [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

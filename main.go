package main

import (
	"os"

	"github.com/lalasa2485/AI-Career-Path-Recommendation/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

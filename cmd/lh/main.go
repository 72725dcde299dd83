package main

import (
	"os"

	"github.com/learnhub/learnhub-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

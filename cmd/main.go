package main

import (
	"os"

	"hashAnalysisBackend/internal/platform/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/wesleyorama2/stressd/internal/cli"
)

// Main runs the stressd command line and returns the process exit code:
// 0 on success, 1 when a command fails.
func Main() int {
	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(Main())
}

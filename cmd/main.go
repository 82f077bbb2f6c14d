package main

import (
	"os"

	"cyberguard-academy/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

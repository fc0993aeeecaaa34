package main

import (
	"os"

	"github.com/amirasaad/transparency/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

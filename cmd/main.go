package main

import (
	"os"

	"github.com/ian-shakespeare/minicc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

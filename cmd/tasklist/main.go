package main

import (
	"os"

	"github.com/temporary-accommodation/tasklist/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

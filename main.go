package main

import (
	"os"

	"github.com/abcnoodle/marketintel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"lox/cmd/lox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"xogame/internal/command"
)

// main - is the entry point of the application. Command parsing, configuration
// and logging are wired up inside the command package.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the entry point for the haxxor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/zoobzio/haxxor/internal/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

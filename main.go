package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/obra/cmd"
	"github.com/thenoetrevino/obra/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// commands report their own errors through the output formatter
		var exitErr *cli.ExitErr
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}

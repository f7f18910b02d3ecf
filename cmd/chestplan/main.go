// Command chestplan plans chest-collection routes for grid scenarios.
//
// Usage:
//
//	chestplan plan <scenario.yaml> [--algo greedy|exhaustive] [--format text|json|geojson] [--max-targets N]
//	chestplan inspect <scenario.yaml>
//	chestplan generate [--seed N] [--height H] [--width W] ...
//
// Exit codes: 0 on success, 1 on errors, 2 when no plan meets the goal.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	cmd := newRootCmd()

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			} else {
				fmt.Fprintln(os.Stderr, "Run with --verbose for stack trace")
			}
			os.Exit(ExitError)
		}
	}()

	if err := Execute(context.Background(), cmd); err != nil {
		os.Exit(HandleError(cmd, err))
	}

	os.Exit(ExitSuccess)
}

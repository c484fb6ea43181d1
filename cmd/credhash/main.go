// Package main is the entry point for the credhash CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit statuses, following grep: 0 match, 1 no match, 2 error.
const (
	exitOK       = 0
	exitMismatch = 1
	exitError    = 2
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)

	os.Exit(run(cmd))
}

// run executes cmd and maps the result to an exit status.
func run(cmd *cobra.Command) int {
	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errMismatch):
		// verify already printed the outcome
		return exitMismatch
	default:
		cmd.PrintErrln("Error:", err)
		return exitError
	}
}

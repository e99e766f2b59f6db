// Package main provides the docdb CLI for issuing signed requests against a
// document database REST endpoint.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

// exitCodeForError maps command errors to process exit codes. A failed
// envelope has already been printed, so only other errors reach stderr.
func exitCodeForError(err error) int {
	var ee *envelopeError
	if errors.As(err, &ee) {
		return 2
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

// Command coursegen turns a course outline into a tree of section folders
// holding one note-taking HTML page per lecture.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Cancel on SIGINT/SIGTERM so the walk stops between outline lines.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Errors raised after the logger exists have already been logged.
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "coursegen: %v\n", err)
		}
		return 1
	}
	return 0
}

// reportedError marks an error that has already gone through the logger.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }
